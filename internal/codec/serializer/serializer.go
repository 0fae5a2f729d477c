package serializer

import (
	"encoding/binary"
	"math"

	"github.com/lk2023060901/bdf-garden-go/internal/codec/endian"
	"github.com/lk2023060901/bdf-garden-go/internal/codec/stream"
	"github.com/lk2023060901/bdf-garden-go/pkg/metrics"
	"github.com/lk2023060901/bdf-garden-go/pkg/util/merr"
)

const (
	// lenWidth 为所有变长形状统一使用的长度前缀宽度（无符号 64 位）。
	lenWidth = 8

	// DefaultMaxLength 为解码时接受的长度前缀默认上限（字节数或元素个数）。
	// 超过该上限的长度会被視为损坏输入，直接失败而不尝试分配。
	DefaultMaxLength = 16 * 1024 * 1024
)

// Serializer 将一个字节序策略与一个底层 Stream 绑定，
// 提供定宽标量、字符串与复合形状的编解码入口。
//
// 约定：
//   - 字节序在构造时确定，实例生命周期内不可变；
//   - 除 8 字节工作区外不持有任何缓冲，编码结果全部直接进入 Stream；
//   - 不支持并发使用：复合形状的编解码由多次顺序读写组成，
//     并发驱动同一个 Serializer/Stream 会同时破坏两个操作的结果；
//   - Stream 仅在每次调用期间被借用，Serializer 不拥有它的生命周期。
type Serializer struct {
	st     stream.Stream
	order  endian.ByteOrder
	swap   bool
	maxLen int
	tmp    [8]byte
}

// Option 用于调整 Serializer 的构造参数。
type Option func(*Serializer)

// WithMaxLength 设置解码时接受的长度前缀上限。
// n <= 0 时保持默认值。
func WithMaxLength(n int) Option {
	return func(s *Serializer) {
		if n > 0 {
			s.maxLen = n
		}
	}
}

// New 创建一个绑定给定 Stream 与字节序的 Serializer。
// st 为 nil 或 order 非法时在构造期直接失败。
func New(st stream.Stream, order endian.ByteOrder, opts ...Option) (*Serializer, error) {
	if st == nil {
		return nil, merr.WrapErrCodecNilStream("serializer.New")
	}
	if !order.Valid() {
		return nil, merr.WrapErrCodecInvalidByteOrder(order)
	}

	s := &Serializer{
		st:     st,
		order:  order,
		swap:   order.NeedSwap(),
		maxLen: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ByteOrder 返回构造时绑定的字节序。
func (s *Serializer) ByteOrder() endian.ByteOrder {
	return s.order
}

// Encode 将 v 按 c 描述的形状编码进 s 绑定的流。
// 这是编码侧的顶层入口：成功后计入一次指标。
func Encode[T any](s *Serializer, c Codec[T], v T) error {
	if err := c.Encode(s, v); err != nil {
		return err
	}
	metrics.CodecValues.WithLabelValues(metrics.DirectionWrite).Inc()
	return nil
}

// Decode 从 s 绑定的流中按 c 描述的形状解码一个值。
// 解码失败后，流的位置不再可靠，本次 Serializer/Stream 配对应被放弃。
func Decode[T any](s *Serializer, c Codec[T]) (T, error) {
	v, err := c.Decode(s)
	if err != nil {
		return v, err
	}
	metrics.CodecValues.WithLabelValues(metrics.DirectionRead).Inc()
	return v, nil
}

// 定宽标量编解码。
//
// 编码：对 v 的本地拷贝按需字节反转，再把宿主机位模式原样写入流；
// 解码：读出 sizeof(T) 个原始字节，做逆向反转后按位重解释为 T。
// 不做任何取值校验，浮点数的 NaN/Inf 位模式原样穿透。

func (s *Serializer) WriteBool(v bool) error {
	if v {
		return s.WriteUint8(1)
	}
	return s.WriteUint8(0)
}

func (s *Serializer) ReadBool() (bool, error) {
	v, err := s.ReadUint8()
	return v != 0, err
}

func (s *Serializer) WriteInt8(v int8) error {
	return s.WriteUint8(uint8(v))
}

func (s *Serializer) ReadInt8() (int8, error) {
	v, err := s.ReadUint8()
	return int8(v), err
}

func (s *Serializer) WriteUint8(v uint8) error {
	s.tmp[0] = v
	return s.st.WriteFull(s.tmp[:1])
}

func (s *Serializer) ReadUint8() (uint8, error) {
	if err := s.st.ReadFull(s.tmp[:1]); err != nil {
		return 0, err
	}
	return s.tmp[0], nil
}

func (s *Serializer) WriteInt16(v int16) error {
	return s.WriteUint16(uint16(v))
}

func (s *Serializer) ReadInt16() (int16, error) {
	v, err := s.ReadUint16()
	return int16(v), err
}

func (s *Serializer) WriteUint16(v uint16) error {
	if s.swap {
		v = endian.Swap16(v)
	}
	binary.NativeEndian.PutUint16(s.tmp[:2], v)
	return s.st.WriteFull(s.tmp[:2])
}

func (s *Serializer) ReadUint16() (uint16, error) {
	if err := s.st.ReadFull(s.tmp[:2]); err != nil {
		return 0, err
	}
	v := binary.NativeEndian.Uint16(s.tmp[:2])
	if s.swap {
		v = endian.Swap16(v)
	}
	return v, nil
}

func (s *Serializer) WriteInt32(v int32) error {
	return s.WriteUint32(uint32(v))
}

func (s *Serializer) ReadInt32() (int32, error) {
	v, err := s.ReadUint32()
	return int32(v), err
}

func (s *Serializer) WriteUint32(v uint32) error {
	if s.swap {
		v = endian.Swap32(v)
	}
	binary.NativeEndian.PutUint32(s.tmp[:4], v)
	return s.st.WriteFull(s.tmp[:4])
}

func (s *Serializer) ReadUint32() (uint32, error) {
	if err := s.st.ReadFull(s.tmp[:4]); err != nil {
		return 0, err
	}
	v := binary.NativeEndian.Uint32(s.tmp[:4])
	if s.swap {
		v = endian.Swap32(v)
	}
	return v, nil
}

func (s *Serializer) WriteInt64(v int64) error {
	return s.WriteUint64(uint64(v))
}

func (s *Serializer) ReadInt64() (int64, error) {
	v, err := s.ReadUint64()
	return int64(v), err
}

func (s *Serializer) WriteUint64(v uint64) error {
	if s.swap {
		v = endian.Swap64(v)
	}
	binary.NativeEndian.PutUint64(s.tmp[:8], v)
	return s.st.WriteFull(s.tmp[:8])
}

func (s *Serializer) ReadUint64() (uint64, error) {
	if err := s.st.ReadFull(s.tmp[:8]); err != nil {
		return 0, err
	}
	v := binary.NativeEndian.Uint64(s.tmp[:8])
	if s.swap {
		v = endian.Swap64(v)
	}
	return v, nil
}

func (s *Serializer) WriteFloat32(v float32) error {
	return s.WriteUint32(math.Float32bits(v))
}

func (s *Serializer) ReadFloat32() (float32, error) {
	v, err := s.ReadUint32()
	return math.Float32frombits(v), err
}

func (s *Serializer) WriteFloat64(v float64) error {
	return s.WriteUint64(math.Float64bits(v))
}

func (s *Serializer) ReadFloat64() (float64, error) {
	v, err := s.ReadUint64()
	return math.Float64frombits(v), err
}

// writeLength 在每个变长 payload 之前写入长度前缀。
func (s *Serializer) writeLength(n int) error {
	return s.WriteUint64(uint64(n))
}

// readLength 读取并校验长度前缀。
// 声明长度超过上限时返回 merr.ErrCodecLengthOverflow，不会尝试分配。
func (s *Serializer) readLength() (int, error) {
	v, err := s.ReadUint64()
	if err != nil {
		return 0, err
	}
	if v > uint64(s.maxLen) {
		return 0, merr.WrapErrCodecLengthOverflow(v, s.maxLen)
	}
	return int(v), nil
}
