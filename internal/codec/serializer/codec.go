package serializer

import (
	"github.com/lk2023060901/bdf-garden-go/pkg/util/merr"
)

// Codec 描述某一形状的值如何进出 Serializer。
// Encode/Decode 必须互为镜像：同一字节序下，
// Decode 消费的字节数与 Encode 产出的字节数完全一致。
type Codec[T any] interface {
	Encode(s *Serializer, v T) error
	Decode(s *Serializer) (T, error)
}

// Fixed 为受支持的定宽标量类型封闭集合，宽度均在 {1, 2, 4, 8} 之内。
// 集合外的类型在编译期即无法构造 Codec，不存在运行期的宽度分派。
type Fixed interface {
	bool | int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// ScalarOf 返回定宽标量类型 T 的 Codec。
func ScalarOf[T Fixed]() Codec[T] {
	return scalarCodec[T]{}
}

type scalarCodec[T Fixed] struct{}

var _ Codec[uint32] = scalarCodec[uint32]{}

func (scalarCodec[T]) Encode(s *Serializer, v T) error {
	switch x := any(v).(type) {
	case bool:
		return s.WriteBool(x)
	case int8:
		return s.WriteInt8(x)
	case int16:
		return s.WriteInt16(x)
	case int32:
		return s.WriteInt32(x)
	case int64:
		return s.WriteInt64(x)
	case uint8:
		return s.WriteUint8(x)
	case uint16:
		return s.WriteUint16(x)
	case uint32:
		return s.WriteUint32(x)
	case uint64:
		return s.WriteUint64(x)
	case float32:
		return s.WriteFloat32(x)
	case float64:
		return s.WriteFloat64(x)
	default:
		// Fixed 为封闭集合，不可达。
		return merr.ErrCodecUnsupportedWidth
	}
}

func (scalarCodec[T]) Decode(s *Serializer) (T, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		v, err := s.ReadBool()
		return any(v).(T), err
	case int8:
		v, err := s.ReadInt8()
		return any(v).(T), err
	case int16:
		v, err := s.ReadInt16()
		return any(v).(T), err
	case int32:
		v, err := s.ReadInt32()
		return any(v).(T), err
	case int64:
		v, err := s.ReadInt64()
		return any(v).(T), err
	case uint8:
		v, err := s.ReadUint8()
		return any(v).(T), err
	case uint16:
		v, err := s.ReadUint16()
		return any(v).(T), err
	case uint32:
		v, err := s.ReadUint32()
		return any(v).(T), err
	case uint64:
		v, err := s.ReadUint64()
		return any(v).(T), err
	case float32:
		v, err := s.ReadFloat32()
		return any(v).(T), err
	case float64:
		v, err := s.ReadFloat64()
		return any(v).(T), err
	default:
		return zero, merr.ErrCodecUnsupportedWidth
	}
}

// String 为字符串形状的 Codec。
var String Codec[string] = stringCodec{}

type stringCodec struct{}

func (stringCodec) Encode(s *Serializer, v string) error {
	return s.WriteString(v)
}

func (stringCodec) Decode(s *Serializer) (string, error) {
	return s.ReadString()
}

// Bytes 为原始字节串形状的 Codec。
var Bytes Codec[[]byte] = bytesCodec{}

type bytesCodec struct{}

func (bytesCodec) Encode(s *Serializer, v []byte) error {
	return s.WriteBytes(v)
}

func (bytesCodec) Decode(s *Serializer) ([]byte, error) {
	return s.ReadBytes()
}
