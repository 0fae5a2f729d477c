package stream

import (
	"github.com/lk2023060901/bdf-garden-go/pkg/buffer/ring"
	"github.com/lk2023060901/bdf-garden-go/pkg/util/merr"
)

// RingStream 是基于环形缓冲区的内存 Stream。
//
// 典型用法是“先编码后解码”的本地管道：写入的数据按 FIFO 顺序被读出，
// 写入时空间不足会自动扩容。
type RingStream struct {
	buf *ring.Buffer
}

var _ Stream = (*RingStream)(nil)

// NewRing 创建一个初始容量为 size 的内存 Stream。
// size 为 0 时使用环形缓冲区的默认容量。
func NewRing(size int) *RingStream {
	return &RingStream{buf: ring.New(size)}
}

func (s *RingStream) ReadFull(p []byte) error {
	if s.buf.Buffered() < len(p) {
		return merr.WrapErrStreamShortRead(ring.ErrIsEmpty, len(p), s.buf.Buffered())
	}
	n, err := s.buf.Read(p)
	if err != nil {
		return merr.WrapErrStreamShortRead(err, len(p), n)
	}
	return nil
}

func (s *RingStream) WriteFull(p []byte) error {
	n, err := s.buf.Write(p)
	if err != nil {
		return merr.WrapErrStreamShortWrite(err, len(p), n)
	}
	return nil
}

// Buffered 返回当前尚未被读取的字节数。
func (s *RingStream) Buffered() int {
	return s.buf.Buffered()
}

// Bytes 返回当前所有未读数据的拷贝，不移动读指针。
func (s *RingStream) Bytes() []byte {
	return s.buf.Bytes()
}

// Reset 丢弃所有未读数据。
func (s *RingStream) Reset() {
	s.buf.Reset()
}
