package stream

import (
	"io"

	"github.com/lk2023060901/bdf-garden-go/pkg/util/merr"
)

// Stream 抽象了编解码层依赖的底层字节流。
//
// 约定：
//   - ReadFull 必须恰好填满 p，否则返回错误；不存在“部分读取成功”的状态；
//   - WriteFull 必须恰好消费 len(p) 个字节，否则返回错误；
//   - 阻塞、超时、重试等行为完全由具体实现决定，编解码层不感知；
//   - 一个 Stream 同一时刻只允许被一个序列化操作驱动。
type Stream interface {
	// ReadFull 从流中读取恰好 len(p) 个字节填入 p。
	ReadFull(p []byte) error

	// WriteFull 将 p 中的全部字节写入流。
	WriteFull(p []byte) error
}

type rwStream struct {
	r io.Reader
	w io.Writer
}

var _ Stream = (*rwStream)(nil)

// NewReadWriter 基于一个 io.ReadWriter 创建双向 Stream。
func NewReadWriter(rw io.ReadWriter) Stream {
	return &rwStream{r: rw, w: rw}
}

// NewReader 基于 io.Reader 创建只读 Stream，任何写入都会失败。
func NewReader(r io.Reader) Stream {
	return &rwStream{r: r}
}

// NewWriter 基于 io.Writer 创建只写 Stream，任何读取都会失败。
func NewWriter(w io.Writer) Stream {
	return &rwStream{w: w}
}

func (s *rwStream) ReadFull(p []byte) error {
	if s.r == nil {
		return merr.WrapErrStreamNotReadable()
	}
	n, err := io.ReadFull(s.r, p)
	if err != nil {
		return merr.WrapErrStreamShortRead(err, len(p), n)
	}
	return nil
}

func (s *rwStream) WriteFull(p []byte) error {
	if s.w == nil {
		return merr.WrapErrStreamNotWritable()
	}
	n, err := s.w.Write(p)
	if err != nil {
		return merr.WrapErrStreamShortWrite(err, len(p), n)
	}
	if n != len(p) {
		return merr.WrapErrStreamShortWrite(io.ErrShortWrite, len(p), n)
	}
	return nil
}
