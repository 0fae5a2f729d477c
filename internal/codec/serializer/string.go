package serializer

import (
	"github.com/lk2023060901/bdf-garden-go/pkg/util/merr"
)

// 字符串 / 字节串形状。
//
// 线上布局统一为：长度前缀（按绑定字节序）+ 原始字节，
// 不携带任何终止符。payload 字节不随字节序变化。

// WriteBytes 将 p 以长度前缀形式写入流。空切片只写前缀。
func (s *Serializer) WriteBytes(p []byte) error {
	if err := s.writeLength(len(p)); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	return s.st.WriteFull(p)
}

// WriteString 将 v 以长度前缀形式写入流，长度为字节数而非字符数。
func (s *Serializer) WriteString(v string) error {
	return s.WriteBytes([]byte(v))
}

// ReadBytes 解码一个字节串，payload 放入新分配的切片。
func (s *Serializer) ReadBytes() ([]byte, error) {
	n, err := s.readLength()
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if n > 0 {
		if err := s.st.ReadFull(out); err != nil {
			return nil, merr.WrapErrCodecTruncatedInput(err, "bytes")
		}
	}
	return out, nil
}

// ReadString 解码一个字符串，payload 放入新分配的存储。
func (s *Serializer) ReadString() (string, error) {
	n, err := s.readLength()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	out := make([]byte, n)
	if err := s.st.ReadFull(out); err != nil {
		return "", merr.WrapErrCodecTruncatedInput(err, "string")
	}
	return string(out), nil
}

// ReadStringInto 解码一个字符串到调用方提供的缓冲区，
// 并在 payload 末尾追加一个 NUL 字节，返回 payload 长度（不含 NUL）。
//
// 缓冲区必须能容纳 payload+NUL：容量不足时返回
// merr.ErrCodecBufferTooSmall，且不消费 payload 字节。
func (s *Serializer) ReadStringInto(dst []byte) (int, error) {
	n, err := s.readLength()
	if err != nil {
		return 0, err
	}
	if n+1 > len(dst) {
		return 0, merr.WrapErrCodecBufferTooSmall(n+1, len(dst))
	}
	if n > 0 {
		if err := s.st.ReadFull(dst[:n]); err != nil {
			return 0, merr.WrapErrCodecTruncatedInput(err, "string")
		}
	}
	dst[n] = 0
	return n, nil
}
