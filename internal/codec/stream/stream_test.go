package stream

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/bdf-garden-go/pkg/util/merr"
)

func TestReadWriterExactSemantics(t *testing.T) {
	var buf bytes.Buffer
	st := NewReadWriter(&buf)

	require.NoError(t, st.WriteFull([]byte{1, 2, 3, 4}))
	assert.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())

	got := make([]byte, 4)
	require.NoError(t, st.ReadFull(got))
	assert.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestReadFullTruncated(t *testing.T) {
	st := NewReader(bytes.NewReader([]byte{1, 2}))

	got := make([]byte, 4)
	err := st.ReadFull(got)
	require.Error(t, err)
	assert.ErrorIs(t, err, merr.ErrStreamShortRead)
}

func TestReadFullEmpty(t *testing.T) {
	st := NewReader(bytes.NewReader(nil))

	err := st.ReadFull(make([]byte, 1))
	assert.ErrorIs(t, err, merr.ErrStreamShortRead)
}

func TestReadOnlyWriteOnly(t *testing.T) {
	var buf bytes.Buffer

	r := NewReader(&buf)
	assert.ErrorIs(t, r.WriteFull([]byte{1}), merr.ErrStreamNotWritable)

	w := NewWriter(&buf)
	assert.ErrorIs(t, w.ReadFull(make([]byte, 1)), merr.ErrStreamNotReadable)
}

// shortWriter 每次最多写出 limit 个字节。
type shortWriter struct {
	limit int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) <= w.limit {
		return len(p), nil
	}
	return w.limit, io.ErrShortWrite
}

func TestWriteFullShortWrite(t *testing.T) {
	st := NewWriter(&shortWriter{limit: 2})

	err := st.WriteFull([]byte{1, 2, 3, 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, merr.ErrStreamShortWrite)
}

func TestRingStreamRoundTrip(t *testing.T) {
	st := NewRing(8)

	require.NoError(t, st.WriteFull([]byte("hello")))
	assert.Equal(t, 5, st.Buffered())

	got := make([]byte, 5)
	require.NoError(t, st.ReadFull(got))
	assert.Equal(t, []byte("hello"), got)
	assert.Equal(t, 0, st.Buffered())
}

func TestRingStreamGrow(t *testing.T) {
	st := NewRing(4)

	payload := bytes.Repeat([]byte{0xAB}, 1024)
	require.NoError(t, st.WriteFull(payload))

	got := make([]byte, len(payload))
	require.NoError(t, st.ReadFull(got))
	assert.Equal(t, payload, got)
}

func TestRingStreamUnderflow(t *testing.T) {
	st := NewRing(8)
	require.NoError(t, st.WriteFull([]byte{1, 2}))

	err := st.ReadFull(make([]byte, 4))
	assert.ErrorIs(t, err, merr.ErrStreamShortRead)
}

func TestMeteredPassthrough(t *testing.T) {
	st := Metered(NewRing(8))

	require.NoError(t, st.WriteFull([]byte{1, 2, 3}))
	got := make([]byte, 3)
	require.NoError(t, st.ReadFull(got))
	assert.Equal(t, []byte{1, 2, 3}, got)

	assert.ErrorIs(t, st.ReadFull(make([]byte, 1)), merr.ErrStreamShortRead)
}
