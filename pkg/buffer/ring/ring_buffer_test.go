package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadWrapAround(t *testing.T) {
	rb := New(8)

	n, err := rb.Write([]byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	p := make([]byte, 4)
	n, err = rb.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{1, 2, 3, 4}, p)

	// 此时写指针会跨越环形边界。
	n, err = rb.Write([]byte{7, 8, 9, 10})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Equal(t, []byte{5, 6, 7, 8, 9, 10}, rb.Bytes())
	assert.Equal(t, 6, rb.Buffered())
}

func TestReadEmpty(t *testing.T) {
	rb := New(8)

	p := make([]byte, 1)
	_, err := rb.Read(p)
	assert.ErrorIs(t, err, ErrIsEmpty)

	_, err = rb.ReadByte()
	assert.ErrorIs(t, err, ErrIsEmpty)
}

func TestGrow(t *testing.T) {
	rb := New(4)
	assert.Equal(t, 4, rb.Cap())

	payload := make([]byte, 100)
	for i := range payload {
		payload[i] = byte(i)
	}
	n, err := rb.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.GreaterOrEqual(t, rb.Cap(), len(payload))

	got := make([]byte, len(payload))
	n, err = rb.Read(got)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, payload, got)
	assert.True(t, rb.IsEmpty())
}

func TestPeekDiscard(t *testing.T) {
	rb := New(8)
	_, err := rb.Write([]byte{1, 2, 3, 4})
	require.NoError(t, err)

	head, tail := rb.Peek(2)
	assert.Equal(t, []byte{1, 2}, head)
	assert.Empty(t, tail)
	assert.Equal(t, 4, rb.Buffered())

	discarded, err := rb.Discard(2)
	require.NoError(t, err)
	assert.Equal(t, 2, discarded)
	assert.Equal(t, []byte{3, 4}, rb.Bytes())
}

func TestWriteByteReadByte(t *testing.T) {
	rb := New(2)
	require.NoError(t, rb.WriteByte('a'))
	require.NoError(t, rb.WriteByte('b'))
	assert.True(t, rb.IsFull())

	b, err := rb.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), b)
	b, err = rb.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('b'), b)
	assert.True(t, rb.IsEmpty())
}

func TestReset(t *testing.T) {
	rb := New(8)
	_, err := rb.Write([]byte{1, 2, 3})
	require.NoError(t, err)

	rb.Reset()
	assert.True(t, rb.IsEmpty())
	assert.Equal(t, 0, rb.Buffered())
	assert.Equal(t, 8, rb.Available())
}

func TestZeroSized(t *testing.T) {
	rb := New(0)
	assert.True(t, rb.IsEmpty())
	assert.Equal(t, 0, rb.Cap())

	// 首次写入触发懒分配。
	_, err := rb.Write([]byte{1})
	require.NoError(t, err)
	assert.Equal(t, DefaultBufferSize, rb.Cap())

	b, err := rb.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(1), b)
}
