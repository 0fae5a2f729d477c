package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/bdf-garden-go/pkg/util/merr"
)

func TestHostMatchesNativeEndian(t *testing.T) {
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 0x0102)
	if buf[0] == 0x02 {
		assert.Equal(t, LittleEndian, Host())
	} else {
		assert.Equal(t, BigEndian, Host())
	}

	// 两种字节序中恰好有一个与宿主机一致。
	assert.NotEqual(t, LittleEndian.NeedSwap(), BigEndian.NeedSwap())
}

func TestValid(t *testing.T) {
	assert.True(t, LittleEndian.Valid())
	assert.True(t, BigEndian.Valid())
	assert.False(t, ByteOrder(2).Valid())
}

func TestParse(t *testing.T) {
	cases := map[string]ByteOrder{
		"little":     LittleEndian,
		"LE":         LittleEndian,
		" Big ":      BigEndian,
		"big-endian": BigEndian,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := Parse("middle")
	assert.ErrorIs(t, err, merr.ErrCodecInvalidByteOrder)
}

func TestSwapPure(t *testing.T) {
	assert.Equal(t, uint16(0x0201), Swap16(0x0102))
	assert.Equal(t, uint32(0x04030201), Swap32(0x01020304))
	assert.Equal(t, uint64(0x0807060504030201), Swap64(0x0102030405060708))

	// 反转两次恢复原值。
	assert.Equal(t, uint16(0x0102), Swap16(Swap16(0x0102)))
	assert.Equal(t, uint32(0x01020304), Swap32(Swap32(0x01020304)))
	assert.Equal(t, uint64(0x0102030405060708), Swap64(Swap64(0x0102030405060708)))
}

func TestSwapBytes(t *testing.T) {
	one := []byte{0xAA}
	require.NoError(t, SwapBytes(one))
	assert.Equal(t, []byte{0xAA}, one)

	two := []byte{0x01, 0x02}
	require.NoError(t, SwapBytes(two))
	assert.Equal(t, []byte{0x02, 0x01}, two)

	four := []byte{0x01, 0x02, 0x03, 0x04}
	require.NoError(t, SwapBytes(four))
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, four)

	eight := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, SwapBytes(eight))
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, eight)
}

func TestSwapBytesUnsupportedWidth(t *testing.T) {
	for _, n := range []int{0, 3, 5, 6, 7, 9, 16} {
		err := SwapBytes(make([]byte, n))
		assert.ErrorIs(t, err, merr.ErrCodecUnsupportedWidth, "width %d", n)
	}
}
