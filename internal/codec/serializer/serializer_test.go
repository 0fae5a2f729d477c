package serializer

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lk2023060901/bdf-garden-go/internal/codec/endian"
	"github.com/lk2023060901/bdf-garden-go/internal/codec/stream"
	"github.com/lk2023060901/bdf-garden-go/pkg/util/merr"
)

type SerializerSuite struct {
	suite.Suite
}

func (s *SerializerSuite) newPair(order endian.ByteOrder, opts ...Option) (*bytes.Buffer, *Serializer) {
	buf := &bytes.Buffer{}
	sr, err := New(stream.NewReadWriter(buf), order, opts...)
	s.Require().NoError(err)
	return buf, sr
}

func (s *SerializerSuite) TestNewRejectsNilStream() {
	_, err := New(nil, endian.LittleEndian)
	s.Error(err)
	s.ErrorIs(err, merr.ErrCodecNilStream)
}

func (s *SerializerSuite) TestNewRejectsInvalidOrder() {
	_, err := New(stream.NewRing(64), endian.ByteOrder(7))
	s.Error(err)
	s.ErrorIs(err, merr.ErrCodecInvalidByteOrder)
}

func (s *SerializerSuite) TestScalarRoundTrip() {
	for _, order := range []endian.ByteOrder{endian.LittleEndian, endian.BigEndian} {
		_, sr := s.newPair(order)

		s.NoError(sr.WriteBool(true))
		s.NoError(sr.WriteBool(false))
		s.NoError(sr.WriteInt8(math.MinInt8))
		s.NoError(sr.WriteUint8(math.MaxUint8))
		s.NoError(sr.WriteInt16(math.MinInt16))
		s.NoError(sr.WriteUint16(math.MaxUint16))
		s.NoError(sr.WriteInt32(-1))
		s.NoError(sr.WriteUint32(0xDEADBEEF))
		s.NoError(sr.WriteInt64(math.MinInt64))
		s.NoError(sr.WriteUint64(math.MaxUint64))
		negZero := float32(math.Copysign(0, -1))
		s.NoError(sr.WriteFloat32(negZero))
		s.NoError(sr.WriteFloat64(math.Pi))

		b, err := sr.ReadBool()
		s.NoError(err)
		s.True(b)
		b, err = sr.ReadBool()
		s.NoError(err)
		s.False(b)
		i8, err := sr.ReadInt8()
		s.NoError(err)
		s.EqualValues(math.MinInt8, i8)
		u8, err := sr.ReadUint8()
		s.NoError(err)
		s.EqualValues(math.MaxUint8, u8)
		i16, err := sr.ReadInt16()
		s.NoError(err)
		s.EqualValues(math.MinInt16, i16)
		u16, err := sr.ReadUint16()
		s.NoError(err)
		s.EqualValues(math.MaxUint16, u16)
		i32, err := sr.ReadInt32()
		s.NoError(err)
		s.EqualValues(-1, i32)
		u32, err := sr.ReadUint32()
		s.NoError(err)
		s.EqualValues(0xDEADBEEF, u32)
		i64, err := sr.ReadInt64()
		s.NoError(err)
		s.EqualValues(math.MinInt64, i64)
		u64, err := sr.ReadUint64()
		s.NoError(err)
		s.EqualValues(uint64(math.MaxUint64), u64)
		f32, err := sr.ReadFloat32()
		s.NoError(err)
		s.Equal(math.Float32bits(negZero), math.Float32bits(f32))
		f64, err := sr.ReadFloat64()
		s.NoError(err)
		s.Equal(math.Pi, f64)
	}
}

func (s *SerializerSuite) TestScalarGoldenBytes() {
	buf, sr := s.newPair(endian.BigEndian)
	s.NoError(sr.WriteUint32(0x01020304))
	s.Equal([]byte{0x01, 0x02, 0x03, 0x04}, buf.Bytes())

	buf, sr = s.newPair(endian.LittleEndian)
	s.NoError(sr.WriteUint32(0x01020304))
	s.Equal([]byte{0x04, 0x03, 0x02, 0x01}, buf.Bytes())
}

func (s *SerializerSuite) TestFloatBitPatternsSurvive() {
	quiet := math.Float64frombits(0x7FF8000000000001)
	signaling := math.Float64frombits(0x7FF0000000000002)

	for _, order := range []endian.ByteOrder{endian.LittleEndian, endian.BigEndian} {
		_, sr := s.newPair(order)
		for _, v := range []float64{quiet, signaling, math.Inf(1), math.Inf(-1)} {
			s.NoError(sr.WriteFloat64(v))
			got, err := sr.ReadFloat64()
			s.NoError(err)
			s.Equal(math.Float64bits(v), math.Float64bits(got))
		}
	}
}

func (s *SerializerSuite) TestStringLayout() {
	buf, sr := s.newPair(endian.LittleEndian)
	s.NoError(sr.WriteString("hello"))

	want := append([]byte{5, 0, 0, 0, 0, 0, 0, 0}, []byte("hello")...)
	s.Equal(want, buf.Bytes())

	got, err := sr.ReadString()
	s.NoError(err)
	s.Equal("hello", got)
}

func (s *SerializerSuite) TestEmptyString() {
	buf, sr := s.newPair(endian.BigEndian)
	s.NoError(sr.WriteString(""))
	s.Equal(lenWidth, buf.Len())

	got, err := sr.ReadString()
	s.NoError(err)
	s.Equal("", got)
}

func (s *SerializerSuite) TestBytesRoundTrip() {
	_, sr := s.newPair(endian.LittleEndian)
	payload := []byte{0x00, 0xFF, 0x10}
	s.NoError(sr.WriteBytes(payload))

	got, err := sr.ReadBytes()
	s.NoError(err)
	s.Equal(payload, got)
}

func (s *SerializerSuite) TestReadStringInto() {
	_, sr := s.newPair(endian.LittleEndian)
	s.NoError(sr.WriteString("hi"))

	dst := make([]byte, 8)
	n, err := sr.ReadStringInto(dst)
	s.NoError(err)
	s.Equal(2, n)
	s.Equal(byte('h'), dst[0])
	s.Equal(byte('i'), dst[1])
	s.Equal(byte(0), dst[2])
}

func (s *SerializerSuite) TestReadStringIntoTooSmall() {
	_, sr := s.newPair(endian.LittleEndian)
	s.NoError(sr.WriteString("hello"))

	// 刚好容不下 payload+NUL。
	dst := make([]byte, 5)
	_, err := sr.ReadStringInto(dst)
	s.Error(err)
	s.ErrorIs(err, merr.ErrCodecBufferTooSmall)
}

func (s *SerializerSuite) TestReadStringTruncated() {
	buf := &bytes.Buffer{}
	sr, err := New(stream.NewReadWriter(buf), endian.LittleEndian)
	s.Require().NoError(err)

	// 前缀声明 5 字节，payload 只有 2 字节。
	s.NoError(sr.writeLength(5))
	buf.Write([]byte("he"))

	_, err = sr.ReadString()
	s.Error(err)
	s.ErrorIs(err, merr.ErrCodecTruncatedInput)
}

func (s *SerializerSuite) TestReadLengthOverflow() {
	_, sr := s.newPair(endian.BigEndian, WithMaxLength(16))
	s.NoError(sr.writeLength(17))

	_, err := sr.ReadString()
	s.Error(err)
	s.ErrorIs(err, merr.ErrCodecLengthOverflow)
}

func (s *SerializerSuite) TestOrdersProduceMirroredBytes() {
	le, srLE := s.newPair(endian.LittleEndian)
	be, srBE := s.newPair(endian.BigEndian)

	s.NoError(srLE.WriteUint64(0x0102030405060708))
	s.NoError(srBE.WriteUint64(0x0102030405060708))

	s.Equal(le.Len(), be.Len())
	for i := 0; i < le.Len(); i++ {
		s.Equal(le.Bytes()[i], be.Bytes()[be.Len()-1-i])
	}
}

func (s *SerializerSuite) TestGenericFacade() {
	_, sr := s.newPair(endian.BigEndian)

	s.NoError(Encode(sr, ScalarOf[int32](), -42))
	s.NoError(Encode(sr, String, "bdf"))

	i, err := Decode(sr, ScalarOf[int32]())
	s.NoError(err)
	s.EqualValues(-42, i)
	str, err := Decode(sr, String)
	s.NoError(err)
	s.Equal("bdf", str)
}

func TestSerializer(t *testing.T) {
	suite.Run(t, new(SerializerSuite))
}
