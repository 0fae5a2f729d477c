package serializer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lk2023060901/bdf-garden-go/internal/codec/endian"
	"github.com/lk2023060901/bdf-garden-go/internal/codec/stream"
	"github.com/lk2023060901/bdf-garden-go/pkg/util/merr"
)

type CompositeSuite struct {
	suite.Suite
}

func (s *CompositeSuite) newPair(order endian.ByteOrder) (*bytes.Buffer, *Serializer) {
	buf := &bytes.Buffer{}
	sr, err := New(stream.NewReadWriter(buf), order)
	s.Require().NoError(err)
	return buf, sr
}

func (s *CompositeSuite) TestPairRoundTrip() {
	_, sr := s.newPair(endian.BigEndian)
	c := PairOf(ScalarOf[uint32](), String)

	in := Pair[uint32, string]{First: 7, Second: "seven"}
	s.NoError(Encode(sr, c, in))

	out, err := Decode(sr, c)
	s.NoError(err)
	s.Equal(in, out)
}

func (s *CompositeSuite) TestPairLayout() {
	buf, sr := s.newPair(endian.BigEndian)
	c := PairOf(ScalarOf[uint16](), ScalarOf[uint8]())

	s.NoError(Encode(sr, c, Pair[uint16, uint8]{First: 0x0102, Second: 0x03}))
	// First 紧跟 Second，无前缀无填充。
	s.Equal([]byte{0x01, 0x02, 0x03}, buf.Bytes())
}

func (s *CompositeSuite) TestSliceLayout() {
	buf, sr := s.newPair(endian.LittleEndian)
	c := SliceOf(ScalarOf[uint32]())

	s.NoError(Encode(sr, c, []uint32{1, 2, 3}))

	want := []byte{
		3, 0, 0, 0, 0, 0, 0, 0,
		1, 0, 0, 0,
		2, 0, 0, 0,
		3, 0, 0, 0,
	}
	s.Equal(want, buf.Bytes())

	out, err := Decode(sr, c)
	s.NoError(err)
	s.Equal([]uint32{1, 2, 3}, out)
}

func (s *CompositeSuite) TestEmptySlice() {
	buf, sr := s.newPair(endian.BigEndian)
	c := SliceOf(String)

	s.NoError(Encode(sr, c, nil))
	s.Equal(lenWidth, buf.Len())

	out, err := Decode(sr, c)
	s.NoError(err)
	s.NotNil(out)
	s.Len(out, 0)
}

func (s *CompositeSuite) TestMapRoundTrip() {
	_, sr := s.newPair(endian.LittleEndian)
	c := MapOf(ScalarOf[uint32](), String)

	in := map[uint32]string{1: "a", 2: "b", 3: "c"}
	s.NoError(Encode(sr, c, in))

	out, err := Decode(sr, c)
	s.NoError(err)
	s.Equal(in, out)
}

func (s *CompositeSuite) TestMapEncodeDeterministic() {
	c := MapOf(ScalarOf[uint32](), String)
	in := map[uint32]string{9: "i", 1: "a", 5: "e"}

	var first []byte
	for i := 0; i < 8; i++ {
		buf, sr := s.newPair(endian.BigEndian)
		s.NoError(Encode(sr, c, in))
		if first == nil {
			first = append([]byte(nil), buf.Bytes()...)
			continue
		}
		s.Equal(first, buf.Bytes())
	}
}

func (s *CompositeSuite) TestMapDuplicateKeyLastWins() {
	_, sr := s.newPair(endian.LittleEndian)

	// 手工构造带重复 key 的条目流：{1:"a", 1:"b"}。
	s.NoError(sr.writeLength(2))
	s.NoError(sr.WriteUint32(1))
	s.NoError(sr.WriteString("a"))
	s.NoError(sr.WriteUint32(1))
	s.NoError(sr.WriteString("b"))

	out, err := Decode(sr, MapOf(ScalarOf[uint32](), String))
	s.NoError(err)
	s.Equal(map[uint32]string{1: "b"}, out)
}

func (s *CompositeSuite) TestNestedComposite() {
	_, sr := s.newPair(endian.BigEndian)
	c := MapOf(ScalarOf[uint32](), SliceOf(PairOf(String, ScalarOf[float64]())))

	in := map[uint32][]Pair[string, float64]{
		1: {{First: "x", Second: 1.5}, {First: "y", Second: -2.25}},
		2: {},
	}
	s.NoError(Encode(sr, c, in))

	out, err := Decode(sr, c)
	s.NoError(err)
	s.Equal(len(in), len(out))
	s.Equal(in[1], out[1])
	s.Len(out[2], 0)
}

func (s *CompositeSuite) TestLengthSymmetry() {
	for _, order := range []endian.ByteOrder{endian.LittleEndian, endian.BigEndian} {
		buf, sr := s.newPair(order)
		c := MapOf(ScalarOf[uint32](), SliceOf(PairOf(String, ScalarOf[int64]())))

		in := map[uint32][]Pair[string, int64]{
			1: {{First: "k", Second: -9}},
			2: nil,
		}
		s.NoError(Encode(sr, c, in))
		produced := buf.Len()
		s.Positive(produced)

		_, err := Decode(sr, c)
		s.NoError(err)
		// 解码消费的字节数与编码产出完全一致。
		s.Zero(buf.Len())
	}
}

func (s *CompositeSuite) TestSliceDecodeTruncated() {
	_, sr := s.newPair(endian.LittleEndian)
	c := SliceOf(ScalarOf[uint32]())

	// 声明 3 个元素，只提供 2 个。
	s.NoError(sr.writeLength(3))
	s.NoError(sr.WriteUint32(1))
	s.NoError(sr.WriteUint32(2))

	_, err := Decode(sr, c)
	s.Error(err)
	s.ErrorIs(err, merr.ErrStreamShortRead)
}

func (s *CompositeSuite) TestCompositeOverRing() {
	ring := stream.NewRing(64)
	sr, err := New(ring, endian.LittleEndian)
	s.Require().NoError(err)

	c := SliceOf(PairOf(ScalarOf[uint16](), String))
	in := []Pair[uint16, string]{{First: 1, Second: "one"}, {First: 2, Second: "two"}}

	s.NoError(Encode(sr, c, in))
	out, err := Decode(sr, c)
	s.NoError(err)
	s.Equal(in, out)
}

func TestComposite(t *testing.T) {
	suite.Run(t, new(CompositeSuite))
}
