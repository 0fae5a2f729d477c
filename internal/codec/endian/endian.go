package endian

import (
	"encoding/binary"
	"math/bits"
	"strings"

	"github.com/lk2023060901/bdf-garden-go/pkg/util/merr"
)

// ByteOrder 表示编码值在字节流中使用的字节序。
//
// 约定：
//   - 一个 Serializer 实例在构造时绑定唯一的 ByteOrder，生命周期内不可变更；
//   - 同一个编码值内部绝不混用两种字节序。
type ByteOrder uint8

const (
	// LittleEndian 表示低位字节在前。
	LittleEndian ByteOrder = iota
	// BigEndian 表示高位字节在前。
	BigEndian
)

// 编译期确认 host 探测所依赖的 binary.NativeEndian 存在。
var _ binary.AppendByteOrder = binary.NativeEndian

var hostOrder = detectHost()

func detectHost() ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x34, 0x12}) == 0x1234 {
		return LittleEndian
	}
	return BigEndian
}

// Host 返回当前宿主机的字节序。
func Host() ByteOrder {
	return hostOrder
}

// Valid 报告 o 是否为受支持的字节序取值。
func (o ByteOrder) Valid() bool {
	return o == LittleEndian || o == BigEndian
}

// NeedSwap 报告按 o 编码时是否需要对多字节标量做字节反转。
// 仅当目标字节序与宿主机字节序不同时需要反转。
func (o ByteOrder) NeedSwap() bool {
	return o != hostOrder
}

// Std 返回 o 对应的 encoding/binary 字节序实现。
func (o ByteOrder) Std() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "unknown"
	}
}

// Parse 将配置中的字符串解析为 ByteOrder。
// 可接受 "little"/"le" 与 "big"/"be"（不区分大小写）。
func Parse(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le", "little-endian":
		return LittleEndian, nil
	case "big", "be", "big-endian":
		return BigEndian, nil
	default:
		return 0, merr.WrapErrCodecInvalidByteOrder(s)
	}
}

// Swap16 返回 v 的字节反转结果。纯函数，不修改输入。
func Swap16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// Swap32 返回 v 的字节反转结果。纯函数，不修改输入。
func Swap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// Swap64 返回 v 的字节反转结果。纯函数，不修改输入。
func Swap64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// SwapBytes 将 b 中的字节就地围绕中心两两对调。
//
// 仅支持宽度 1、2、4、8（封闭集合）；其它宽度返回
// merr.ErrCodecUnsupportedWidth，绝不静默截断。
func SwapBytes(b []byte) error {
	switch len(b) {
	case 1:
		// 单字节无需处理。
	case 2:
		b[0], b[1] = b[1], b[0]
	case 4:
		b[0], b[3] = b[3], b[0]
		b[1], b[2] = b[2], b[1]
	case 8:
		b[0], b[7] = b[7], b[0]
		b[1], b[6] = b[6], b[1]
		b[2], b[5] = b[5], b[2]
		b[3], b[4] = b[4], b[3]
	default:
		return merr.WrapErrCodecUnsupportedWidth(len(b))
	}
	return nil
}
