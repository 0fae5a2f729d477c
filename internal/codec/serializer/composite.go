package serializer

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// 复合形状：pair、sequence、map。
// 复合 Codec 只负责结构布局，元素本身交给子 Codec 递归处理，
// 因此任意深度的嵌套（如 map[uint32][]Pair[...]）天然成立。

// Pair 是两个异构值的有序组合。
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf 返回 Pair[A, B] 的 Codec：First 在前、Second 在后，无前缀无填充。
func PairOf[A, B any](first Codec[A], second Codec[B]) Codec[Pair[A, B]] {
	return pairCodec[A, B]{first: first, second: second}
}

type pairCodec[A, B any] struct {
	first  Codec[A]
	second Codec[B]
}

func (c pairCodec[A, B]) Encode(s *Serializer, v Pair[A, B]) error {
	if err := c.first.Encode(s, v.First); err != nil {
		return err
	}
	return c.second.Encode(s, v.Second)
}

func (c pairCodec[A, B]) Decode(s *Serializer) (Pair[A, B], error) {
	var out Pair[A, B]
	first, err := c.first.Decode(s)
	if err != nil {
		return out, err
	}
	second, err := c.second.Decode(s)
	if err != nil {
		return out, err
	}
	out.First = first
	out.Second = second
	return out, nil
}

// SliceOf 返回 []T 的 Codec：元素个数前缀 + 逐元素编码。
// 解码产出新分配的切片，空序列解码为非 nil 的零长切片。
func SliceOf[T any](elem Codec[T]) Codec[[]T] {
	return sliceCodec[T]{elem: elem}
}

type sliceCodec[T any] struct {
	elem Codec[T]
}

func (c sliceCodec[T]) Encode(s *Serializer, v []T) error {
	if err := s.writeLength(len(v)); err != nil {
		return err
	}
	for i := range v {
		if err := c.elem.Encode(s, v[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c sliceCodec[T]) Decode(s *Serializer) ([]T, error) {
	n, err := s.readLength()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		e, err := c.elem.Decode(s)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// MapOf 返回 map[K]V 的 Codec：条目数前缀 + 逐条目 (key, value)。
//
// 为保证同一 map 的编码结果字节级可复现，编码侧按 key 升序输出条目；
// 解码侧对重复 key 采取后者覆盖前者的策略，与逐条插入 map 的语义一致。
func MapOf[K constraints.Ordered, V any](key Codec[K], val Codec[V]) Codec[map[K]V] {
	return mapCodec[K, V]{key: key, val: val}
}

type mapCodec[K constraints.Ordered, V any] struct {
	key Codec[K]
	val Codec[V]
}

func (c mapCodec[K, V]) Encode(s *Serializer, m map[K]V) error {
	if err := s.writeLength(len(m)); err != nil {
		return err
	}
	keys := lo.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		if err := c.key.Encode(s, k); err != nil {
			return err
		}
		if err := c.val.Encode(s, m[k]); err != nil {
			return err
		}
	}
	return nil
}

func (c mapCodec[K, V]) Decode(s *Serializer) (map[K]V, error) {
	n, err := s.readLength()
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, n)
	for i := 0; i < n; i++ {
		k, err := c.key.Decode(s)
		if err != nil {
			return nil, err
		}
		v, err := c.val.Decode(s)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
