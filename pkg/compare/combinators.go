package compare

import (
	"cmp"

	"github.com/adamluzsi/checked/pkg/checked"
)

type thenComparer[T any] interface {
	ThenComparing(other Comparator[T]) Comparator[T]
}

// Then returns a lexicographic-order comparator.
// When c considers two operands equal, other decides their order.
// When c already decided, other is not evaluated.
func Then[T any](c, other Comparator[T]) Comparator[T] {
	required("comparator", c)
	required("other", other)
	if tc, ok := c.(thenComparer[T]); ok {
		return tc.ThenComparing(other)
	}
	return chain[T]{First: c, Then: other}
}

type chain[T any] struct {
	First Comparator[T]
	Then  Comparator[T]
}

func (c chain[T]) Compare(left, right T) (int, error) {
	res, err := c.First.Compare(left, right)
	if err != nil || res != 0 {
		return res, err
	}
	return c.Then.Compare(left, right)
}

func (c chain[T]) Describe() (Descriptor, error) {
	first, err := Describe(c.First)
	if err != nil {
		return Descriptor{}, err
	}
	then, err := Describe(c.Then)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{Kind: KindThen, Inner: []Descriptor{first, then}}, nil
}

// By returns a comparator that orders values by the key that fn extracts from them.
// Failures of fn are returned unchanged.
func By[T any, K cmp.Ordered](fn checked.Function[T, K]) Comparator[T] {
	checked.Require("function", fn != nil)
	return keyed[T, K](fn, cmp.Compare[K])
}

// ByWith returns a comparator that extracts a key with fn and orders the keys with c.
func ByWith[T, K any](fn checked.Function[T, K], c Comparator[K]) Comparator[T] {
	checked.Require("function", fn != nil)
	required("comparator", c)
	return Func[T](func(left, right T) (int, error) {
		lk, err := fn(left)
		if err != nil {
			return 0, err
		}
		rk, err := fn(right)
		if err != nil {
			return 0, err
		}
		return c.Compare(lk, rk)
	})
}

// ByFloat64 returns a comparator that orders values by a float64 key.
func ByFloat64[T any](fn checked.Function[T, float64]) Comparator[T] {
	checked.Require("function", fn != nil)
	return keyed[T, float64](fn, Floats[float64])
}

// ByInt returns a comparator that orders values by an int key.
func ByInt[T any](fn checked.Function[T, int]) Comparator[T] {
	checked.Require("function", fn != nil)
	return keyed[T, int](fn, Integers[int])
}

// ByInt64 returns a comparator that orders values by an int64 key.
func ByInt64[T any](fn checked.Function[T, int64]) Comparator[T] {
	checked.Require("function", fn != nil)
	return keyed[T, int64](fn, Integers[int64])
}

func keyed[T, K any](fn checked.Function[T, K], compare func(a, b K) int) Func[T] {
	return func(left, right T) (int, error) {
		lk, err := fn(left)
		if err != nil {
			return 0, err
		}
		rk, err := fn(right)
		if err != nil {
			return 0, err
		}
		return compare(lk, rk), nil
	}
}

// ThenBy is the short form of Then(c, By(fn)).
func ThenBy[T any, K cmp.Ordered](c Comparator[T], fn checked.Function[T, K]) Comparator[T] {
	return Then(c, By(fn))
}

// ThenByWith is the short form of Then(c, ByWith(fn, kc)).
func ThenByWith[T, K any](c Comparator[T], fn checked.Function[T, K], kc Comparator[K]) Comparator[T] {
	return Then(c, ByWith(fn, kc))
}

// ThenByFloat64 is the short form of Then(c, ByFloat64(fn)).
func ThenByFloat64[T any](c Comparator[T], fn checked.Function[T, float64]) Comparator[T] {
	return Then(c, ByFloat64(fn))
}

// ThenByInt is the short form of Then(c, ByInt(fn)).
func ThenByInt[T any](c Comparator[T], fn checked.Function[T, int]) Comparator[T] {
	return Then(c, ByInt(fn))
}

// ThenByInt64 is the short form of Then(c, ByInt64(fn)).
func ThenByInt64[T any](c Comparator[T], fn checked.Function[T, int64]) Comparator[T] {
	return Then(c, ByInt64(fn))
}

// MinBy returns an operator that yields the lesser of its two operands according to c.
// On a tie, the left operand is returned.
func MinBy[T any](c Comparator[T]) checked.BinaryOperator[T] {
	required("comparator", c)
	return func(a, b T) (T, error) {
		res, err := c.Compare(a, b)
		if err != nil {
			var zero T
			return zero, err
		}
		if IsLessOrEqual(res) {
			return a, nil
		}
		return b, nil
	}
}

// MaxBy returns an operator that yields the greater of its two operands according to c.
// On a tie, the left operand is returned.
func MaxBy[T any](c Comparator[T]) checked.BinaryOperator[T] {
	required("comparator", c)
	return func(a, b T) (T, error) {
		res, err := c.Compare(a, b)
		if err != nil {
			var zero T
			return zero, err
		}
		if IsMoreOrEqual(res) {
			return a, nil
		}
		return b, nil
	}
}
