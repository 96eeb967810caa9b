package compare

// reverser is implemented by comparators that know a cheaper reverse of themselves
// than the generic operand swapping wrapper.
type reverser[T any] interface {
	Reversed() Comparator[T]
}

// Reverse returns a comparator that imposes the reverse ordering of c.
//
// Reversing a reversed comparator gives back the original comparator,
// and the natural orderings reverse into each other.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	required("comparator", c)
	if r, ok := c.(reverser[T]); ok {
		return r.Reversed()
	}
	return reversed[T]{Inner: c}
}

type reversed[T any] struct {
	Inner Comparator[T]
}

func (r reversed[T]) Compare(left, right T) (int, error) {
	return r.Inner.Compare(right, left)
}

func (r reversed[T]) Reversed() Comparator[T] { return r.Inner }

func (r reversed[T]) Describe() (Descriptor, error) {
	inner, err := Describe(r.Inner)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{Kind: KindReversed, Inner: []Descriptor{inner}}, nil
}
