package compare

// NullsFirst returns a nil-friendly comparator that considers nil to be less than non-nil.
// When both operands are nil, they are considered equal.
// When both are non-nil, c determines the order.
// A nil c is allowed, it makes every non-nil value equal.
func NullsFirst[T any](c Comparator[*T]) Comparator[*T] {
	return nulls[T]{First: true, Inner: normalise(c)}
}

// NullsLast returns a nil-friendly comparator that considers nil to be greater than non-nil.
// The rest of the semantics are the same as with NullsFirst.
func NullsLast[T any](c Comparator[*T]) Comparator[*T] {
	return nulls[T]{First: false, Inner: normalise(c)}
}

type nulls[T any] struct {
	First bool
	Inner Comparator[*T] // optional
}

func (n nulls[T]) Compare(left, right *T) (int, error) {
	switch {
	case left == nil && right == nil:
		return 0, nil
	case left == nil:
		return n.nullSide(), nil
	case right == nil:
		return -n.nullSide(), nil
	case n.Inner == nil:
		return 0, nil
	default:
		return n.Inner.Compare(left, right)
	}
}

// nullSide is the comparison result for a nil left operand against a non-nil right.
func (n nulls[T]) nullSide() int {
	if n.First {
		return -1
	}
	return 1
}

// ThenComparing composes the tie-breaker into the inner ordering,
// so nil handling stays the outermost step of the comparison.
func (n nulls[T]) ThenComparing(other Comparator[*T]) Comparator[*T] {
	required("other", other)
	if n.Inner == nil {
		return nulls[T]{First: n.First, Inner: other}
	}
	return nulls[T]{First: n.First, Inner: Then(n.Inner, other)}
}

func (n nulls[T]) Reversed() Comparator[*T] {
	if n.Inner == nil {
		return nulls[T]{First: !n.First}
	}
	return nulls[T]{First: !n.First, Inner: Reverse(n.Inner)}
}

func (n nulls[T]) Describe() (Descriptor, error) {
	d := Descriptor{Kind: KindNulls, NullsFirst: n.First}
	if n.Inner != nil {
		inner, err := Describe(n.Inner)
		if err != nil {
			return Descriptor{}, err
		}
		d.Inner = []Descriptor{inner}
	}
	return d, nil
}

func normalise[T any](c Comparator[T]) Comparator[T] {
	if isNil(c) {
		return nil
	}
	return c
}
