package compare

import "cmp"

// NaturalOrder returns the ordering that compares values by their intrinsic order.
// Nil operands are rejected with ErrNullArgument;
// wrap the ordering with NullsFirst or NullsLast to order them.
//
// The returned value is a stateless singleton,
// every call, and every restored description of it, yields an equal value.
func NaturalOrder[T cmp.Ordered]() Comparator[*T] { return naturalOrder[T]{} }

// ReverseOrder returns the reverse of NaturalOrder.
func ReverseOrder[T cmp.Ordered]() Comparator[*T] { return reverseOrder[T]{} }

type naturalOrder[T cmp.Ordered] struct{}

func (naturalOrder[T]) Compare(left, right *T) (int, error) {
	if err := checkOperands(left, right); err != nil {
		return 0, err
	}
	return cmp.Compare(*left, *right), nil
}

func (naturalOrder[T]) Reversed() Comparator[*T] { return reverseOrder[T]{} }

func (naturalOrder[T]) Describe() (Descriptor, error) {
	return Descriptor{Kind: KindNatural}, nil
}

type reverseOrder[T cmp.Ordered] struct{}

func (reverseOrder[T]) Compare(left, right *T) (int, error) {
	if err := checkOperands(left, right); err != nil {
		return 0, err
	}
	return cmp.Compare(*right, *left), nil
}

func (reverseOrder[T]) Reversed() Comparator[*T] { return naturalOrder[T]{} }

func (reverseOrder[T]) Describe() (Descriptor, error) {
	return Descriptor{Kind: KindReverseNatural}, nil
}

func checkOperands[T any](left, right *T) error {
	if left == nil {
		return ErrNullArgument.F("left == nil")
	}
	if right == nil {
		return ErrNullArgument.F("right == nil")
	}
	return nil
}
