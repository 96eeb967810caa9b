// Package compare implements composable orderings whose comparisons may fail.
//
// A Comparator is the failing counterpart of the comparison function that
// slices.SortFunc expects. Comparators can be reversed, chained for tie-breaking,
// wrapped with a nil handling policy, and built from key extractor functions.
// Failures of key extractors travel through every combinator unchanged.
//
// Absent values are modelled as nil pointers, so nil aware orderings operate on *T:
//
//	byName := compare.NullsLast(compare.NaturalOrder[string]())
//	err := compare.SortStable(names, byName)
//
// To hand a Comparator to an API that can't express failure, use Unchecked,
// or prefer the failing Sort and SortStable helpers of this package.
package compare

import (
	"cmp"

	"github.com/adamluzsi/checked/pkg/checked"
	"go.llib.dev/frameless/pkg/errorkit"
	"golang.org/x/exp/constraints"
)

// Comparator defines an ordering between two values of T, which may fail to be determined.
type Comparator[T any] interface {
	// Compare returns:
	//   a negative number if left is less than right,
	//   0 if they're equal, and
	//   a positive number if left is greater.
	//
	// A failure must be returned as is,
	// a comparator never swallows the error of a function it depends on.
	Compare(left, right T) (int, error)
}

// Func (compare.Func[T]) is the function form of Comparator.
type Func[T any] func(left, right T) (int, error)

func (fn Func[T]) Compare(left, right T) (int, error) { return fn(left, right) }

const (
	// ErrNullArgument is returned when an ordering that doesn't tolerate nil receives a nil operand.
	ErrNullArgument errorkit.Error = "null argument"
	// ErrInvalidArgument is raised when a required comparator or function argument is nil.
	ErrInvalidArgument = checked.ErrInvalidArgument
)

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the left value is less than the right one.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the left value is less than or equal to the right one.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the left value is greater than the right one.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the left value is more than or equal to the right one.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// Integers is the tri-state comparison of two integers.
func Integers[T constraints.Integer](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Floats is the tri-state comparison of two floating point numbers.
// A NaN is considered less than any non-NaN, a NaN is considered equal to a NaN,
// and -0.0 is equal to 0.0, the same as with cmp.Compare.
func Floats[T constraints.Float](a, b T) int {
	return cmp.Compare(a, b)
}

func required[T any](name string, c Comparator[T]) {
	checked.Require(name, !isNil(c))
}

func isNil[T any](c Comparator[T]) bool {
	if c == nil {
		return true
	}
	if fn, ok := c.(Func[T]); ok && fn == nil {
		return true
	}
	return false
}
