package compare

import "slices"

// Unchecked converts c into the plain comparison function that
// sorting utilities like slices.SortFunc expect.
//
// When c fails, the returned function panics with the failure itself,
// without wrapping it, so recover yields the exact error c returned.
// The slice being sorted is left in an unspecified order by the interrupted sort.
func Unchecked[T any](c Comparator[T]) func(a, b T) int {
	required("comparator", c)
	return func(a, b T) int {
		res, err := c.Compare(a, b)
		if err != nil {
			panic(err)
		}
		return res
	}
}

// Sort sorts the slice s in ascending order as determined by c.
// The sort is not guaranteed to be stable.
//
// The first failure of c aborts the sort and is returned unchanged.
// After a failure s holds the same elements in an unspecified order.
func Sort[S ~[]E, E any](s S, c Comparator[E]) error {
	return sortWith(s, c, slices.SortFunc[S, E])
}

// SortStable sorts the slice s while keeping the original order of equal elements.
// Failures are handled the same way as with Sort.
func SortStable[S ~[]E, E any](s S, c Comparator[E]) error {
	return sortWith(s, c, slices.SortStableFunc[S, E])
}

// IsSorted reports whether s is sorted in ascending order as determined by c.
func IsSorted[S ~[]E, E any](s S, c Comparator[E]) (bool, error) {
	required("comparator", c)
	for i := len(s) - 1; i > 0; i-- {
		res, err := c.Compare(s[i], s[i-1])
		if err != nil {
			return false, err
		}
		if IsLess(res) {
			return false, nil
		}
	}
	return true, nil
}

// sortAbort carries a comparator failure out of a sort routine that can't return errors.
type sortAbort struct{ Err error }

func sortWith[S ~[]E, E any](s S, c Comparator[E], sort func(S, func(a, b E) int)) (rErr error) {
	required("comparator", c)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if abort, ok := r.(sortAbort); ok {
			rErr = abort.Err
			return
		}
		panic(r)
	}()
	sort(s, func(a, b E) int {
		res, err := c.Compare(a, b)
		if err != nil {
			panic(sortAbort{Err: err})
		}
		return res
	})
	return nil
}
