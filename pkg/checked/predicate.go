package checked

// Predicate represents a boolean-valued function of one argument that may fail.
type Predicate[T any] func(T) (bool, error)

// And returns a composed predicate that represents a short-circuiting logical AND.
// When p evaluates to false, or fails, other is not evaluated.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	Require("predicate", p != nil)
	Require("other", other != nil)
	return func(v T) (bool, error) {
		ok, err := p(v)
		if err != nil || !ok {
			return false, err
		}
		return other(v)
	}
}

// Or returns a composed predicate that represents a short-circuiting logical OR.
// When p evaluates to true, or fails, other is not evaluated.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	Require("predicate", p != nil)
	Require("other", other != nil)
	return func(v T) (bool, error) {
		ok, err := p(v)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return other(v)
	}
}

// Negate returns a predicate that represents the logical negation of p.
func (p Predicate[T]) Negate() Predicate[T] {
	Require("predicate", p != nil)
	return func(v T) (bool, error) {
		ok, err := p(v)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

func (p Predicate[T]) Unchecked() func(T) bool {
	return Function[T, bool](p).Unchecked()
}

// Not returns a predicate that is the negation of the supplied predicate.
func Not[T any](p Predicate[T]) Predicate[T] {
	return p.Negate()
}

// BiPredicate represents a boolean-valued function of two arguments that may fail.
type BiPredicate[T, U any] func(T, U) (bool, error)

func (p BiPredicate[T, U]) And(other BiPredicate[T, U]) BiPredicate[T, U] {
	Require("predicate", p != nil)
	Require("other", other != nil)
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil || !ok {
			return false, err
		}
		return other(t, u)
	}
}

func (p BiPredicate[T, U]) Or(other BiPredicate[T, U]) BiPredicate[T, U] {
	Require("predicate", p != nil)
	Require("other", other != nil)
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return other(t, u)
	}
}

func (p BiPredicate[T, U]) Negate() BiPredicate[T, U] {
	Require("predicate", p != nil)
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

func (p BiPredicate[T, U]) Unchecked() func(T, U) bool {
	return BiFunction[T, U, bool](p).Unchecked()
}
