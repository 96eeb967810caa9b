package checked

// Consumer represents an operation that accepts a single input argument and returns no result.
type Consumer[T any] func(T) error

// AndThen returns a composed Consumer that performs c, followed by after.
// When c fails, after is not performed.
func (c Consumer[T]) AndThen(after Consumer[T]) Consumer[T] {
	Require("consumer", c != nil)
	Require("after", after != nil)
	return func(v T) error {
		if err := c(v); err != nil {
			return err
		}
		return after(v)
	}
}

func (c Consumer[T]) Unchecked() func(T) {
	Require("consumer", c != nil)
	return func(v T) {
		if err := c(v); err != nil {
			panic(err)
		}
	}
}

// BiConsumer represents an operation that accepts two input arguments and returns no result.
type BiConsumer[T, U any] func(T, U) error

func (c BiConsumer[T, U]) AndThen(after BiConsumer[T, U]) BiConsumer[T, U] {
	Require("consumer", c != nil)
	Require("after", after != nil)
	return func(t T, u U) error {
		if err := c(t, u); err != nil {
			return err
		}
		return after(t, u)
	}
}

func (c BiConsumer[T, U]) Unchecked() func(T, U) {
	Require("consumer", c != nil)
	return func(t T, u U) {
		if err := c(t, u); err != nil {
			panic(err)
		}
	}
}

// Supplier represents a supplier of results that may fail.
type Supplier[T any] func() (T, error)

func (s Supplier[T]) Unchecked() func() T {
	Require("supplier", s != nil)
	return func() T {
		v, err := s()
		if err != nil {
			panic(err)
		}
		return v
	}
}

// MustGet evaluates the supplier, and raises its failure as a panic.
func (s Supplier[T]) MustGet() T {
	return s.Unchecked()()
}

// Runnable is an action without arguments and result that may fail.
type Runnable func() error

func (r Runnable) Unchecked() func() {
	Require("runnable", r != nil)
	return func() {
		if err := r(); err != nil {
			panic(err)
		}
	}
}
