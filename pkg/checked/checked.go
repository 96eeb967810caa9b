// Package checked provides error returning variants of the common callable shapes,
// and a bridge to turn them into the plain, non-failing function forms
// that general purpose APIs expect.
//
// The one-argument and two-argument variants cover every concrete instantiation,
// a checked int-to-double function is simply Function[int, float64].
//
// The Unchecked bridges do not wrap failures.
// They panic with the original error value,
// so a recover at the call site receives the exact error that the callable returned.
package checked

import "go.llib.dev/frameless/pkg/errorkit"

// ErrInvalidArgument is raised when a required callable argument is missing.
const ErrInvalidArgument errorkit.Error = "invalid argument"

// Function represents a function that accepts one argument and produces a result, or fails.
type Function[T, R any] func(T) (R, error)

// Identity returns a function that always returns its input argument.
func Identity[T any]() Function[T, T] {
	return func(v T) (T, error) { return v, nil }
}

// Compose returns a function that first applies before to its input, and then after to the result.
// If before fails, after is not evaluated.
func Compose[A, B, C any](before Function[A, B], after Function[B, C]) Function[A, C] {
	Require("before", before != nil)
	Require("after", after != nil)
	return func(v A) (C, error) {
		b, err := before(v)
		if err != nil {
			var zero C
			return zero, err
		}
		return after(b)
	}
}

// Unchecked converts the function into a plain function.
// A failure is raised as a panic carrying the original error.
func (fn Function[T, R]) Unchecked() func(T) R {
	Require("function", fn != nil)
	return func(v T) R {
		out, err := fn(v)
		if err != nil {
			panic(err)
		}
		return out
	}
}

// BiFunction represents a function that accepts two arguments and produces a result, or fails.
type BiFunction[T, U, R any] func(T, U) (R, error)

// AndThen returns a function that applies after on the result of fn.
func AndThen[T, U, R, V any](fn BiFunction[T, U, R], after Function[R, V]) BiFunction[T, U, V] {
	Require("function", fn != nil)
	Require("after", after != nil)
	return func(t T, u U) (V, error) {
		r, err := fn(t, u)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

func (fn BiFunction[T, U, R]) Unchecked() func(T, U) R {
	Require("function", fn != nil)
	return func(t T, u U) R {
		out, err := fn(t, u)
		if err != nil {
			panic(err)
		}
		return out
	}
}

// UnaryOperator is a Function whose operand and result share the same type.
type UnaryOperator[T any] func(T) (T, error)

func (op UnaryOperator[T]) Unchecked() func(T) T {
	return Function[T, T](op).Unchecked()
}

// BinaryOperator represents an operation upon two operands of the same type,
// producing a result of the same type as the operands.
type BinaryOperator[T any] func(a, b T) (T, error)

func (op BinaryOperator[T]) Unchecked() func(a, b T) T {
	return BiFunction[T, T, T](op).Unchecked()
}

// Require panics with ErrInvalidArgument when a required argument is not present.
func Require(name string, present bool) {
	if !present {
		panic(ErrInvalidArgument.F("%s == nil", name))
	}
}
