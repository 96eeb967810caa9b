package checked_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/adamluzsi/checked/pkg/checked"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleFunction_Unchecked() {
	atoi := checked.Function[string, int](strconv.Atoi).Unchecked()
	_ = atoi("42") // 42
}

func TestIdentity(t *testing.T) {
	v := rnd.String()
	got, err := checked.Identity[string]()(v)
	assert.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestCompose(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		before = let.Var(s, func(t *testcase.T) checked.Function[string, int] {
			return strconv.Atoi
		})
		afterCalled = let.VarOf(s, false)
		after       = let.Var(s, func(t *testcase.T) checked.Function[int, int] {
			return func(n int) (int, error) {
				afterCalled.Set(t, true)
				return n * 2, nil
			}
		})
		input = let.Var(s, func(t *testcase.T) string {
			return strconv.Itoa(t.Random.IntBetween(1, 1000))
		})
	)
	act := let.Act2(func(t *testcase.T) (int, error) {
		return checked.Compose(before.Get(t), after.Get(t))(input.Get(t))
	})

	s.Then("before and after are applied in order", func(t *testcase.T) {
		got, err := act(t)
		assert.NoError(t, err)
		n, _ := strconv.Atoi(input.Get(t))
		assert.Equal(t, n*2, got)
		assert.True(t, afterCalled.Get(t))
	})

	s.When("before fails", func(s *testcase.Spec) {
		expErr := let.Error(s)
		before.Let(s, func(t *testcase.T) checked.Function[string, int] {
			return func(string) (int, error) { return 0, expErr.Get(t) }
		})

		s.Then("the failure is returned unchanged", func(t *testcase.T) {
			_, err := act(t)
			assert.Equal(t, expErr.Get(t), err)
		})

		s.Then("after is not evaluated", func(t *testcase.T) {
			_, _ = act(t)
			assert.False(t, afterCalled.Get(t))
		})
	})

	s.When("a required function is missing", func(s *testcase.Spec) {
		after.LetValue(s, nil)

		s.Then("it panics with invalid argument", func(t *testcase.T) {
			out := assert.Panic(t, func() { _, _ = act(t) })
			err, ok := out.(error)
			assert.True(t, ok)
			assert.True(t, errors.Is(err, checked.ErrInvalidArgument))
		})
	})
}

func TestFunction_Unchecked(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		fn := checked.Function[string, string](func(s string) (string, error) {
			return strings.ToUpper(s), nil
		}).Unchecked()
		assert.Equal(t, "ABC", fn("abc"))
	})
	t.Run("the original failure is raised", func(t *testing.T) {
		expErr := rnd.Error()
		fn := checked.Function[string, int](func(string) (int, error) {
			return 0, expErr
		}).Unchecked()
		out := assert.Panic(t, func() { fn("x") })
		assert.Equal[any](t, expErr, out)
	})
}

func TestAndThen(t *testing.T) {
	sum := checked.BiFunction[int, int, int](func(a, b int) (int, error) { return a + b, nil })
	got, err := checked.AndThen(sum, func(n int) (string, error) { return strconv.Itoa(n), nil })(40, 2)
	assert.NoError(t, err)
	assert.Equal(t, "42", got)

	expErr := rnd.Error()
	failing := checked.BiFunction[int, int, int](func(a, b int) (int, error) { return 0, expErr })
	_, err = checked.AndThen(failing, func(n int) (string, error) {
		t.Fatal("after should not be called")
		return "", nil
	})(1, 2)
	assert.Equal(t, expErr, err)
}

func TestBinaryOperator_Unchecked(t *testing.T) {
	expErr := rnd.Error()
	op := checked.BinaryOperator[int](func(a, b int) (int, error) {
		if b == 0 {
			return 0, expErr
		}
		return a / b, nil
	}).Unchecked()
	assert.Equal(t, 2, op(4, 2))
	assert.Equal[any](t, expErr, assert.Panic(t, func() { op(4, 0) }))
}

func TestRequire(t *testing.T) {
	assert.NotPanic(t, func() { checked.Require("x", true) })
	out := assert.Panic(t, func() { checked.Require("x", false) })
	err, ok := out.(error)
	assert.True(t, ok)
	assert.True(t, errors.Is(err, checked.ErrInvalidArgument))
	assert.Contain(t, err.Error(), "x == nil")
}
