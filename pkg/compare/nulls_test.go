package compare_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/adamluzsi/checked/pkg/compare"
	"github.com/adamluzsi/checked/pkg/compare/comparemock"
	"github.com/golang/mock/gomock"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestNulls(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		inner = let.Var(s, func(t *testcase.T) compare.Comparator[*string] {
			return compare.NaturalOrder[string]()
		})
		left  = let.Var(s, func(t *testcase.T) *string { return ptr(t.Random.String()) })
		right = let.Var(s, func(t *testcase.T) *string { return ptr(t.Random.String()) })
	)

	s.Describe("NullsFirst", func(s *testcase.Spec) {
		subject := let.Var(s, func(t *testcase.T) compare.Comparator[*string] {
			return compare.NullsFirst(inner.Get(t))
		})
		act := let.Act2(func(t *testcase.T) (int, error) {
			return subject.Get(t).Compare(left.Get(t), right.Get(t))
		})

		s.When("both operands are nil", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) *string { return nil })
			right.Let(s, func(t *testcase.T) *string { return nil })

			s.Then("they are equal", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, 0, got)
			})
		})

		s.When("left is nil", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) *string { return nil })

			s.Then("nil comes first", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.True(t, compare.IsLess(got))
			})
		})

		s.When("right is nil", func(s *testcase.Spec) {
			right.Let(s, func(t *testcase.T) *string { return nil })

			s.Then("the non-nil left comes after", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.True(t, compare.IsMore(got))
			})
		})

		s.When("neither is nil", func(s *testcase.Spec) {
			s.Then("the inner ordering decides", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				exp, err := inner.Get(t).Compare(left.Get(t), right.Get(t))
				assert.NoError(t, err)
				assert.Equal(t, exp, got)
			})

			s.And("the inner ordering fails", func(s *testcase.Spec) {
				expErr := let.Error(s)
				inner.Let(s, func(t *testcase.T) compare.Comparator[*string] {
					return compare.Func[*string](func(_, _ *string) (int, error) {
						return 0, expErr.Get(t)
					})
				})

				s.Then("the failure is returned unchanged", func(t *testcase.T) {
					_, err := act(t)
					assert.Equal(t, expErr.Get(t), err)
				})
			})

			s.And("there is no inner ordering", func(s *testcase.Spec) {
				inner.LetValue(s, nil)

				s.Then("every non-nil value is equal", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, 0, got)
				})
			})
		})

		s.Context("inner ordering is only consulted for non-nil operands", func(s *testcase.Spec) {
			ctrl := let.Var(s, func(t *testcase.T) *gomock.Controller {
				return gomock.NewController(t)
			})
			mock := let.Var(s, func(t *testcase.T) *comparemock.MockComparator[*string] {
				return comparemock.NewMockComparator[*string](ctrl.Get(t))
			})
			inner.Let(s, func(t *testcase.T) compare.Comparator[*string] {
				return mock.Get(t)
			})

			s.Then("nil operands never reach the inner ordering", func(t *testcase.T) {
				mock.Get(t).EXPECT().Compare(gomock.Any(), gomock.Any()).Times(0)

				got, err := subject.Get(t).Compare(nil, ptr("x"))
				assert.NoError(t, err)
				assert.True(t, compare.IsLess(got))

				got, err = subject.Get(t).Compare(nil, nil)
				assert.NoError(t, err)
				assert.Equal(t, 0, got)
			})

			s.Then("a tie-breaker composed with Then is also skipped for nil operands", func(t *testcase.T) {
				tieBreaker := comparemock.NewMockComparator[*string](ctrl.Get(t))
				tieBreaker.EXPECT().Compare(gomock.Any(), gomock.Any()).Times(0)
				mock.Get(t).EXPECT().Compare(gomock.Any(), gomock.Any()).Times(0)

				got, err := compare.Then[*string](subject.Get(t), tieBreaker).Compare(ptr("x"), nil)
				assert.NoError(t, err)
				assert.True(t, compare.IsMore(got))
			})
		})
	})

	s.Describe("NullsLast", func(s *testcase.Spec) {
		subject := let.Var(s, func(t *testcase.T) compare.Comparator[*string] {
			return compare.NullsLast(inner.Get(t))
		})
		act := let.Act2(func(t *testcase.T) (int, error) {
			return subject.Get(t).Compare(left.Get(t), right.Get(t))
		})

		s.When("left is nil", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) *string { return nil })

			s.Then("nil comes last", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.True(t, compare.IsMore(got))
			})
		})

		s.When("right is nil", func(s *testcase.Spec) {
			right.Let(s, func(t *testcase.T) *string { return nil })

			s.Then("the non-nil left comes first", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.True(t, compare.IsLess(got))
			})
		})

		s.Test("reversing equals nulls first over the reversed inner ordering", func(t *testcase.T) {
			v := ptr(t.Random.String())
			got, err := compare.Reverse(subject.Get(t)).Compare(nil, v)
			assert.NoError(t, err)
			exp, err := compare.NullsFirst(compare.Reverse(inner.Get(t))).Compare(nil, v)
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		})
	})
}

func TestNulls_sort(t *testing.T) {
	input := func() []*string {
		return []*string{ptr("b"), ptr("a"), nil, ptr("d"), ptr("c"), nil}
	}

	for _, tc := range []struct {
		Desc string
		Cmp  compare.Comparator[*string]
		Exp  []string
	}{
		{
			Desc: "nulls first",
			Cmp:  compare.NullsFirst(compare.NaturalOrder[string]()),
			Exp:  []string{"<nil>", "<nil>", "a", "b", "c", "d"},
		},
		{
			Desc: "nulls first reversed",
			Cmp:  compare.Reverse(compare.NullsFirst(compare.NaturalOrder[string]())),
			Exp:  []string{"d", "c", "b", "a", "<nil>", "<nil>"},
		},
		{
			Desc: "nulls last",
			Cmp:  compare.NullsLast(compare.NaturalOrder[string]()),
			Exp:  []string{"a", "b", "c", "d", "<nil>", "<nil>"},
		},
		{
			Desc: "nulls last reversed",
			Cmp:  compare.Reverse(compare.NullsLast(compare.NaturalOrder[string]())),
			Exp:  []string{"<nil>", "<nil>", "d", "c", "b", "a"},
		},
		{
			Desc: "nulls first without inner ordering keeps the original order",
			Cmp:  compare.NullsFirst[string](nil),
			Exp:  []string{"<nil>", "<nil>", "b", "a", "d", "c"},
		},
		{
			Desc: "nulls last without inner ordering keeps the original order",
			Cmp:  compare.NullsLast[string](nil),
			Exp:  []string{"b", "a", "d", "c", "<nil>", "<nil>"},
		},
	} {
		t.Run(tc.Desc, func(t *testing.T) {
			vs := input()
			assert.NoError(t, compare.SortStable(vs, tc.Cmp))
			assert.Equal(t, tc.Exp, deref(vs))
		})
	}

	t.Run("through the unchecked adapter", func(t *testing.T) {
		vs := input()
		slices.SortStableFunc(vs, compare.Unchecked(compare.NullsFirst(compare.NaturalOrder[string]())))
		assert.Equal(t, []string{"<nil>", "<nil>", "a", "b", "c", "d"}, deref(vs))
	})
}

func TestNulls_Then(t *testing.T) {
	byLength := compare.By(func(s *string) (int, error) { return len(*s), nil })

	t.Run("tie-breaker is composed into the inner ordering", func(t *testing.T) {
		c := compare.Then(compare.NullsFirst(byLength), compare.NaturalOrder[string]())
		vs := []*string{ptr("bb"), nil, ptr("c"), ptr("aa"), ptr("a")}
		assert.NoError(t, compare.SortStable(vs, c))
		assert.Equal(t, []string{"<nil>", "a", "c", "aa", "bb"}, deref(vs))
	})

	t.Run("tie-breaker becomes the inner ordering when there was none", func(t *testing.T) {
		c := compare.Then(compare.NullsLast[string](nil), compare.ReverseOrder[string]())
		vs := []*string{ptr("a"), nil, ptr("c"), ptr("b")}
		assert.NoError(t, compare.SortStable(vs, c))
		assert.Equal(t, []string{"c", "b", "a", "<nil>"}, deref(vs))

		d, err := compare.Describe(c)
		assert.NoError(t, err)
		assert.Equal(t, "nulls-last(reverse-natural)", d.String())
	})

	t.Run("reversing keeps nil handling outermost", func(t *testing.T) {
		c := compare.Reverse(compare.Then(compare.NullsFirst(byLength), compare.NaturalOrder[string]()))
		vs := []*string{ptr("bb"), nil, ptr("c"), ptr("aa"), ptr("a")}
		assert.NoError(t, compare.SortStable(vs, c))
		assert.Equal(t, []string{"bb", "aa", "c", "a", "<nil>"}, deref(vs))
	})

	t.Run("missing tie-breaker", func(t *testing.T) {
		out := assert.Panic(t, func() {
			compare.Then(compare.NullsFirst[string](nil), nil)
		})
		err, ok := out.(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, compare.ErrInvalidArgument))
	})
}
