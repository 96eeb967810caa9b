// Package comparemock provides a gomock based test double for compare.Comparator.
package comparemock

import (
	"reflect"

	"github.com/adamluzsi/checked/pkg/compare"
	"github.com/golang/mock/gomock"
)

var _ compare.Comparator[int] = (*MockComparator[int])(nil)

// MockComparator is a mock of the compare.Comparator interface.
type MockComparator[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockComparatorMockRecorder[T]
}

// MockComparatorMockRecorder is the mock recorder for MockComparator.
type MockComparatorMockRecorder[T any] struct {
	mock *MockComparator[T]
}

// NewMockComparator creates a new mock instance.
func NewMockComparator[T any](ctrl *gomock.Controller) *MockComparator[T] {
	mock := &MockComparator[T]{ctrl: ctrl}
	mock.recorder = &MockComparatorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockComparator[T]) EXPECT() *MockComparatorMockRecorder[T] {
	return m.recorder
}

// Compare mocks base method.
func (m *MockComparator[T]) Compare(left, right T) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compare", left, right)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Compare indicates an expected call of Compare.
func (mr *MockComparatorMockRecorder[T]) Compare(left, right any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compare", reflect.TypeOf((*MockComparator[T])(nil).Compare), left, right)
}
