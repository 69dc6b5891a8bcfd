package mocks

import (
	"context"

	"github.com/bnema/cardboard/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockCanvasStateRepository is a mock implementation of the CanvasStateRepository type.
type MockCanvasStateRepository struct {
	mock.Mock
}

type MockCanvasStateRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCanvasStateRepository) EXPECT() *MockCanvasStateRepository_Expecter {
	return &MockCanvasStateRepository_Expecter{mock: &_m.Mock}
}

// Get provides a mock function for the type MockCanvasStateRepository
func (_mock *MockCanvasStateRepository) Get(ctx context.Context) (*entity.CanvasTransform, error) {
	ret := _mock.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.CanvasTransform
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context) (*entity.CanvasTransform, error)); ok {
		return returnFunc(ctx)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context) *entity.CanvasTransform); ok {
		r0 = returnFunc(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.CanvasTransform)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = returnFunc(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCanvasStateRepository_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockCanvasStateRepository_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCanvasStateRepository_Expecter) Get(ctx interface{}) *MockCanvasStateRepository_Get_Call {
	return &MockCanvasStateRepository_Get_Call{Call: _e.mock.On("Get", ctx)}
}

func (_c *MockCanvasStateRepository_Get_Call) Run(run func(ctx context.Context)) *MockCanvasStateRepository_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockCanvasStateRepository_Get_Call) Return(_a0 *entity.CanvasTransform, _a1 error) *MockCanvasStateRepository_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCanvasStateRepository_Get_Call) RunAndReturn(run func(context.Context) (*entity.CanvasTransform, error)) *MockCanvasStateRepository_Get_Call {
	_c.Call.Return(run)
	return _c
}

// Save provides a mock function for the type MockCanvasStateRepository
func (_mock *MockCanvasStateRepository) Save(ctx context.Context, transform entity.CanvasTransform) error {
	ret := _mock.Called(ctx, transform)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.CanvasTransform) error); ok {
		r0 = returnFunc(ctx, transform)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockCanvasStateRepository_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockCanvasStateRepository_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
//   - ctx context.Context
//   - transform entity.CanvasTransform
func (_e *MockCanvasStateRepository_Expecter) Save(ctx interface{}, transform interface{}) *MockCanvasStateRepository_Save_Call {
	return &MockCanvasStateRepository_Save_Call{Call: _e.mock.On("Save", ctx, transform)}
}

func (_c *MockCanvasStateRepository_Save_Call) Run(run func(ctx context.Context, transform entity.CanvasTransform)) *MockCanvasStateRepository_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.CanvasTransform))
	})
	return _c
}

func (_c *MockCanvasStateRepository_Save_Call) Return(_a0 error) *MockCanvasStateRepository_Save_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCanvasStateRepository_Save_Call) RunAndReturn(run func(context.Context, entity.CanvasTransform) error) *MockCanvasStateRepository_Save_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCanvasStateRepository creates a new instance of MockCanvasStateRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCanvasStateRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCanvasStateRepository {
	m := &MockCanvasStateRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
