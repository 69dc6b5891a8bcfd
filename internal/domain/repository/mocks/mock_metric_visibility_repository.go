package mocks

import (
	"context"

	"github.com/bnema/cardboard/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockMetricVisibilityRepository is a mock implementation of the MetricVisibilityRepository type.
type MockMetricVisibilityRepository struct {
	mock.Mock
}

type MockMetricVisibilityRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMetricVisibilityRepository) EXPECT() *MockMetricVisibilityRepository_Expecter {
	return &MockMetricVisibilityRepository_Expecter{mock: &_m.Mock}
}

// Get provides a mock function for the type MockMetricVisibilityRepository
func (_mock *MockMetricVisibilityRepository) Get(ctx context.Context, key entity.MetricKey) (*entity.MetricVisibility, error) {
	ret := _mock.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.MetricVisibility
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.MetricKey) (*entity.MetricVisibility, error)); ok {
		return returnFunc(ctx, key)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.MetricKey) *entity.MetricVisibility); ok {
		r0 = returnFunc(ctx, key)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.MetricVisibility)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, entity.MetricKey) error); ok {
		r1 = returnFunc(ctx, key)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockMetricVisibilityRepository_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockMetricVisibilityRepository_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - key entity.MetricKey
func (_e *MockMetricVisibilityRepository_Expecter) Get(ctx interface{}, key interface{}) *MockMetricVisibilityRepository_Get_Call {
	return &MockMetricVisibilityRepository_Get_Call{Call: _e.mock.On("Get", ctx, key)}
}

func (_c *MockMetricVisibilityRepository_Get_Call) Run(run func(ctx context.Context, key entity.MetricKey)) *MockMetricVisibilityRepository_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.MetricKey))
	})
	return _c
}

func (_c *MockMetricVisibilityRepository_Get_Call) Return(_a0 *entity.MetricVisibility, _a1 error) *MockMetricVisibilityRepository_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMetricVisibilityRepository_Get_Call) RunAndReturn(run func(context.Context, entity.MetricKey) (*entity.MetricVisibility, error)) *MockMetricVisibilityRepository_Get_Call {
	_c.Call.Return(run)
	return _c
}

// GetByScene provides a mock function for the type MockMetricVisibilityRepository
func (_mock *MockMetricVisibilityRepository) GetByScene(ctx context.Context, scene string) ([]entity.MetricVisibility, error) {
	ret := _mock.Called(ctx, scene)

	if len(ret) == 0 {
		panic("no return value specified for GetByScene")
	}

	var r0 []entity.MetricVisibility
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) ([]entity.MetricVisibility, error)); ok {
		return returnFunc(ctx, scene)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) []entity.MetricVisibility); ok {
		r0 = returnFunc(ctx, scene)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]entity.MetricVisibility)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, scene)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockMetricVisibilityRepository_GetByScene_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetByScene'
type MockMetricVisibilityRepository_GetByScene_Call struct {
	*mock.Call
}

// GetByScene is a helper method to define mock.On call
//   - ctx context.Context
//   - scene string
func (_e *MockMetricVisibilityRepository_Expecter) GetByScene(ctx interface{}, scene interface{}) *MockMetricVisibilityRepository_GetByScene_Call {
	return &MockMetricVisibilityRepository_GetByScene_Call{Call: _e.mock.On("GetByScene", ctx, scene)}
}

func (_c *MockMetricVisibilityRepository_GetByScene_Call) Run(run func(ctx context.Context, scene string)) *MockMetricVisibilityRepository_GetByScene_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockMetricVisibilityRepository_GetByScene_Call) Return(_a0 []entity.MetricVisibility, _a1 error) *MockMetricVisibilityRepository_GetByScene_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMetricVisibilityRepository_GetByScene_Call) RunAndReturn(run func(context.Context, string) ([]entity.MetricVisibility, error)) *MockMetricVisibilityRepository_GetByScene_Call {
	_c.Call.Return(run)
	return _c
}

// Set provides a mock function for the type MockMetricVisibilityRepository
func (_mock *MockMetricVisibilityRepository) Set(ctx context.Context, visibility entity.MetricVisibility) error {
	ret := _mock.Called(ctx, visibility)

	if len(ret) == 0 {
		panic("no return value specified for Set")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.MetricVisibility) error); ok {
		r0 = returnFunc(ctx, visibility)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockMetricVisibilityRepository_Set_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Set'
type MockMetricVisibilityRepository_Set_Call struct {
	*mock.Call
}

// Set is a helper method to define mock.On call
//   - ctx context.Context
//   - visibility entity.MetricVisibility
func (_e *MockMetricVisibilityRepository_Expecter) Set(ctx interface{}, visibility interface{}) *MockMetricVisibilityRepository_Set_Call {
	return &MockMetricVisibilityRepository_Set_Call{Call: _e.mock.On("Set", ctx, visibility)}
}

func (_c *MockMetricVisibilityRepository_Set_Call) Run(run func(ctx context.Context, visibility entity.MetricVisibility)) *MockMetricVisibilityRepository_Set_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.MetricVisibility))
	})
	return _c
}

func (_c *MockMetricVisibilityRepository_Set_Call) Return(_a0 error) *MockMetricVisibilityRepository_Set_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMetricVisibilityRepository_Set_Call) RunAndReturn(run func(context.Context, entity.MetricVisibility) error) *MockMetricVisibilityRepository_Set_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMetricVisibilityRepository creates a new instance of MockMetricVisibilityRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMetricVisibilityRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMetricVisibilityRepository {
	m := &MockMetricVisibilityRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
