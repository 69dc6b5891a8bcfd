package mocks

import (
	"context"

	"github.com/bnema/cardboard/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockPanelStateRepository is a mock implementation of the PanelStateRepository type.
type MockPanelStateRepository struct {
	mock.Mock
}

type MockPanelStateRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPanelStateRepository) EXPECT() *MockPanelStateRepository_Expecter {
	return &MockPanelStateRepository_Expecter{mock: &_m.Mock}
}

// Delete provides a mock function for the type MockPanelStateRepository
func (_mock *MockPanelStateRepository) Delete(ctx context.Context, id entity.PanelID) error {
	ret := _mock.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.PanelID) error); ok {
		r0 = returnFunc(ctx, id)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockPanelStateRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockPanelStateRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id entity.PanelID
func (_e *MockPanelStateRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockPanelStateRepository_Delete_Call {
	return &MockPanelStateRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockPanelStateRepository_Delete_Call) Run(run func(ctx context.Context, id entity.PanelID)) *MockPanelStateRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.PanelID))
	})
	return _c
}

func (_c *MockPanelStateRepository_Delete_Call) Return(_a0 error) *MockPanelStateRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPanelStateRepository_Delete_Call) RunAndReturn(run func(context.Context, entity.PanelID) error) *MockPanelStateRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// Get provides a mock function for the type MockPanelStateRepository
func (_mock *MockPanelStateRepository) Get(ctx context.Context, id entity.PanelID) (*entity.PanelRecord, error) {
	ret := _mock.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.PanelRecord
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.PanelID) (*entity.PanelRecord, error)); ok {
		return returnFunc(ctx, id)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.PanelID) *entity.PanelRecord); ok {
		r0 = returnFunc(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.PanelRecord)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, entity.PanelID) error); ok {
		r1 = returnFunc(ctx, id)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockPanelStateRepository_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockPanelStateRepository_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - id entity.PanelID
func (_e *MockPanelStateRepository_Expecter) Get(ctx interface{}, id interface{}) *MockPanelStateRepository_Get_Call {
	return &MockPanelStateRepository_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockPanelStateRepository_Get_Call) Run(run func(ctx context.Context, id entity.PanelID)) *MockPanelStateRepository_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.PanelID))
	})
	return _c
}

func (_c *MockPanelStateRepository_Get_Call) Return(_a0 *entity.PanelRecord, _a1 error) *MockPanelStateRepository_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPanelStateRepository_Get_Call) RunAndReturn(run func(context.Context, entity.PanelID) (*entity.PanelRecord, error)) *MockPanelStateRepository_Get_Call {
	_c.Call.Return(run)
	return _c
}

// GetAll provides a mock function for the type MockPanelStateRepository
func (_mock *MockPanelStateRepository) GetAll(ctx context.Context) (map[entity.PanelID]entity.PanelRecord, error) {
	ret := _mock.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetAll")
	}

	var r0 map[entity.PanelID]entity.PanelRecord
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context) (map[entity.PanelID]entity.PanelRecord, error)); ok {
		return returnFunc(ctx)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context) map[entity.PanelID]entity.PanelRecord); ok {
		r0 = returnFunc(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[entity.PanelID]entity.PanelRecord)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = returnFunc(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockPanelStateRepository_GetAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetAll'
type MockPanelStateRepository_GetAll_Call struct {
	*mock.Call
}

// GetAll is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockPanelStateRepository_Expecter) GetAll(ctx interface{}) *MockPanelStateRepository_GetAll_Call {
	return &MockPanelStateRepository_GetAll_Call{Call: _e.mock.On("GetAll", ctx)}
}

func (_c *MockPanelStateRepository_GetAll_Call) Run(run func(ctx context.Context)) *MockPanelStateRepository_GetAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockPanelStateRepository_GetAll_Call) Return(_a0 map[entity.PanelID]entity.PanelRecord, _a1 error) *MockPanelStateRepository_GetAll_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPanelStateRepository_GetAll_Call) RunAndReturn(run func(context.Context) (map[entity.PanelID]entity.PanelRecord, error)) *MockPanelStateRepository_GetAll_Call {
	_c.Call.Return(run)
	return _c
}

// Save provides a mock function for the type MockPanelStateRepository
func (_mock *MockPanelStateRepository) Save(ctx context.Context, id entity.PanelID, state entity.PanelState) error {
	ret := _mock.Called(ctx, id, state)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, entity.PanelID, entity.PanelState) error); ok {
		r0 = returnFunc(ctx, id, state)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockPanelStateRepository_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockPanelStateRepository_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
//   - ctx context.Context
//   - id entity.PanelID
//   - state entity.PanelState
func (_e *MockPanelStateRepository_Expecter) Save(ctx interface{}, id interface{}, state interface{}) *MockPanelStateRepository_Save_Call {
	return &MockPanelStateRepository_Save_Call{Call: _e.mock.On("Save", ctx, id, state)}
}

func (_c *MockPanelStateRepository_Save_Call) Run(run func(ctx context.Context, id entity.PanelID, state entity.PanelState)) *MockPanelStateRepository_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.PanelID), args[2].(entity.PanelState))
	})
	return _c
}

func (_c *MockPanelStateRepository_Save_Call) Return(_a0 error) *MockPanelStateRepository_Save_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPanelStateRepository_Save_Call) RunAndReturn(run func(context.Context, entity.PanelID, entity.PanelState) error) *MockPanelStateRepository_Save_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPanelStateRepository creates a new instance of MockPanelStateRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPanelStateRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPanelStateRepository {
	m := &MockPanelStateRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
