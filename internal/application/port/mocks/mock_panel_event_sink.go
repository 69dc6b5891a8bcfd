package mocks

import (
	"context"

	"github.com/bnema/cardboard/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockPanelEventSink is a mock implementation of the PanelEventSink type.
type MockPanelEventSink struct {
	mock.Mock
}

type MockPanelEventSink_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPanelEventSink) EXPECT() *MockPanelEventSink_Expecter {
	return &MockPanelEventSink_Expecter{mock: &_m.Mock}
}

// PanelChanged provides a mock function for the type MockPanelEventSink
func (_mock *MockPanelEventSink) PanelChanged(ctx context.Context, event entity.PanelEvent) {
	_mock.Called(ctx, event)
	return
}

// MockPanelEventSink_PanelChanged_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PanelChanged'
type MockPanelEventSink_PanelChanged_Call struct {
	*mock.Call
}

// PanelChanged is a helper method to define mock.On call
//   - ctx context.Context
//   - event entity.PanelEvent
func (_e *MockPanelEventSink_Expecter) PanelChanged(ctx interface{}, event interface{}) *MockPanelEventSink_PanelChanged_Call {
	return &MockPanelEventSink_PanelChanged_Call{Call: _e.mock.On("PanelChanged", ctx, event)}
}

func (_c *MockPanelEventSink_PanelChanged_Call) Run(run func(ctx context.Context, event entity.PanelEvent)) *MockPanelEventSink_PanelChanged_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.PanelEvent))
	})
	return _c
}

func (_c *MockPanelEventSink_PanelChanged_Call) Return() *MockPanelEventSink_PanelChanged_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockPanelEventSink_PanelChanged_Call) RunAndReturn(run func(context.Context, entity.PanelEvent)) *MockPanelEventSink_PanelChanged_Call {
	_c.Run(run)
	return _c
}

// TransformChanged provides a mock function for the type MockPanelEventSink
func (_mock *MockPanelEventSink) TransformChanged(ctx context.Context, transform entity.CanvasTransform) {
	_mock.Called(ctx, transform)
	return
}

// MockPanelEventSink_TransformChanged_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TransformChanged'
type MockPanelEventSink_TransformChanged_Call struct {
	*mock.Call
}

// TransformChanged is a helper method to define mock.On call
//   - ctx context.Context
//   - transform entity.CanvasTransform
func (_e *MockPanelEventSink_Expecter) TransformChanged(ctx interface{}, transform interface{}) *MockPanelEventSink_TransformChanged_Call {
	return &MockPanelEventSink_TransformChanged_Call{Call: _e.mock.On("TransformChanged", ctx, transform)}
}

func (_c *MockPanelEventSink_TransformChanged_Call) Run(run func(ctx context.Context, transform entity.CanvasTransform)) *MockPanelEventSink_TransformChanged_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.CanvasTransform))
	})
	return _c
}

func (_c *MockPanelEventSink_TransformChanged_Call) Return() *MockPanelEventSink_TransformChanged_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockPanelEventSink_TransformChanged_Call) RunAndReturn(run func(context.Context, entity.CanvasTransform)) *MockPanelEventSink_TransformChanged_Call {
	_c.Run(run)
	return _c
}

// NewMockPanelEventSink creates a new instance of MockPanelEventSink. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPanelEventSink(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPanelEventSink {
	m := &MockPanelEventSink{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
