package mocks

import (
	"context"

	"github.com/raushankrgupta/trymeup/session"
	"github.com/stretchr/testify/mock"
)

// MockFeedbackProvider is a mock type for the session.FeedbackProvider type
type MockFeedbackProvider struct {
	mock.Mock
}

// Feedback provides a mock function with given fields: ctx, self, outfit
func (_m *MockFeedbackProvider) Feedback(ctx context.Context, self session.EncodedImage, outfit session.EncodedImage) (string, error) {
	ret := _m.Called(ctx, self, outfit)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, session.EncodedImage, session.EncodedImage) string); ok {
		r0 = rf(ctx, self, outfit)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, session.EncodedImage, session.EncodedImage) error); ok {
		r1 = rf(ctx, self, outfit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockFeedbackProvider creates a new instance of MockFeedbackProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockFeedbackProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeedbackProvider {
	m := &MockFeedbackProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ session.FeedbackProvider = (*MockFeedbackProvider)(nil)
