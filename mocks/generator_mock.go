package mocks

import (
	"context"

	"github.com/raushankrgupta/trymeup/session"
	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock type for the session.Generator type
type MockGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, self, outfit
func (_m *MockGenerator) Generate(ctx context.Context, self session.EncodedImage, outfit session.EncodedImage) (session.EncodedImage, error) {
	ret := _m.Called(ctx, self, outfit)

	var r0 session.EncodedImage
	if rf, ok := ret.Get(0).(func(context.Context, session.EncodedImage, session.EncodedImage) session.EncodedImage); ok {
		r0 = rf(ctx, self, outfit)
	} else {
		r0 = ret.Get(0).(session.EncodedImage)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, session.EncodedImage, session.EncodedImage) error); ok {
		r1 = rf(ctx, self, outfit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockGenerator creates a new instance of MockGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGenerator {
	m := &MockGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ session.Generator = (*MockGenerator)(nil)
