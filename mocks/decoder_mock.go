package mocks

import (
	"context"

	"github.com/raushankrgupta/trymeup/session"
	"github.com/stretchr/testify/mock"
)

// MockDecoder is a mock type for the session.Decoder type
type MockDecoder struct {
	mock.Mock
}

// Decode provides a mock function with given fields: ctx, raw
func (_m *MockDecoder) Decode(ctx context.Context, raw []byte) (session.EncodedImage, error) {
	ret := _m.Called(ctx, raw)

	var r0 session.EncodedImage
	if rf, ok := ret.Get(0).(func(context.Context, []byte) session.EncodedImage); ok {
		r0 = rf(ctx, raw)
	} else {
		r0 = ret.Get(0).(session.EncodedImage)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []byte) error); ok {
		r1 = rf(ctx, raw)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockDecoder creates a new instance of MockDecoder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockDecoder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDecoder {
	m := &MockDecoder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ session.Decoder = (*MockDecoder)(nil)
