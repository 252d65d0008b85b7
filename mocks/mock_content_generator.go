package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shiksha/internal/port"
)

// MockContentGenerator is a mock implementation of port.ContentGenerator.
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) Generate(ctx context.Context, input port.GenerateInput) (*port.GenerateOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.GenerateOutput), args.Error(1)
}
