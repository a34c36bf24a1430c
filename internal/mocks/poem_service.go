package mocks

import (
	"context"

	"github.com/phrazzld/haengsi/internal/domain"
)

// MockPoemService is a mock implementation of service.PoemService
type MockPoemService struct {
	ComposeFn func(ctx context.Context, rawWord string) (*domain.Poem, error)
}

// Compose implements service.PoemService
func (m *MockPoemService) Compose(ctx context.Context, rawWord string) (*domain.Poem, error) {
	if m.ComposeFn != nil {
		return m.ComposeFn(ctx, rawWord)
	}
	return nil, nil
}
