package testutil

import (
	"context"

	"lexibot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock for SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SetLevel(userID int64, level domain.Level) {
	m.Called(userID, level)
}

func (m *MockSessionRepository) GetLevel(userID int64) (domain.Level, bool) {
	args := m.Called(userID)
	return args.Get(0).(domain.Level), args.Bool(1)
}

func (m *MockSessionRepository) AddWord(userID int64, term string) bool {
	args := m.Called(userID, term)
	return args.Bool(0)
}

func (m *MockSessionRepository) ListWords(userID int64) []string {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

// MockExampleGenerator is a mock for ExampleGenerator
type MockExampleGenerator struct {
	mock.Mock
}

func (m *MockExampleGenerator) Example(ctx context.Context, word string) (string, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Error(1)
}
