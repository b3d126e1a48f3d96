package testhelpers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mealmuse/recipechat/backend/internal/store"
)

// MockFeedbackStore is a mock implementation of the store.FeedbackStore interface
type MockFeedbackStore struct {
	mock.Mock
}

func (m *MockFeedbackStore) Load(ctx context.Context) (store.Counters, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(store.Counters), args.Error(1)
}

func (m *MockFeedbackStore) Save(ctx context.Context, counters store.Counters) error {
	args := m.Called(ctx, counters)
	return args.Error(0)
}

func (m *MockFeedbackStore) Append(ctx context.Context, event store.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockLLMGateway is a mock implementation of the service.LLMGateway interface
type MockLLMGateway struct {
	mock.Mock
}

func (m *MockLLMGateway) Generate(ctx context.Context, prompt string) (string, bool) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Bool(1)
}
