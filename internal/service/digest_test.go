package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mealmuse/recipechat/backend/internal/store"
	"github.com/mealmuse/recipechat/backend/internal/testhelpers"
)

func TestStatsDigest_Start(t *testing.T) {
	t.Run("should stay disabled without a schedule", func(t *testing.T) {
		digest := NewStatsDigest(newTestFileStore(t), "")

		require.NoError(t, digest.Start())
		assert.Nil(t, digest.cron)
		digest.Stop()
	})

	t.Run("should accept a valid cron expression", func(t *testing.T) {
		digest := NewStatsDigest(newTestFileStore(t), "@hourly")

		require.NoError(t, digest.Start())
		assert.NotNil(t, digest.cron)
		digest.Stop()
	})

	t.Run("should reject a bad cron expression", func(t *testing.T) {
		digest := NewStatsDigest(newTestFileStore(t), "every five minutes")

		err := digest.Start()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid digest schedule")
	})
}

func TestStatsDigest_Run(t *testing.T) {
	t.Run("should read the summary once per run", func(t *testing.T) {
		mockStore := new(testhelpers.MockFeedbackStore)
		mockStore.On("Load", mock.Anything).Return(store.Counters{
			store.SignalPositiveFeedback: 2,
			store.SignalMakeEasier:       1,
		}, nil).Once()
		digest := NewStatsDigest(mockStore, "@hourly")

		digest.run()

		mockStore.AssertExpectations(t)
	})

	t.Run("should survive an unreadable summary", func(t *testing.T) {
		mockStore := new(testhelpers.MockFeedbackStore)
		mockStore.On("Load", mock.Anything).Return(nil, errors.New("corrupt")).Once()
		digest := NewStatsDigest(mockStore, "@hourly")

		digest.run()

		mockStore.AssertExpectations(t)
	})

	t.Run("should handle an empty summary", func(t *testing.T) {
		fileStore := newTestFileStore(t)
		require.NoError(t, fileStore.Save(context.Background(), store.Counters{}))
		digest := NewStatsDigest(fileStore, "@hourly")

		digest.run()
	})
}
