package service

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mealmuse/recipechat/backend/internal/store"
	"github.com/mealmuse/recipechat/backend/internal/testhelpers"
	"github.com/mealmuse/recipechat/backend/internal/types"
)

func TestFeedbackService_RecordFeedback(t *testing.T) {
	t.Run("should count an upvote as positive feedback", func(t *testing.T) {
		fileStore := newTestFileStore(t)
		svc := NewFeedbackService(fileStore)

		svc.RecordFeedback(context.Background(), &types.FeedbackRequest{Type: FeedbackTypeUpvote})

		counters, err := fileStore.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, store.Counters{store.SignalPositiveFeedback: 1}, counters)
	})

	t.Run("should classify downvote complaints into signals", func(t *testing.T) {
		fileStore := newTestFileStore(t)
		svc := NewFeedbackService(fileStore)

		svc.RecordFeedback(context.Background(), &types.FeedbackRequest{
			Type:    FeedbackTypeDownvote,
			Message: "too hard, add ingredients",
		})

		counters, err := fileStore.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, store.Counters{
			store.SignalNegativeFeedback: 1,
			store.SignalMakeEasier:       1,
			store.SignalAddIngredients:   1,
		}, counters)
	})

	t.Run("should accumulate counters across submissions", func(t *testing.T) {
		fileStore := newTestFileStore(t)
		svc := NewFeedbackService(fileStore)

		for i := 0; i < 3; i++ {
			svc.RecordFeedback(context.Background(), &types.FeedbackRequest{
				Type:    FeedbackTypeDownvote,
				Message: "too easy",
			})
		}
		svc.RecordFeedback(context.Background(), &types.FeedbackRequest{Type: FeedbackTypeUpvote})

		counters, err := fileStore.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, counters[store.SignalNegativeFeedback])
		assert.Equal(t, 3, counters[store.SignalMakeHarder])
		assert.Equal(t, 1, counters[store.SignalPositiveFeedback])
	})

	t.Run("should treat unknown types as downvotes", func(t *testing.T) {
		fileStore := newTestFileStore(t)
		svc := NewFeedbackService(fileStore)

		svc.RecordFeedback(context.Background(), &types.FeedbackRequest{
			Type:    "complaint",
			Message: "too complex",
		})

		counters, err := fileStore.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, counters[store.SignalNegativeFeedback])
		assert.Equal(t, 1, counters[store.SignalMakeEasier])
	})

	t.Run("should append every submission to the event log", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(dir, "feedback_log.jsonl")
		fileStore := store.NewFileStore(filepath.Join(dir, "feedback_summary.json"), logPath)
		svc := NewFeedbackService(fileStore)

		svc.RecordFeedback(context.Background(), &types.FeedbackRequest{Type: FeedbackTypeUpvote, Message: "great"})
		svc.RecordFeedback(context.Background(), &types.FeedbackRequest{Type: FeedbackTypeDownvote, Message: "too easy"})

		f, err := os.Open(logPath)
		require.NoError(t, err)
		defer f.Close()

		var entries []map[string]string
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			var entry map[string]string
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
			entries = append(entries, entry)
		}
		require.NoError(t, scanner.Err())

		require.Len(t, entries, 2)
		assert.Equal(t, "upvote", entries[0]["type"])
		assert.Equal(t, "great", entries[0]["message"])
		assert.Equal(t, "downvote", entries[1]["type"])
		assert.Equal(t, "too easy", entries[1]["message"])
		assert.NotEmpty(t, entries[0]["timestamp"])
	})

	t.Run("should swallow every persistence failure", func(t *testing.T) {
		mockStore := new(testhelpers.MockFeedbackStore)
		mockStore.On("Append", mock.Anything, mock.Anything).Return(errors.New("log gone"))
		mockStore.On("Load", mock.Anything).Return(nil, errors.New("summary gone"))
		mockStore.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))
		svc := NewFeedbackService(mockStore)

		svc.RecordFeedback(context.Background(), &types.FeedbackRequest{
			Type:    FeedbackTypeDownvote,
			Message: "too hard",
		})

		mockStore.AssertExpectations(t)
	})

	t.Run("should still save counters when the append fails", func(t *testing.T) {
		mockStore := new(testhelpers.MockFeedbackStore)
		mockStore.On("Append", mock.Anything, mock.Anything).Return(errors.New("log gone"))
		mockStore.On("Load", mock.Anything).Return(store.Counters{}, nil)
		mockStore.On("Save", mock.Anything, store.Counters{store.SignalPositiveFeedback: 1}).Return(nil)
		svc := NewFeedbackService(mockStore)

		svc.RecordFeedback(context.Background(), &types.FeedbackRequest{Type: FeedbackTypeUpvote})

		mockStore.AssertExpectations(t)
	})
}

func TestFeedbackService_Stats(t *testing.T) {
	t.Run("should return the stored counters", func(t *testing.T) {
		fileStore := newTestFileStore(t)
		require.NoError(t, fileStore.Save(context.Background(), store.Counters{
			store.SignalPositiveFeedback: 4,
			store.SignalShorterTime:      2,
		}))
		svc := NewFeedbackService(fileStore)

		stats := svc.Stats(context.Background())

		assert.Equal(t, store.Counters{
			store.SignalPositiveFeedback: 4,
			store.SignalShorterTime:      2,
		}, stats)
	})

	t.Run("should serve empty stats when the summary is unreadable", func(t *testing.T) {
		mockStore := new(testhelpers.MockFeedbackStore)
		mockStore.On("Load", mock.Anything).Return(nil, errors.New("corrupt"))
		svc := NewFeedbackService(mockStore)

		stats := svc.Stats(context.Background())

		assert.Empty(t, stats)
		mockStore.AssertExpectations(t)
	})
}
