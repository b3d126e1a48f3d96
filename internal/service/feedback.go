package service

import (
	"context"
	"log"
	"time"

	"github.com/mealmuse/recipechat/backend/internal/store"
	"github.com/mealmuse/recipechat/backend/internal/types"
)

// FeedbackService records feedback submissions: the raw event goes to the
// append-only log, the classified signals bump the preference summary.
type FeedbackService struct {
	store      store.FeedbackStore
	classifier *PreferenceClassifier
}

func NewFeedbackService(feedbackStore store.FeedbackStore) IFeedbackService {
	return &FeedbackService{
		store:      feedbackStore,
		classifier: NewPreferenceClassifier(),
	}
}

// RecordFeedback persists one submission. Every persistence failure is
// logged and swallowed so the submission is always accepted; a lost write
// costs one counter increment and nothing else.
func (s *FeedbackService) RecordFeedback(ctx context.Context, req *types.FeedbackRequest) {
	log.Printf("User feedback received: type=%s message=%q", req.Type, req.Message)

	event := store.Event{
		OccurredAt: time.Now(),
		Type:       req.Type,
		Message:    req.Message,
	}
	if err := s.store.Append(ctx, event); err != nil {
		log.Printf("Failed to append feedback event: %v", err)
	}

	counters, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("Failed to load feedback summary: %v", err)
		counters = store.Counters{}
	}
	for _, signal := range s.classifier.Classify(req.Type, req.Message) {
		counters[signal]++
	}
	if err := s.store.Save(ctx, counters); err != nil {
		log.Printf("Failed to save feedback summary: %v", err)
	}
}

// Stats returns the current preference counters. An unreadable summary is
// served as empty rather than an error.
func (s *FeedbackService) Stats(ctx context.Context) store.Counters {
	counters, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("Failed to load feedback summary: %v", err)
		return store.Counters{}
	}
	return counters
}
