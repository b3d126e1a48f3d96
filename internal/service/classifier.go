package service

import (
	"strings"

	"github.com/mealmuse/recipechat/backend/internal/store"
)

// Feedback types accepted on the feedback endpoint.
const (
	FeedbackTypeUpvote   = "upvote"
	FeedbackTypeDownvote = "downvote"
)

// complaintRule pairs a preference signal with the phrases that trigger it.
type complaintRule struct {
	signal  string
	phrases []string
}

// Matching is a plain substring scan, so "simple" also fires inside
// "simpler" and "add" inside "addition". Downstream tuning depends on
// these exact semantics; do not switch to word-boundary matching.
var complaintRules = []complaintRule{
	{store.SignalMakeHarder, []string{"too easy", "simple"}},
	{store.SignalMakeEasier, []string{"too hard", "complex"}},
	{store.SignalAddIngredients, []string{"more ingredient", "add"}},
	{store.SignalReduceIngredients, []string{"less ingredient", "simplify"}},
	{store.SignalShorterTime, []string{"faster", "quick"}},
	{store.SignalLongerTime, []string{"longer", "slow cook"}},
}

// PreferenceClassifier turns one feedback submission into preference
// signal increments.
type PreferenceClassifier struct{}

func NewPreferenceClassifier() *PreferenceClassifier {
	return &PreferenceClassifier{}
}

// Classify returns the signals to increment for a feedback submission.
// Upvotes count as positive feedback only. Everything else takes the
// downvote path: negative feedback plus every complaint rule whose phrase
// appears in the message. All matching rules fire, so a message naming
// both sides of an axis bumps both counters.
func (c *PreferenceClassifier) Classify(feedbackType, message string) []string {
	if feedbackType == FeedbackTypeUpvote {
		return []string{store.SignalPositiveFeedback}
	}

	signals := []string{store.SignalNegativeFeedback}
	msg := strings.ToLower(message)
	for _, rule := range complaintRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(msg, phrase) {
				signals = append(signals, rule.signal)
				break
			}
		}
	}
	return signals
}
