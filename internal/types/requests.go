package types

// ChatMessage is one entry of the caller-supplied conversation history
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest represents the request body for a chat turn
type ChatRequest struct {
	Message string        `json:"message" binding:"required"`
	History []ChatMessage `json:"history"`
}

// ChatResponse carries the model reply. Reply holds a parsed JSON document
// when IsJSON is set and the raw reply text otherwise.
type ChatResponse struct {
	Reply  interface{} `json:"reply"`
	IsJSON bool        `json:"is_json"`
}

// FeedbackRequest represents the request body for a feedback submission.
// Type is upvote or downvote; any other value is counted as a downvote.
type FeedbackRequest struct {
	Type    string `json:"type" binding:"required"`
	Message string `json:"message"`
}

// FeedbackResponse acknowledges a feedback submission
type FeedbackResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatsResponse mirrors the persisted preference summary shape
type StatsResponse struct {
	Preferences map[string]int `json:"preferences"`
}
