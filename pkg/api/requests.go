package api

// SendMessageRequest is the body of POST /api/v1/chat.
type SendMessageRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// UpdateSessionRequest is the body of PATCH /api/v1/sessions/:id.
type UpdateSessionRequest struct {
	Title string `json:"title"`
}

// SubmitFeedbackRequest is the body of POST /api/v1/turns/:id/feedback.
// Comment is optional; when present it is recorded alongside the vote.
type SubmitFeedbackRequest struct {
	Score   int    `json:"score"` // +1 or -1
	Comment string `json:"comment,omitempty"`
}

// AddCommentRequest is the body of POST /api/v1/turns/:id/comments.
type AddCommentRequest struct {
	Body string `json:"body"`
}
