package api

import (
	"time"

	"github.com/vibemonitor/rca/ent"
)

// SendMessageResponse is the body of a successful POST /api/v1/chat.
// The answer itself arrives on the turn's stream, not here.
type SendMessageResponse struct {
	TurnID    string `json:"turn_id"`
	SessionID string `json:"session_id"`
}

// QuotaExceededResponse is the 429 body for both quota exhaustion and
// queue-capacity rejection. Limit/ResetAt are set only for the former.
type QuotaExceededResponse struct {
	Error   string     `json:"error"` // always "quota_exceeded"
	Reason  string     `json:"reason,omitempty"`
	Limit   int        `json:"limit,omitempty"`
	ResetAt *time.Time `json:"reset_at,omitempty"`
}

// TurnDetailResponse is the body of GET /api/v1/turns/:id.
type TurnDetailResponse struct {
	Turn  *ent.ChatTurn   `json:"turn"`
	Steps []*ent.TurnStep `json:"steps"`
}

// SessionTurnsResponse is the body of GET /api/v1/sessions/:id/turns.
type SessionTurnsResponse struct {
	Turns []*ent.ChatTurn `json:"turns"`
}

// CommentResponse is the body of a successful POST /api/v1/turns/:id/comments.
type CommentResponse struct {
	ID        string    `json:"id"`
	TurnID    string    `json:"turn_id"`
	UserID    string    `json:"user_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status             string `json:"status"` // "healthy" or "unhealthy"
	DB                 string `json:"db"`     // "ok" or "fail"
	Bus                string `json:"bus"`
	Queue              string `json:"queue"`
	WorkersSeenLast60s int    `json:"workers_seen_last_60s"`
	Detail             string `json:"detail,omitempty"`
}
