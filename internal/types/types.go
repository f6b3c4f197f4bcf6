package types

import "hostel-assistant-backend/internal/assistant"

type ChatRequest struct {
	Message string                `json:"message"`
	User    assistant.UserProfile `json:"user,omitempty"`
}

// ContextResponse wraps the hydration payload for the page.
type ContextResponse struct {
	Context assistant.Context `json:"_context"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
