package models

// ChatRequest is the body of a chat assistant request.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// ChatResponse carries the assistant's free-text reply.
type ChatResponse struct {
	Response string `json:"response"`
}
