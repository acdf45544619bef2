package dto

import "time"

// CreateFeedbackRequest cuerpo de POST /api/feedback.
// El autor se toma del token; no viaja en el cuerpo.
type CreateFeedbackRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// FeedbackResponse entrada del dev log con el autor resuelto.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
