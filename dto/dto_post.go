package dto

// ===== Requests =====

type CreatePostDTO struct {
	Text string `json:"text" validate:"required"`
}

// ===== Responses =====

type MessageResponse struct {
	Message string `json:"message" example:"post deleted"`
}

type ErrorResponse struct {
	Message string `json:"message" example:"post not found"`
}

// FieldError is one entry of a validation failure.
type FieldError struct {
	Field   string `json:"field"   example:"text"`
	Message string `json:"message" example:"text is required"`
}

type ValidationResponse struct {
	Errors []FieldError `json:"errors"`
}
