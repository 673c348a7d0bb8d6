package dto

// GenerateRequest represents a learning-content generation request
type GenerateRequest struct {
	Topic string `json:"topic"`
}

// ErrorResponse represents an error response. Every failure, whatever its
// internal kind, reaches the client in this single flattened shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status string `json:"status"`
}
