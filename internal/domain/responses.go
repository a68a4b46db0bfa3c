package domain

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse lists per-field input violations.
type ValidationErrorResponse struct {
	StatusCode int          `json:"status_code"`
	Errors     []FieldError `json:"errors"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
}
