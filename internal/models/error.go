package models

// ErrorBody describes a failed request.
// swagger:model ErrorBody
type ErrorBody struct {
	// Machine readable error kind
	// example: UNSUPPORTED_CURRENCY
	Code string `json:"code"`

	// Human readable description
	// example: Currency 'XXX' is not supported
	Message string `json:"message"`

	// Optional context, omitted when empty
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse represents a failed API call
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

// NotFoundResponse is returned for unknown routes
// swagger:model NotFoundResponse
type NotFoundResponse struct {
	Error string `json:"error" example:"Not Found"`
	Path  string `json:"path" example:"/unknown"`
}

// MethodNotAllowedResponse is returned for any non-GET request
// swagger:model MethodNotAllowedResponse
type MethodNotAllowedResponse struct {
	Error   string `json:"error" example:"Method Not Allowed"`
	Message string `json:"message" example:"Only GET requests are supported"`
}
