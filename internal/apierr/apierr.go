// Package apierr defines the fixed set of errors the conversion API reports.
package apierr

import (
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Error codes.
const (
	CodeInvalidParameters     = "INVALID_PARAMETERS"
	CodeUnsupportedCurrency   = "UNSUPPORTED_CURRENCY"
	CodeUnsupportedConversion = "UNSUPPORTED_CONVERSION"
	CodeInternalError         = "INTERNAL_ERROR"
)

// Error is an API error with the HTTP status it is reported with.
type Error struct {
	Code    string
	Message string
	Status  int
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Response renders the error as a response body.
func (e *Error) Response() models.ErrorResponse {
	return models.ErrorResponse{
		Success: false,
		Error: models.ErrorBody{
			Code:    e.Code,
			Message: e.Message,
			Details: e.Details,
		},
	}
}

// InvalidParameters reports request parameters that failed validation.
func InvalidParameters(fields models.FieldErrors) *Error {
	return &Error{
		Code:    CodeInvalidParameters,
		Message: "One or more request parameters are invalid",
		Status:  http.StatusBadRequest,
		Details: map[string]any{"validationErrors": fields},
	}
}

// UnsupportedCurrency reports a currency missing from the rate table.
func UnsupportedCurrency(currency string) *Error {
	return &Error{
		Code:    CodeUnsupportedCurrency,
		Message: fmt.Sprintf("Currency '%s' is not supported", currency),
		Status:  http.StatusBadRequest,
		Details: map[string]any{"unsupportedCurrency": currency},
	}
}

// UnsupportedConversion reports a pair of known currencies where neither side is USD.
func UnsupportedConversion(from, to string) *Error {
	return &Error{
		Code:    CodeUnsupportedConversion,
		Message: "Only USD-based conversions are supported (USD→Currency or Currency→USD)",
		Status:  http.StatusBadRequest,
		Details: map[string]any{
			"from": from,
			"to":   to,
			"hint": "Transitive conversions between non-USD currencies are not supported",
		},
	}
}

// Internal reports an unexpected failure.
func Internal() *Error {
	return &Error{
		Code:    CodeInternalError,
		Message: "An internal error occurred while processing your request",
		Status:  http.StatusInternalServerError,
	}
}
