package models

// ConversionRequest is a validated conversion request.
// Currency codes are upper-cased.
type ConversionRequest struct {
	Amount float64
	From   string
	To     string
}

// ConversionResult holds the rounded outcome of a conversion.
type ConversionResult struct {
	ConvertedAmount float64
	ExchangeRate    float64
}

// FieldErrors maps a request parameter name to its validation message.
type FieldErrors map[string]string

// ConversionData is the payload of a successful conversion
// swagger:model ConversionData
type ConversionData struct {
	Amount          float64 `json:"amount" example:"100"`
	From            string  `json:"from" example:"USD"`
	To              string  `json:"to" example:"EUR"`
	ConvertedAmount float64 `json:"convertedAmount" example:"85"`
	ExchangeRate    float64 `json:"exchangeRate" example:"0.85"`
	Timestamp       string  `json:"timestamp" example:"2025-01-01T00:00:00.000Z"`
	TotalCurrencies int     `json:"totalCurrencies" example:"170"`
}

// ConversionResponse represents a successful conversion response
// swagger:model ConversionResponse
type ConversionResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    ConversionData `json:"data"`
}
