package models

// InfoResponse describes the API
// swagger:model InfoResponse
type InfoResponse struct {
	Message   string            `json:"message" example:"Currency Converter API"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
	Timestamp string            `json:"timestamp" example:"2025-01-01T00:00:00.000Z"`
}
