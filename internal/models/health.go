package models

// HealthResponse represents the health check payload
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2025-01-01T00:00:00.000Z"`
}
