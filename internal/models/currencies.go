package models

// CurrenciesData lists the supported currency codes
// swagger:model CurrenciesData
type CurrenciesData struct {
	Currencies []string `json:"currencies"`
	Total      int      `json:"total" example:"170"`
}

// CurrenciesResponse represents the supported currencies response
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    CurrenciesData `json:"data"`
}
