package models

// USD is the pivot currency every stored rate is relative to.
const USD = "USD"

// ExchangeRate is a single rate record as delivered by a rate source.
// Rate is the number of currency units equal to 1 USD.
type ExchangeRate struct {
	RecordDate      string  `db:"record_date"`
	CountryCurrency string  `db:"country_currency"`
	Rate            float64 `db:"exchange_rate"`
	EffectiveDate   string  `db:"effective_date"`
	ISOCode         string  `db:"iso_code"`
}
