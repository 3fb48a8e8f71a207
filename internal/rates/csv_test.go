package rates

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const sampleCSV = `Record Date,Country-Currency,Exchange Rate,Effective Date,ISO Code
2025-09-30,Euro Zone-Euro,0.852,2025-09-30,eur
2025-09-30,Japan-Yen,147.7,2025-09-30, JPY
2025-09-30,Botswana-Pula,13.514,2025-09-30,BWP
2025-06-30,Botswana-Pula,13.369,2025-06-30,BWP
2025-09-30,Broken-Rate,n/a,2025-09-30,BRK
2025-09-30,Short Row,1.0
2025-09-30,No Code,2.5,2025-09-30,
,,,,
`

func TestParseCSV(t *testing.T) {
	entries, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []models.ExchangeRate{
		{RecordDate: "2025-09-30", CountryCurrency: "Euro Zone-Euro", Rate: 0.852, EffectiveDate: "2025-09-30", ISOCode: "EUR"},
		{RecordDate: "2025-09-30", CountryCurrency: "Japan-Yen", Rate: 147.7, EffectiveDate: "2025-09-30", ISOCode: "JPY"},
		{RecordDate: "2025-09-30", CountryCurrency: "Botswana-Pula", Rate: 13.514, EffectiveDate: "2025-09-30", ISOCode: "BWP"},
		{RecordDate: "2025-06-30", CountryCurrency: "Botswana-Pula", Rate: 13.369, EffectiveDate: "2025-06-30", ISOCode: "BWP"},
	}, entries)

	table := NewTable(entries)
	rate, ok := table.GetExchangeRate("BWP")
	require.True(t, ok)
	assert.Equal(t, 13.514, rate)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	entries, err := ParseCSV(strings.NewReader("Record Date,Country-Currency,Exchange Rate,Effective Date,ISO Code\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseCSV_Malformed(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("a,b,c,d,e\n\"unterminated,1,2,3,4\n"))
	assert.ErrorContains(t, err, "read rates csv")
}

func TestCSVSource_Embedded(t *testing.T) {
	table, err := Load(context.Background(), NewCSVSource(""))
	require.NoError(t, err)

	assert.Greater(t, table.Len(), 10)

	usd, ok := table.GetExchangeRate("USD")
	require.True(t, ok)
	assert.Equal(t, 1.0, usd)

	bwp, ok := table.GetExchangeRate("BWP")
	require.True(t, ok)
	assert.Equal(t, 13.514, bwp)

	assert.True(t, table.IsCurrencySupported("eur"))
}

func TestCSVSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	entries, err := NewCSVSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestCSVSource_MissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv")).Load(context.Background())
	assert.ErrorContains(t, err, "open rates file")
}
