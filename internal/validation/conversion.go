package validation

import (
	"errors"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Query parameter names of a conversion request.
const (
	FieldAmount = "amount"
	FieldFrom   = "from"
	FieldTo     = "to"
)

var (
	currencyCodeRe = regexp.MustCompile(`^[A-Za-z]{3}$`)

	// amountPrefixRe matches the leading decimal number of an amount value.
	amountPrefixRe = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
)

// ValidateConversionRequest checks the amount, from and to parameters.
// Every field is checked independently; on failure the returned FieldErrors
// holds one message per failing field. On success currency codes are upper-cased.
func ValidateConversionRequest(params url.Values) (models.ConversionRequest, models.FieldErrors) {
	errs := models.FieldErrors{}

	amount, msg := validateAmount(params.Get(FieldAmount))
	if msg != "" {
		errs[FieldAmount] = msg
	}

	from := params.Get(FieldFrom)
	if msg := validateCurrency("From", from); msg != "" {
		errs[FieldFrom] = msg
	}

	to := params.Get(FieldTo)
	if msg := validateCurrency("To", to); msg != "" {
		errs[FieldTo] = msg
	}

	if len(errs) > 0 {
		return models.ConversionRequest{}, errs
	}

	return models.ConversionRequest{
		Amount: amount,
		From:   strings.ToUpper(from),
		To:     strings.ToUpper(to),
	}, nil
}

// IsValidCurrencyCode reports whether code is three ASCII letters in any case.
func IsValidCurrencyCode(code string) bool {
	return currencyCodeRe.MatchString(code)
}

var errNotANumber = errors.New("not a number")

func validateAmount(raw string) (float64, string) {
	if raw == "" {
		return 0, "Amount parameter is required"
	}

	amount, err := parseAmount(raw)
	switch {
	case err != nil, math.IsNaN(amount):
		return 0, "Amount must be a valid number"
	case amount <= 0:
		return 0, "Amount must be greater than 0"
	case math.IsInf(amount, 0):
		return 0, "Amount must be a finite number"
	}

	return amount, ""
}

// parseAmount parses the longest decimal float prefix of raw after leading
// whitespace, so "12.5USD" is 12.5 and "0x10" is 0. Only the literal
// Infinity is read as an infinity. Literals outside the float64 range
// saturate to an infinity (or zero) instead of failing.
func parseAmount(raw string) (float64, error) {
	prefix := amountPrefixRe.FindString(strings.TrimLeftFunc(raw, unicode.IsSpace))
	if prefix == "" {
		return 0, errNotANumber
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, err
	}
	return v, nil
}

func validateCurrency(label, code string) string {
	if code == "" {
		return label + " currency parameter is required"
	}
	if !IsValidCurrencyCode(code) {
		return label + " currency must be a valid 3-letter ISO code"
	}
	return ""
}
