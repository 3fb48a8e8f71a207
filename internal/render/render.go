// Package render writes JSON API responses.
package render

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/apierr"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

// TimestampLayout is the wall-clock format used in response bodies.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const allowOriginHeader = "Access-Control-Allow-Origin"

// JSON writes v indented with two spaces and the given status.
// If v cannot be encoded an INTERNAL_ERROR body is written instead and
// any CORS header set for the original response is dropped.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Log.Errorw("failed to encode JSON response", "error", err)
		internal := apierr.Internal()
		body, _ = json.MarshalIndent(internal.Response(), "", "  ")
		status = internal.Status
		w.Header().Del(allowOriginHeader)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// AllowAnyOrigin sets the permissive CORS header.
func AllowAnyOrigin(w http.ResponseWriter) {
	w.Header().Set(allowOriginHeader, "*")
}

// Timestamp formats t in UTC with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
