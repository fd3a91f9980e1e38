// Package httputil centralizes JSON encoding and domain-error translation so
// every handler emits the same envelopes.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "certflow/pkg/domain-errors"
)

// WriteJSON encodes v with the given status. Encoding failures are swallowed;
// by the time they can occur the status line has already been written.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error to its HTTP status and the standard error
// envelope. Internal errors omit the description so store and driver details
// never reach callers.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{
		"error": string(code),
	}
	if code != dErrors.CodeInternal {
		if msg := dErrors.MessageOf(err); msg != "" {
			body["error_description"] = msg
		}
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

// DecodeJSON decodes a request body into dst, rejecting unknown fields so
// client typos fail loudly instead of silently dropping data.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}
