// Package device derives a human-readable device name from the User-Agent so
// wizard sessions can show where an in-progress application was started.
package device

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mssola/useragent"

	"certflow/pkg/requestcontext"
)

// Middleware parses the User-Agent into a display name like
// "Chrome on Linux" and stores it in the context. Unparseable agents fall
// back to "Unknown device"; sessions are never blocked on this.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := DisplayName(r.Header.Get("User-Agent"))
		ctx := requestcontext.WithDeviceName(r.Context(), name)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DisplayName builds a short device label from a raw User-Agent string.
func DisplayName(rawUA string) string {
	if rawUA == "" {
		return "Unknown device"
	}
	ua := useragent.New(rawUA)
	browser, _ := ua.Browser()
	os := ua.OSInfo().Name
	switch {
	case browser != "" && os != "":
		return fmt.Sprintf("%s on %s", browser, os)
	case browser != "":
		return browser
	case os != "":
		return os
	default:
		return "Unknown device"
	}
}

// GetDeviceName retrieves the device display name from the context.
// Deprecated: use requestcontext.DeviceName.
func GetDeviceName(ctx context.Context) string {
	return requestcontext.DeviceName(ctx)
}
