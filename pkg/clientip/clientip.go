package clientip

import (
	"net"
	"net/http"
	"strings"
)

// RealClientIP returns the client IP for log lines. Uses r.RemoteAddr only,
// no proxy headers; traffic reaches the app directly.
func RealClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}
