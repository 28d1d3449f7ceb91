package utils

import (
	"net"
	"net/http"
	"strings"
)

// UnknownClient is the sentinel identifier used when nothing in the request
// reveals a client address.
const UnknownClient = "unknown"

// ResolveClientIP derives a best-effort client identifier from request
// headers and the transport peer address. The result is a de-duplication
// key only: the headers are client-controlled unless a trusted edge proxy
// strips them, so this must never be treated as authentication.
//
// Precedence, first non-empty value wins:
//  1. X-Client-IP
//  2. leftmost entry of X-Forwarded-For (by convention the original client)
//  3. X-Real-IP
//  4. X-Vercel-Forwarded-For
//  5. the transport peer address, with any port stripped
//  6. the literal "unknown"
func ResolveClientIP(headers http.Header, remoteAddr string) string {
	if v := strings.TrimSpace(headers.Get("X-Client-IP")); v != "" {
		return v
	}
	if v := headers.Get("X-Forwarded-For"); v != "" {
		first := strings.TrimSpace(strings.SplitN(v, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	if v := strings.TrimSpace(headers.Get("X-Real-IP")); v != "" {
		return v
	}
	if v := strings.TrimSpace(headers.Get("X-Vercel-Forwarded-For")); v != "" {
		return v
	}
	if remoteAddr != "" {
		// Strip the port so the peer address compares equal to the bare
		// IPs carried in proxy headers.
		if host, _, err := net.SplitHostPort(remoteAddr); err == nil && host != "" {
			return host
		}
		return remoteAddr
	}
	return UnknownClient
}
