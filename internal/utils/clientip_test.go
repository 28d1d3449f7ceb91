package utils_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acmchapter/portal-api/internal/utils"
)

func TestResolveClientIP_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name: "x-client-ip wins over forwarded-for",
			headers: map[string]string{
				"X-Client-IP":     "1.2.3.4",
				"X-Forwarded-For": "9.9.9.9, 5.5.5.5",
			},
			remoteAddr: "10.0.0.1:54321",
			want:       "1.2.3.4",
		},
		{
			name:       "leftmost forwarded-for entry",
			headers:    map[string]string{"X-Forwarded-For": "9.9.9.9, 5.5.5.5"},
			remoteAddr: "10.0.0.1:54321",
			want:       "9.9.9.9",
		},
		{
			name:       "forwarded-for without spaces",
			headers:    map[string]string{"X-Forwarded-For": "9.9.9.9,5.5.5.5"},
			remoteAddr: "",
			want:       "9.9.9.9",
		},
		{
			name:       "real-ip when forwarded-for is empty",
			headers:    map[string]string{"X-Real-IP": "8.8.8.8"},
			remoteAddr: "10.0.0.1:54321",
			want:       "8.8.8.8",
		},
		{
			name:       "vercel forwarded header",
			headers:    map[string]string{"X-Vercel-Forwarded-For": "7.7.7.7"},
			remoteAddr: "10.0.0.1:54321",
			want:       "7.7.7.7",
		},
		{
			name:       "peer address with port stripped",
			headers:    nil,
			remoteAddr: "10.0.0.1:54321",
			want:       "10.0.0.1",
		},
		{
			name:       "peer address without port",
			headers:    nil,
			remoteAddr: "10.0.0.1",
			want:       "10.0.0.1",
		},
		{
			name:       "nothing present yields sentinel",
			headers:    nil,
			remoteAddr: "",
			want:       utils.UnknownClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			got := utils.ResolveClientIP(h, tt.remoteAddr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveClientIP_NeverEmpty(t *testing.T) {
	// Even degenerate header values must resolve to something usable.
	h := http.Header{}
	h.Set("X-Client-IP", "   ")
	h.Set("X-Forwarded-For", " , 5.5.5.5")
	got := utils.ResolveClientIP(h, "")
	assert.NotEmpty(t, got)
}

func TestResolveClientIP_IPv6Peer(t *testing.T) {
	got := utils.ResolveClientIP(http.Header{}, "[2001:db8::1]:443")
	assert.Equal(t, "2001:db8::1", got)
}
