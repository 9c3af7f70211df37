package mcpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlockedIP(t *testing.T) {
	tests := []struct {
		ip      string
		blocked bool
	}{
		{"127.0.0.1", true},      // loopback
		{"10.0.0.1", true},       // private (Class A)
		{"172.16.0.1", true},     // private (Class B)
		{"192.168.1.1", true},    // private (Class C)
		{"169.254.1.1", true},    // link-local
		{"::1", true},            // IPv6 loopback
		{"0.0.0.0", true},        // unspecified IPv4
		{"::", true},             // unspecified IPv6
		{"fe80::1", true},        // IPv6 link-local
		{"fd00::1", true},        // IPv6 ULA (private)
		{"8.8.8.8", false},       // public
		{"93.184.216.34", false}, // public
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip, "failed to parse IP: %s", tt.ip)
			assert.Equal(t, tt.blocked, isBlockedIP(ip))
		})
	}
}

func TestLookupPublicIPs_Loopback(t *testing.T) {
	_, err := lookupPublicIPs(context.Background(), "127.0.0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request to private/loopback IP")
}

func TestSafeHTTPClient_BlocksLoopback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("openapi: 3.0.3\n"))
	}))
	defer srv.Close()

	client := newSafeHTTPClient()
	assert.NotZero(t, client.Timeout)

	resp, err := client.Get(srv.URL)
	if resp != nil {
		_ = resp.Body.Close()
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request")
}

func TestSpecInput_ResolveURLBlocked(t *testing.T) {
	serializerCache.reset()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(minimalSpec("Remote")))
	}))
	defer srv.Close()

	_, err := specInput{URL: srv.URL + "/openapi.yaml"}.resolve(false)
	require.Error(t, err)
	assert.Contains(t, sanitizeError(err), "blocked request")
}

func TestSpecInput_ResolveURLAllowPrivate(t *testing.T) {
	serializerCache.reset()
	cfg.AllowPrivateIPs = true
	t.Cleanup(func() { cfg.AllowPrivateIPs = false })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(minimalSpec("Remote")))
	}))
	defer srv.Close()

	s, err := specInput{URL: srv.URL + "/openapi.yaml"}.resolve(false)
	require.NoError(t, err)
	assert.Equal(t, "/remote", s.BasePath())
}
