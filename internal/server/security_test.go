package server

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/worlds", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/worlds", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/worlds", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Readyz", "", "/readyz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_EmptyKeyLeavesAPIOpen(t *testing.T) {
	middleware := AuthMiddleware("", nil, NewSuspiciousActivityDetector())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worlds", nil)
	req.Header.Set(HeaderAPIKey, "anything")
	rec := httptest.NewRecorder()
	middleware(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RecordsFailedAttempts(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := AuthMiddleware("secret", nil, detector)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/worlds", nil)
		req.RemoteAddr = "10.1.1.1:5000"
		middleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.1.1.1"])
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetectorWithLimit(3, time.Minute)
	handler := RateLimitMiddleware(nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worlds", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := range 3 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Other clients keep their own budget
	other := httptest.NewRequest(http.MethodGet, "/api/v1/worlds", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSuspiciousActivityDetector_WindowResets(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	detector := NewSuspiciousActivityDetectorWithLimit(1, time.Minute)
	detector.lastResetTime = now
	detector.now = func() time.Time { return now }

	assert.True(t, detector.RecordRequest("1.2.3.4"))
	assert.False(t, detector.RecordRequest("1.2.3.4"))

	now = now.Add(2 * time.Minute)
	assert.True(t, detector.RecordRequest("1.2.3.4"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"Direct Connection", "203.0.113.5:4000", "", nil, "203.0.113.5"},
		{"Untrusted Forwarded Header Ignored", "203.0.113.5:4000", "1.1.1.1", nil, "203.0.113.5"},
		{"Trusted Proxy", "10.0.0.1:4000", "1.1.1.1, 198.51.100.7", []string{"10.0.0.1"}, "198.51.100.7"},
		{"Trusted Proxy Without Header", "10.0.0.1:4000", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"Unparseable Remote Address", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestRemoteHost(t *testing.T) {
	assert.Equal(t, "127.0.0.1", remoteHost(&net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 9000}))
	assert.Equal(t, "", remoteHost(nil))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expectedHeaders := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}
