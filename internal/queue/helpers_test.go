package queue

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	testSecret = []byte("test-secret")
	testDJHash []byte
)

func init() {
	hash, err := bcrypt.GenerateFromPassword([]byte("2911"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	testDJHash = hash
}

func newTestServer(store Store, pub EventPublisher) *Server {
	return NewServer(store, pub, ServerConfig{
		JWTSecret:      testSecret,
		DJPasswordHash: testDJHash,
	})
}

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *capturePublisher) Publish(ctx context.Context, eventType string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

func (p *capturePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// flashFrom decodes the flash cookie set on a response, or nil.
func flashFrom(t *testing.T, res *http.Response) *flashMessage {
	t.Helper()
	var cookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == flashCookieName && c.MaxAge >= 0 {
			cookie = c
		}
	}
	if cookie == nil {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	require.NoError(t, err)
	var msg flashMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return &msg
}

// sessionCookieFrom returns the last session cookie set on a response; a
// handler that flips the DJ flag sets it a second time after the
// middleware, so last wins like it does in a browser.
func sessionCookieFrom(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()
	var cookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == sessionCookieName {
			cookie = c
		}
	}
	return cookie
}

func claimsFromCookieValue(t *testing.T, value string) *SessionClaims {
	t.Helper()
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(tk *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	return claims
}
