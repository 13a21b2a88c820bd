package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type spyTokens struct {
	userID  string
	email   string
	err     error
	calls   int
	lastTok string
}

func (s *spyTokens) Issue(userID, email string) (string, error) { return "", nil }

func (s *spyTokens) Verify(token string) (string, string, error) {
	s.calls++
	s.lastTok = token
	if s.err != nil {
		return "", "", s.err
	}
	return s.userID, s.email, nil
}

func authTestRouter(tokens *spyTokens) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserIDKey),
			"email":   c.GetString(CtxUserEmailKey),
		})
	})
	return r
}

func TestAuthRejectsWithoutBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "bare token", header: "sometoken"},
		{name: "lowercase bearer", header: "bearer sometoken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &spyTokens{}
			r := authTestRouter(tokens)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if tokens.calls != 0 {
				t.Errorf("Verify called %d times, want 0", tokens.calls)
			}
		})
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	tokens := &spyTokens{err: errors.New("expired")}
	r := authTestRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer badtoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if tokens.calls != 1 {
		t.Errorf("Verify called %d times, want 1", tokens.calls)
	}
}

func TestAuthSetsIdentityOnSuccess(t *testing.T) {
	tokens := &spyTokens{userID: "507f1f77bcf86cd799439011", email: "user@example.com"}
	r := authTestRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer goodtoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if tokens.lastTok != "goodtoken" {
		t.Errorf("verified token = %q", tokens.lastTok)
	}
	body := w.Body.String()
	for _, want := range []string{"507f1f77bcf86cd799439011", "user@example.com"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
}
