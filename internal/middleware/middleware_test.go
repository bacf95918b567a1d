package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sanctuary-tracker/api/internal/models"
	"github.com/sanctuary-tracker/api/internal/request"
	"github.com/sanctuary-tracker/api/internal/services/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	t.Parallel()
	handler := ErrorHandler(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "boom") {
		t.Error("panic detail leaked to the client")
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()
	handler := SecurityHeaders(false)(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	checks := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Content-Security-Policy": "default-src 'none'",
	}
	for header, want := range checks {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on plain HTTP request")
	}
}

func TestContentType(t *testing.T) {
	t.Parallel()
	handler := ContentType(okHandler())

	tests := []struct {
		name        string
		method      string
		contentType string
		wantStatus  int
	}{
		{"get without content type", http.MethodGet, "", http.StatusOK},
		{"post json", http.MethodPost, "application/json", http.StatusOK},
		{"post json with charset", http.MethodPost, "application/json; charset=utf-8", http.StatusOK},
		{"post missing content type", http.MethodPost, "", http.StatusBadRequest},
		{"put wrong content type", http.MethodPut, "text/plain", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestMaxRequestSize(t *testing.T) {
	t.Parallel()
	handler := MaxRequestSize(16)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
	req.ContentLength = 64
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
}

func TestLoggingCapturesStatus(t *testing.T) {
	t.Parallel()
	handler := Logging(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", w.Code)
	}
}

type staticUserRepo struct {
	user *models.User
}

func (s *staticUserRepo) Create(context.Context, *models.User) error { return nil }

func (s *staticUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, fmt.Errorf("user not found")
}

func (s *staticUserRepo) GetByLogin(context.Context, string) (*models.User, error) {
	return nil, fmt.Errorf("user not found")
}

func (s *staticUserRepo) Exists(context.Context, string, string) (bool, error) { return false, nil }

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: uuid.New(), Username: "wanderer"}
	repo := &staticUserRepo{user: user}
	svc := auth.NewService(repo, "test-secret", time.Hour)

	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() returned error: %v", err)
	}

	var gotUser *models.User
	handler := Auth(svc, repo, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = request.UserFromContext(r)
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser = nil
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if gotUser == nil || gotUser.ID != user.ID {
					t.Error("authenticated user not attached to context")
				}
			} else if gotUser != nil {
				t.Error("handler ran despite failed auth")
			}
		})
	}
}

func TestAuthMiddlewareDeletedUser(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: uuid.New(), Username: "ghost"}
	svc := auth.NewService(&staticUserRepo{user: user}, "test-secret", time.Hour)
	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() returned error: %v", err)
	}

	// Repo without the user simulates an account deleted after token issue
	handler := Auth(svc, &staticUserRepo{}, zap.NewNop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
