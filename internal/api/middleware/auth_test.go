package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"insurance-office/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret, username, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     role,
	})
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return tokenString
}

func TestAuthMiddleware(t *testing.T) {
	const statusErrorMsg = "expected status %d, got %d"

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	secret := "testsecret"

	cfg := config.AuthConfig{
		Enabled:   true,
		JWTSecret: secret,
	}

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("should allow request when middleware is disabled", func(t *testing.T) {
		cfg.Enabled = false
		middleware := AuthMiddleware(cfg, logger)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		middleware(okHandler).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf(statusErrorMsg, http.StatusOK, rec.Code)
		}
	})

	t.Run("should reject request with missing Authorization header", func(t *testing.T) {
		cfg.Enabled = true
		middleware := AuthMiddleware(cfg, logger)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		middleware(okHandler).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf(statusErrorMsg, http.StatusUnauthorized, rec.Code)
		}
	})

	t.Run("should reject request with invalid token", func(t *testing.T) {
		middleware := AuthMiddleware(cfg, logger)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer invalidtoken")
		rec := httptest.NewRecorder()

		middleware(okHandler).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf(statusErrorMsg, http.StatusUnauthorized, rec.Code)
		}
	})

	t.Run("should allow request with valid token and expose claims", func(t *testing.T) {
		middleware := AuthMiddleware(cfg, logger)

		var gotUsername, gotRole string
		nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUsername, _ = UsernameFromContext(r.Context())
			gotRole, _ = RoleFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, secret, "agent1", RoleInsuranceAgent))
		rec := httptest.NewRecorder()

		middleware(nextHandler).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf(statusErrorMsg, http.StatusOK, rec.Code)
		}
		if gotUsername != "agent1" {
			t.Errorf("expected username %q in context, got %q", "agent1", gotUsername)
		}
		if gotRole != RoleInsuranceAgent {
			t.Errorf("expected role %q in context, got %q", RoleInsuranceAgent, gotRole)
		}
	})
}

func TestRequireRoles(t *testing.T) {
	const statusErrorMsg = "expected status %d, got %d"

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	secret := "testsecret"
	cfg := config.AuthConfig{Enabled: true, JWTSecret: secret}

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(t *testing.T, role string, guard func(http.Handler) http.Handler) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, secret, "someone", role))
		rec := httptest.NewRecorder()
		AuthMiddleware(cfg, logger)(guard(okHandler)).ServeHTTP(rec, req)
		return rec
	}

	t.Run("should allow a listed role", func(t *testing.T) {
		guard := RequireRoles(true, RoleAdmin, RoleClaimAssessor)
		rec := serve(t, RoleClaimAssessor, guard)
		if rec.Code != http.StatusOK {
			t.Errorf(statusErrorMsg, http.StatusOK, rec.Code)
		}
	})

	t.Run("should reject an unlisted role", func(t *testing.T) {
		guard := RequireRoles(true, RoleAdmin, RoleClaimAssessor)
		rec := serve(t, RoleInsuranceAgent, guard)
		if rec.Code != http.StatusForbidden {
			t.Errorf(statusErrorMsg, http.StatusForbidden, rec.Code)
		}
	})

	t.Run("should reject when no role is in the context", func(t *testing.T) {
		guard := RequireRoles(true, RoleAdmin)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		guard(okHandler).ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf(statusErrorMsg, http.StatusForbidden, rec.Code)
		}
	})

	t.Run("should pass through when enforcement is disabled", func(t *testing.T) {
		guard := RequireRoles(false, RoleAdmin)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		guard(okHandler).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf(statusErrorMsg, http.StatusOK, rec.Code)
		}
	})
}
