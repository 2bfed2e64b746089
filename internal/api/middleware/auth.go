package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"insurance-office/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Back-office roles. Every account carries exactly one.
const (
	RoleAdmin          = "Admin"
	RoleInsuranceAgent = "Insurance Agent"
	RoleClaimAssessor  = "Claim Assessor"
)

type contextKey string

const (
	usernameContextKey contextKey = "auth.username"
	roleContextKey     contextKey = "auth.role"
)

// UsernameFromContext returns the authenticated username, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameContextKey).(string)
	return username, ok
}

// RoleFromContext returns the authenticated role, if any.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleContextKey).(string)
	return role, ok
}

// AuthMiddleware verifies the bearer token and stores the account's username
// and role in the request context for RequireRoles further down the chain.
func AuthMiddleware(cfg config.AuthConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := validateJWT(r, cfg.JWTSecret, logger)
			if !ok {
				respondAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := r.Context()
			if username, _ := claims["username"].(string); username != "" {
				ctx = context.WithValue(ctx, usernameContextKey, username)
			}
			if role, _ := claims["role"].(string); role != "" {
				ctx = context.WithValue(ctx, roleContextKey, role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles rejects authenticated requests whose role is not in the allow
// list. A request without a role claim passes only when auth is disabled, in
// which case AuthMiddleware never put a role in the context and enforcement
// is off across the board.
func RequireRoles(enabled bool, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				respondAuthError(w, http.StatusForbidden, "Forbidden")
				return
			}
			if _, ok := allowed[role]; !ok {
				respondAuthError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func validateJWT(r *http.Request, secret string, logger *slog.Logger) (jwt.MapClaims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logger.Warn("AuthMiddleware: Missing Authorization header")
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		logger.Warn("AuthMiddleware: Invalid Authorization header format")
		return nil, false
	}
	tokenString := parts[1]

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			logger.Warn("AuthMiddleware: Unexpected signing method")
			return nil, http.ErrAbortHandler
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		logger.Warn("AuthMiddleware: Invalid token", "error", err)
		return nil, false
	}

	return claims, true
}

func respondAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":{"message":"` + message + `"}}`))
}
