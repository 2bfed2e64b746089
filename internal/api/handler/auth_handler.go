package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/config"
	"insurance-office/internal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

type AuthHandler struct {
	cfg    config.Config
	logger *slog.Logger
}

func NewAuthHandler(cfg config.Config, l *slog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg:    cfg,
		logger: l.With("component", "AuthHandler"),
	}
}

// Login exchanges back-office credentials for a JWT bearer token.
//
// @Summary Log in
// @Description Verifies a username and password against the configured accounts and returns a signed bearer token carrying the account role.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse "Token successfully issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 401 {object} dto.ErrorResponse "Unknown username or wrong password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	account, ok := h.findAccount(req.Username)
	if !ok || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		h.logger.WarnContext(r.Context(), "Login rejected", slog.String("username", req.Username))
		respondError(w, apperrors.ErrUnauthorized)
		return
	}

	claims := jwt.MapClaims{
		"username": account.Username,
		"role":     account.Role,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(h.cfg.Server.Auth.JWTSecret))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to sign token", slog.Any("error", err))
		respondError(w, apperrors.ErrInternalServer)
		return
	}

	h.logger.InfoContext(r.Context(), "Login succeeded",
		slog.String("username", account.Username), slog.String("role", account.Role))
	respondJSON(w, http.StatusOK, dto.TokenResponse{Token: tokenString, Role: account.Role})
}

func (h *AuthHandler) findAccount(username string) (config.UserConfig, bool) {
	for _, u := range h.cfg.Server.Auth.Users {
		if u.Username == username {
			return u, true
		}
	}
	return config.UserConfig{}, false
}
