package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"communitycalendar/internal/delivery/http/helpers"
	"communitycalendar/internal/domain"
)

// LoginRequest is the request body for POST /auth/login. The captcha operands
// are generated client-side; the server verifies only the sum.
type LoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	CaptchaA      int    `json:"captchaA"`
	CaptchaB      int    `json:"captchaB"`
	CaptchaAnswer int    `json:"captchaAnswer"`
}

// LoginResponse is the response body for POST /auth/login.
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	User      *domain.User `json:"user"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Log in an admin
// @Description Verifies the arithmetic challenge and the credentials, and returns a Bearer token for mutating calls.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials and challenge answer"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		helpers.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, err := c.Service.Login(r.Context(), domain.Credentials{
		Email:         req.Email,
		Password:      req.Password,
		CaptchaA:      req.CaptchaA,
		CaptchaB:      req.CaptchaB,
		CaptchaAnswer: req.CaptchaAnswer,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "failed to log in")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", User: user})
}
