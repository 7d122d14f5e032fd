package handler

import (
	"errors"
	"time"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"
	ucauth "career-compass/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase

	secureCookies bool
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

type registerRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FullName   *string `json:"fullName"`
	TargetRole *string `json:"targetRole"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase, secureCookies bool, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		uc:            uc,
		secureCookies: secureCookies,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
	r.Post("/logout", h.Logout)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	usr, access, refresh, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		TargetRole: req.TargetRole,
	})
	if err != nil {
		return mapAuthError(err)
	}

	h.setAuthCookies(c, access, refresh)
	return response.OK(c, fiber.StatusOK, "Registered successfully", map[string]any{
		"user":          dto.NewUserResponse(usr),
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	usr, access, refresh, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	h.setAuthCookies(c, access, refresh)
	return response.OK(c, fiber.StatusOK, "Logged in successfully", map[string]any{
		"user":          dto.NewUserResponse(usr),
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	access, refresh, err := h.uc.Refresh(c.Context(), c.Cookies(middleware.CookieRefreshToken))
	if err != nil {
		if errors.Is(err, usecase.ErrRefreshTokenExpired) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", err)
		}
		if errors.Is(err, usecase.ErrInvalidRefreshToken) || errors.Is(err, usecase.ErrUnauthorized) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	h.setAuthCookies(c, access, refresh)
	return response.OK(c, fiber.StatusOK, "Token refreshed", map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// Logout expires both credential cookies regardless of whether they were
// set and always reports success.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	h.clearCookie(c, middleware.CookieToken)
	h.clearCookie(c, middleware.CookieRefreshToken)
	return response.OK(c, fiber.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) setAuthCookies(c fiber.Ctx, access, refresh string) {
	c.Cookie(h.cookie(middleware.CookieToken, access, h.accessTTL))
	c.Cookie(h.cookie(middleware.CookieRefreshToken, refresh, h.refreshTTL))
}

func (h *AuthHandler) clearCookie(c fiber.Ctx, name string) {
	ck := h.cookie(name, "", 0)
	ck.Expires = time.Unix(0, 0)
	ck.MaxAge = -1
	c.Cookie(ck)
}

func (h *AuthHandler) cookie(name, value string, ttl time.Duration) *fiber.Cookie {
	ck := &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.secureCookies,
	}
	if ttl > 0 {
		ck.Expires = time.Now().Add(ttl)
	}
	return ck
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
