package handler

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pgangayi/farmstead-auth/internal/auth/dto"
	"github.com/pgangayi/farmstead-auth/internal/auth/service"
	autherror "github.com/pgangayi/farmstead-auth/internal/errors"
	"github.com/pgangayi/farmstead-auth/pkg/constant"
)

// Pinger reports backing-store reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type AuthHandler struct {
	sessions *service.SessionService
	pinger   Pinger
}

func NewAuthHandler(sessions *service.SessionService, pinger Pinger) *AuthHandler {
	return &AuthHandler{sessions: sessions, pinger: pinger}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return writeError(c, autherror.ErrValidation)
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	bundle, err := h.sessions.Signup(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	h.setRefreshCookie(c, bundle.RefreshToken)

	return c.Status(fiber.StatusCreated).JSON(bundle)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return writeError(c, autherror.ErrValidation)
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	bundle, err := h.sessions.Login(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	h.setRefreshCookie(c, bundle.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(bundle)
}

func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return writeError(c, autherror.ErrUnauthorized)
	}

	user, err := h.sessions.Validate(c.Context(), token)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ValidateResponse{Valid: true, User: user})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	input := dto.RefreshInput{
		RefreshToken: c.Cookies(constant.RefreshCookieName),
		CsrfToken:    c.Get(constant.CSRFHeaderName),
		IPAddress:    c.IP(),
		UserAgent:    string(c.Request().Header.UserAgent()),
	}

	bundle, err := h.sessions.Refresh(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	h.setRefreshCookie(c, bundle.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(bundle)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	input := dto.LogoutInput{
		AccessToken:  bearerToken(c),
		RefreshToken: c.Cookies(constant.RefreshCookieName),
		CsrfToken:    c.Get(constant.CSRFHeaderName),
		IPAddress:    c.IP(),
		UserAgent:    string(c.Request().Header.UserAgent()),
	}

	if err := h.sessions.Logout(c.Context(), input); err != nil {
		return writeError(c, err)
	}

	h.clearRefreshCookie(c)

	return c.Status(fiber.StatusOK).JSON(dto.LogoutResponse{Success: true})
}

func (h *AuthHandler) Health(c *fiber.Ctx) error {
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.sessions.RefreshTokenTTL().Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// writeError maps a service error to the standardized envelope. Internal
// details stay in the server log; the body only ever carries the taxonomy
// code and a generic message.
func writeError(c *fiber.Ctx, err error) error {
	status, code, message := fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	details := ""

	switch {
	case errors.Is(err, autherror.ErrValidation):
		status, code, message = fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid input"
		details = err.Error()
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		status, code, message = fiber.StatusConflict, "DUPLICATE_USER", "email already in use"
	case errors.Is(err, autherror.ErrInvalidCredentials):
		status, code, message = fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, autherror.ErrTooManyLoginAttempts):
		status, code, message = fiber.StatusTooManyRequests, "LOCKED_OUT", "too many failed login attempts, try again later"
	case errors.Is(err, autherror.ErrCSRFMismatch):
		status, code, message = fiber.StatusForbidden, "FORBIDDEN", "csrf token missing or invalid"
	case errors.Is(err, autherror.ErrUnauthorized),
		errors.Is(err, autherror.ErrRefreshTokenNotFound),
		errors.Is(err, autherror.ErrRefreshTokenRevoked),
		errors.Is(err, autherror.ErrRefreshTokenExpired):
		status, code, message = fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required"
	default:
		log.Printf("internal error: %v", err)
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Success: false,
		Error: dto.ErrorBody{
			Code:      code,
			Message:   message,
			Details:   details,
			Timestamp: time.Now().UTC(),
		},
		RequestID: requestID(c),
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
