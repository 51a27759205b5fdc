package handlers

import (
	"errors"

	"github.com/Arivumathi323/login/internal/auth"
	"github.com/Arivumathi323/login/internal/middleware"
	"github.com/Arivumathi323/login/internal/models"
	"github.com/Arivumathi323/login/internal/register"
	"github.com/Arivumathi323/login/internal/session"
	"github.com/Arivumathi323/login/internal/store"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler exposes registration, login and logout.
type AuthHandler struct {
	flow     *register.Flow
	provider auth.Provider
	sessions *session.Store
	gateway  store.Gateway
}

func NewAuthHandler(flow *register.Flow, provider auth.Provider, sessions *session.Store, gateway store.Gateway) *AuthHandler {
	return &AuthHandler{flow: flow, provider: provider, sessions: sessions, gateway: gateway}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sess, err := h.flow.Submit(c.UserContext(), register.Input{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AgreedToTerms:   req.AgreedToTerms,
	})
	if err != nil {
		var vErr *register.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": vErr.Message,
			})
		}
		var aErr *auth.Error
		if errors.As(err, &aErr) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": aErr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Registration failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.AuthResponse{
		Token: sess.Token,
		User: models.User{
			ID:       sess.UserID,
			Email:    sess.Email,
			FullName: sess.FullName,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	sess, err := h.provider.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		var aErr *auth.Error
		if errors.As(err, &aErr) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": aErr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	h.sessions.Set(session.Identity{ID: sess.UserID, Email: sess.Email})

	return c.JSON(models.AuthResponse{
		Token: sess.Token,
		User: models.User{
			ID:       sess.UserID,
			Email:    sess.Email,
			FullName: sess.FullName,
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.provider.SignOut(c.UserContext()); err != nil {
		var aErr *auth.Error
		if errors.As(err, &aErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": aErr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Logout failed",
		})
	}

	h.sessions.Clear()
	return c.JSON(fiber.Map{"success": true})
}

// GetMe returns the signed-in user's profile. A profile row that has not
// propagated yet is not an error; the response falls back to defaults.
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	profile, err := h.gateway.FetchProfile(c.UserContext(), userID)
	if err != nil || profile == nil {
		return c.JSON(fiber.Map{
			"id":       userID,
			"fullName": "",
			"email":    c.Locals("email"),
		})
	}

	return c.JSON(profile)
}
