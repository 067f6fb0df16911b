package handlers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dymun-conference/portal-backend/internal/config"
	"github.com/dymun-conference/portal-backend/internal/dto"
	"github.com/dymun-conference/portal-backend/internal/middleware"
	"github.com/dymun-conference/portal-backend/internal/repository"
)

type AuthHandler struct {
	users    *repository.UserRepository
	cfg      config.Config
	sessions *session.Store // nil in token mode
}

func NewAuthHandler(users *repository.UserRepository, cfg config.Config, sessions *session.Store) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg, sessions: sessions}
}

// Login godoc
// @Summary Delegate login
// @Description Validates credentials and establishes a session (or returns a bearer token in token mode)
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "gmail and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	gmail := strings.TrimSpace(strings.ToLower(req.Gmail))
	if gmail == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Gmail and password are required")
	}

	// Unknown email and wrong password answer identically so callers
	// cannot enumerate accounts.
	u, ok := h.users.FindByGmail(gmail)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	if h.cfg.AuthMode == config.AuthModeToken {
		claims := jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.cfg.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		}
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := tok.SignedString([]byte(h.cfg.JWTSecret))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
		}
		return c.JSON(dto.LoginResponse{User: u, AccessToken: signed})
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}
	sess.Set(middleware.SessionKeyUserID, u.ID)
	if err := sess.Save(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}

	slog.Info("delegate logged in", "idNumber", u.IDNumber, "committee", u.Committee)
	return c.JSON(dto.LoginResponse{User: u})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, ok := h.users.FindByID(middleware.UserID(c))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return c.JSON(dto.UserResponse{User: u})
}

// Logout destroys the session. Logging out without one is not an error.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if h.sessions != nil {
		sess, err := h.sessions.Get(c)
		if err == nil {
			if err := sess.Destroy(); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Logout failed")
			}
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}
