package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/vaibhavkumar/portfolio-api/utils/auth"
	"github.com/vaibhavkumar/portfolio-api/utils/middleware"
	"github.com/vaibhavkumar/portfolio-api/utils/response"
)

// AuthHandler handles admin login
type AuthHandler struct {
	secret               []byte
	tokens               *auth.TokenManager
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(secret string, tokens *auth.TokenManager, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		secret:               []byte(secret),
		tokens:               tokens,
		bruteForceProtection: bruteForceProtection,
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	ip := c.IP()

	if subtle.ConstantTimeCompare([]byte(req.Password), h.secret) != 1 {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid admin password")
	}

	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	token, err := h.tokens.Generate()
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token")
	}

	return c.JSON(LoginResponse{
		Success: true,
		Token:   token,
	})
}
