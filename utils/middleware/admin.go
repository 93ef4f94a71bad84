package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/vaibhavkumar/portfolio-api/utils/response"
)

// AdminGate guards mutating routes with the shared admin secret. The secret
// must be non-empty; router setup fails fast when it is not configured.
type AdminGate struct {
	secret []byte
}

// NewAdminGate creates a gate for the given shared secret
func NewAdminGate(secret string) *AdminGate {
	return &AdminGate{secret: []byte(secret)}
}

type credentialBody struct {
	Password string `json:"password"`
}

// Required rejects the request unless the caller presents the configured
// admin secret, either in the X-Admin-Password header or as a "password"
// field in the JSON body. The comparison is constant-time.
func (g *AdminGate) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplied := c.Get("X-Admin-Password")
		if supplied == "" {
			var body credentialBody
			if err := c.BodyParser(&body); err == nil {
				supplied = body.Password
			}
		}

		if subtle.ConstantTimeCompare([]byte(supplied), g.secret) != 1 {
			return response.Unauthorized(c, "Invalid admin password")
		}

		return c.Next()
	}
}
