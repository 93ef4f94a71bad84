package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vaibhavkumar/portfolio-api/database"
	"github.com/vaibhavkumar/portfolio-api/utils/response"
)

// CheckHealth reports process and database liveness on GET /ping
func CheckHealth(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return response.ServiceUnavailable(c, "Database unreachable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
