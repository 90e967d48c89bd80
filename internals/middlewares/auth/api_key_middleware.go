// internals/middlewares/auth/api_key_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"yoda_backend/internals/configs"
)

// APIKeyMiddleware — semua endpoint /api butuh X-API-Key yang benar
// (aplikasi mobile & ops dashboard memegang key yang sama).
func APIKeyMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if configs.MainAPIKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "MAIN_API_KEY belum diset")
		}
		if c.Get("X-API-Key") != configs.MainAPIKey {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}
