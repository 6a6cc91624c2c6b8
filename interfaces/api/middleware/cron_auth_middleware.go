package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"jobupdate/pkg/config"
	"jobupdate/pkg/logger"
	"jobupdate/pkg/utils"
)

// CronAuthMiddleware guards the /cron/* trigger endpoints. Accepts either
// the pre-shared key (?key= or X-Cron-Key header) or an admin bearer token.
func CronAuthMiddleware(cronCfg *config.CronConfig, jwtCfg *config.JWTConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Query("key")
		if key == "" {
			key = c.Get("X-Cron-Key")
		}

		if key != "" && cronCfg.Secret != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(cronCfg.Secret)) == 1 {
				return c.Next()
			}
			logger.WarnContext(c.UserContext(), "Cron trigger with bad key", "ip", c.IP(), "path", c.Path())
			return utils.UnauthorizedResponse(c, "Invalid cron key")
		}

		admin, err := utils.ValidateAdminToken(c.Get("Authorization"), jwtCfg.Secret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Unauthorized cron trigger", "ip", c.IP(), "path", c.Path())
			return utils.UnauthorizedResponse(c, "Cron key or admin token required")
		}

		c.Locals("admin", admin)
		return c.Next()
	}
}

// AdminAuthMiddleware guards the manual-entry and approval surface
func AdminAuthMiddleware(jwtCfg *config.JWTConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := utils.ValidateAdminToken(c.Get("Authorization"), jwtCfg.Secret)
		if err != nil {
			return utils.UnauthorizedResponse(c, "Admin token required")
		}

		c.Locals("admin", admin)
		return c.Next()
	}
}

// GetAdminFromContext reads the authenticated admin, nil for key-based access
func GetAdminFromContext(c *fiber.Ctx) *utils.AdminContext {
	if admin, ok := c.Locals("admin").(*utils.AdminContext); ok {
		return admin
	}
	return nil
}
