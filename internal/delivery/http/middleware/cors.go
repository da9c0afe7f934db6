package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// С "*" credentials не разрешаются, fiber такое сочетание не принимает.
func CORS(allowOrigins string) fiber.Handler {
	origins := strings.TrimSpace(allowOrigins)
	if origins == "" {
		origins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Authorization,X-Request-ID",
		ExposeHeaders:    "X-Request-ID,X-Distance-Km",
		AllowCredentials: origins != "*",
	})
}
