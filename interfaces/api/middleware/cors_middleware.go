package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the public site, the admin console and local
// development origins. Extra origins come from CORS_ALLOW_ORIGINS.
func CorsMiddleware(extraOrigins string) fiber.Handler {
	origins := "http://localhost:5173,http://localhost:3000,https://maranathaprayerhouse.org,https://www.maranathaprayerhouse.org"
	if extraOrigins != "" {
		origins += "," + extraOrigins
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With,X-Request-ID",
		ExposeHeaders:    "Content-Length,Content-Type,X-Request-ID",
		AllowCredentials: true,
	})
}
