package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/VSP7988/maranatha-api/interfaces/api/handlers"
	"github.com/VSP7988/maranatha-api/interfaces/api/middleware"
	wshandler "github.com/VSP7988/maranatha-api/interfaces/api/websocket"

	infraws "github.com/VSP7988/maranatha-api/infrastructure/websocket"
)

// Router exposes the route groups content categories register under.
type Router struct {
	Public fiber.Router // /api/v1/public
	Admin  fiber.Router // /api/v1/admin, token guarded
}

// Setup registers the fixed routes and returns the groups for the
// per-category content routes.
func Setup(app *fiber.App, h *handlers.Handlers, jwtSecret string, hub *infraws.Hub) *Router {
	app.Get("/health", h.Health.Check)

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Get("/me", middleware.Protected(jwtSecret), h.Auth.Me)

	public := api.Group("/public")
	// The site header and footer read this without auth.
	public.Get("/site-info", h.Setting.SiteInfo)

	admin := api.Group("/admin", middleware.Protected(jwtSecret), middleware.AdminOnly())
	admin.Post("/uploads", h.Upload.Upload)
	admin.Get("/settings/:section", h.Setting.Section)
	admin.Put("/settings", h.Setting.Update)

	if hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		app.Get("/ws/admin", websocket.New(wshandler.AdminHandler(hub)))
	}

	return &Router{Public: public, Admin: admin}
}
