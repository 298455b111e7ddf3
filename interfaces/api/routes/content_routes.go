package routes

import (
	"github.com/VSP7988/maranatha-api/domain/content"
	"github.com/VSP7988/maranatha-api/interfaces/api/handlers"
)

// RegisterContentRoutes mounts one content category: a public read at
// /api/v1/public/<path> and the full CRUD set under /api/v1/admin/<path>.
func RegisterContentRoutes[T any, P interface {
	content.Row
	*T
}](r *Router, spec content.Spec, admin *handlers.AdminContentHandler[T, P], public *handlers.PublicContentHandler[T]) {
	r.Public.Get("/"+spec.Path, public.List)

	g := r.Admin.Group("/" + spec.Path)
	g.Get("/", admin.List)
	g.Get("/:id", admin.Get)
	g.Post("/", admin.Create)
	g.Put("/:id", admin.Update)
	g.Delete("/:id", admin.Delete)
	g.Patch("/:id/toggle", admin.Toggle)
}
