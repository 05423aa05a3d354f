package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/garsabers/storefront/internal/pkg/backend"
)

// Router is one installable route group.
type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires every route group onto the app.
func InstallRouter(app *fiber.App, svc *backend.Service) {
	setup(app, NewApiRouter(svc))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
