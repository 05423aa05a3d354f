package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	apiv1 "github.com/garsabers/storefront/internal/api/v1"
	"github.com/garsabers/storefront/internal/pkg/backend"
	"github.com/garsabers/storefront/internal/pkg/middleware"
)

type ApiRouter struct {
	svc *backend.Service
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer(h.svc)
	apiv1.RegisterHandlers(v1, apiServer, middleware.AdminGuard())
}

func NewApiRouter(svc *backend.Service) *ApiRouter {
	return &ApiRouter{svc: svc}
}
