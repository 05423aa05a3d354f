package main

import (
	"fmt"
	"log"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/garsabers/storefront/app/repository"
	"github.com/garsabers/storefront/internal/pkg/backend"
	"github.com/garsabers/storefront/internal/pkg/env"
	"github.com/garsabers/storefront/internal/pkg/middleware"
	"github.com/garsabers/storefront/internal/pkg/router"
	"github.com/garsabers/storefront/internal/pkg/store"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()

	st := store.New(env.GetEnv("STORE_PATH", "data/store.json"))
	st.Load()
	repository.InitializeFactory(st)
	svc := backend.NewService(repository.GetGlobalRepositories())

	app := fiber.New(fiber.Config{
		AppName: "Garsabers Storefront",
	})
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", middleware.AdminGuard(), monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, svc)

	return app
}
