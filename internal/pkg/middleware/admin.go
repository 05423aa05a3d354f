package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"github.com/garsabers/storefront/internal/pkg/env"
)

// AdminGuard gates back-office routes behind the single credential pair from
// the environment. Real user accounts and sessions are out of scope; the
// metrics page uses the same guard.
func AdminGuard() fiber.Handler {
	return basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("ADMIN_USER", "admin"): env.GetEnv("ADMIN_PASSWORD", "admin"),
		},
	})
}
