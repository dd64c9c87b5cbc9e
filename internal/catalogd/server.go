package catalogd

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	applog "pocketshop/internal/log"
)

// NewApp assembles the catalog routes on a fiber app.
func NewApp(db *sqlx.DB) *fiber.App {
	h := &Handler{Repo: NewProductRepo(db)}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "catalogd.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		},
	})
	app.Use(requestid.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 30 * time.Second,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "rate.catalog.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	// /products/categories must be registered before /products/:id
	app.Get("/products", h.ListProducts)
	app.Get("/products/categories", h.ListCategories)
	app.Get("/products/:id", h.GetProduct)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})
	return app
}
