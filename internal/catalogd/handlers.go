package catalogd

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "pocketshop/internal/log"
	"pocketshop/internal/validate"
)

type Handler struct {
	Repo *ProductRepo
}

func (h *Handler) ListProducts(c *fiber.Ctx) error {
	products, err := h.Repo.List()
	if err != nil {
		applog.Error(c, "catalogd.products.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load products"})
	}
	return c.JSON(products)
}

func (h *Handler) GetProduct(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		applog.Warn(c, "validation.fail", map[string]any{"field": "id", "value": c.Params("id")})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, err := h.Repo.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		applog.Error(c, "catalogd.product.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load product"})
	}
	return c.JSON(p)
}

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.Repo.Categories()
	if err != nil {
		applog.Error(c, "catalogd.categories.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load categories"})
	}
	return c.JSON(cats)
}
