package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Root(c *fiber.Ctx) error {
	return c.SendString("Backend is live!")
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
