package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the raw body as JSON regardless of the declared
// content type; some clients post JSON as text/plain.
func parseBody(c *fiber.Ctx, destination any) error {
	return json.Unmarshal(c.Body(), destination)
}

func jsonSuccess(c *fiber.Ctx, status int, message string, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	for key, value := range payload {
		body[key] = value
	}
	return c.Status(status).JSON(body)
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// downstreamError hides the underlying failure in production; elsewhere
// the detail rides along for debugging.
func (handler *Handler) downstreamError(c *fiber.Ctx, message string, err error) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if !handler.production && err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDateValue(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
