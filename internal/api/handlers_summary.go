package api

import (
	"github.com/adeelur/riderledger/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetMonthlySummary(c *fiber.Ctx) error {
	include := services.FilterIncludeComponents(c.Query("include"), services.SummaryComponents())
	if len(include) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "Invalid include parameter. Valid values: fixed_salary, deliveries, tips")
	}

	window := services.CurrentCycle(handler.now())
	summary, err := handler.engine.MonthlySummary(currentUserID(c), window, include)
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to load monthly summary")
	}

	return jsonSuccess(c, fiber.StatusOK, "", fiber.Map{
		"summary": summary,
		"cycle": fiber.Map{
			"start_date": window.Start,
			"end_date":   window.End,
		},
	})
}

func (handler *Handler) GetHistoryRecords(c *fiber.Ctx) error {
	fromRaw := c.Query("from_date")
	toRaw := c.Query("to_date")
	if fromRaw == "" || toRaw == "" {
		return jsonError(c, fiber.StatusBadRequest, "From and to dates are required")
	}

	from, fromOK := parseDateValue(fromRaw)
	to, toOK := parseDateValue(toRaw)
	if !fromOK || !toOK {
		return jsonError(c, fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}

	include := services.FilterIncludeComponents(c.Query("include"), services.HistoryComponents())
	if len(include) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "Invalid include parameter. Valid values: deliveries, tips")
	}

	summary, days, err := handler.engine.History(currentUserID(c), from, to, include, handler.now())
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to load history records")
	}

	return jsonSuccess(c, fiber.StatusOK, "", fiber.Map{
		"summary":      summary,
		"dailyRecords": days,
	})
}
