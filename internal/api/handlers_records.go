package api

import (
	"strconv"

	"github.com/adeelur/riderledger/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) recordInputFromPayload(payload recordPayload) services.RecordInput {
	input := services.RecordInput{
		WorkStatus: payload.WorkStatus,
		Deliveries: payload.Deliveries,
		Tips:       payload.Tips,
		Expenses:   payload.Expenses,
		DayQuality: payload.DayQuality,
	}
	if date, ok := parseDateValue(payload.Date); ok {
		input.Date = date
	}
	return input
}

// Mutations refresh the cached summary only when the touched date falls
// in the current billing window. The record write has already committed
// by then; a refresh failure leaves a stale but recomputable cache.
func (handler *Handler) CreateDailyRecord(c *fiber.Ctx) error {
	var payload recordPayload
	if err := parseBody(c, &payload); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}

	userID := currentUserID(c)
	record, err := handler.records.Create(userID, handler.recordInputFromPayload(payload))
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to create daily record")
	}

	window := services.CurrentCycle(handler.now())
	if window.Contains(record.Date) {
		if err := handler.engine.Refresh(userID, window); err != nil {
			return handler.downstreamError(c, "Daily record saved but monthly summary refresh failed", err)
		}
	}
	return jsonSuccess(c, fiber.StatusCreated, "Daily record created successfully", fiber.Map{"record": record})
}

func (handler *Handler) EditDailyRecord(c *fiber.Ctx) error {
	recordID, ok := parseRecordID(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid record id")
	}

	var payload recordPayload
	if err := parseBody(c, &payload); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}

	userID := currentUserID(c)
	record, err := handler.records.Edit(userID, recordID, handler.recordInputFromPayload(payload))
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to update daily record")
	}

	window := services.CurrentCycle(handler.now())
	if window.Contains(record.Date) {
		if err := handler.engine.Refresh(userID, window); err != nil {
			return handler.downstreamError(c, "Daily record saved but monthly summary refresh failed", err)
		}
	}
	return jsonSuccess(c, fiber.StatusOK, "Daily record updated successfully", fiber.Map{"record": record})
}

func (handler *Handler) DeleteDailyRecord(c *fiber.Ctx) error {
	recordID, ok := parseRecordID(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid record id")
	}

	userID := currentUserID(c)
	record, err := handler.records.Delete(userID, recordID)
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to delete daily record")
	}

	// The deleted record's own date decides whether the cached summary
	// is stale, not today's date.
	window := services.CurrentCycle(handler.now())
	if window.Contains(record.Date) {
		if err := handler.engine.Refresh(userID, window); err != nil {
			return handler.downstreamError(c, "Daily record deleted but monthly summary refresh failed", err)
		}
	}
	return jsonSuccess(c, fiber.StatusOK, "Daily record deleted successfully", nil)
}

func (handler *Handler) GetDailyRecords(c *fiber.Ctx) error {
	window := services.CurrentCycle(handler.now())
	records, err := handler.records.ListCycle(currentUserID(c), window)
	if err != nil {
		return handler.downstreamError(c, "Failed to load daily records", err)
	}
	return jsonSuccess(c, fiber.StatusOK, "", fiber.Map{"records": records})
}

func parseRecordID(c *fiber.Ctx) (uint, bool) {
	value, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
