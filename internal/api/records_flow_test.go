package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func todayParam() string {
	return time.Now().UTC().Format("2006-01-02")
}

func TestDailyRecordLifecycle(t *testing.T) {
	app, database, _ := setupTestApp(t)
	cookie := registerTestRider(t, app)
	verifyTestRider(t, app, database, cookie)

	payload := map[string]any{
		"date":        todayParam(),
		"work_status": "On",
		"deliveries":  10,
		"tips":        50,
		"expenses":    20,
		"day_quality": "Good",
	}

	response, body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/daily/record", payload, cookie))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, body = %v", response.StatusCode, body)
	}
	record, _ := body["record"].(map[string]any)
	recordID := record["id"]
	if recordID == nil {
		t.Fatalf("create body missing record id: %v", body)
	}

	// Same (user, date) again is a conflict.
	response, body = doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/daily/record", payload, cookie))
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate status = %d, body = %v", response.StatusCode, body)
	}

	response, body = doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/daily/records", nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, body = %v", response.StatusCode, body)
	}
	records, _ := body["records"].([]any)
	if len(records) != 1 {
		t.Fatalf("expected 1 record in cycle, got %d", len(records))
	}

	edit := map[string]any{
		"date":        todayParam(),
		"work_status": "On",
		"deliveries":  12,
		"tips":        60,
		"expenses":    25,
	}
	editPath := fmt.Sprintf("/api/daily/record/%v", recordID)
	response, body = doJSON(t, app, jsonRequest(t, http.MethodPut, editPath, edit, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("edit status = %d, body = %v", response.StatusCode, body)
	}
	edited, _ := body["record"].(map[string]any)
	if edited["deliveries"] != 12.0 {
		t.Fatalf("edited deliveries = %v, want 12", edited["deliveries"])
	}
	// Quality defaults to Average when omitted on a working day.
	if edited["day_quality"] != "Average" {
		t.Fatalf("edited day quality = %v, want Average", edited["day_quality"])
	}

	response, body = doJSON(t, app, jsonRequest(t, http.MethodDelete, editPath, nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, body = %v", response.StatusCode, body)
	}

	response, body = doJSON(t, app, jsonRequest(t, http.MethodDelete, editPath, nil, cookie))
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d, body = %v", response.StatusCode, body)
	}
}

func TestMonthlySummaryReflectsActiveCycleMutations(t *testing.T) {
	app, database, _ := setupTestApp(t)
	cookie := registerTestRider(t, app)
	verifyTestRider(t, app, database, cookie)

	response, body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/daily/record", map[string]any{
		"date":        todayParam(),
		"work_status": "On",
		"deliveries":  10,
		"tips":        50,
		"expenses":    20,
	}, cookie))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, body = %v", response.StatusCode, body)
	}

	response, body = doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/daily/monthly-summary", nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("summary status = %d, body = %v", response.StatusCode, body)
	}
	summary, _ := body["summary"].(map[string]any)

	// 37000 fixed + 10*45 + 50 tips, no off days.
	if summary["total_earnings"] != 37500.0 {
		t.Fatalf("total earnings = %v, want 37500", summary["total_earnings"])
	}
	if summary["savings"] != 37480.0 {
		t.Fatalf("savings = %v, want 37480", summary["savings"])
	}
	if summary["total_deliveries"] != 10.0 {
		t.Fatalf("total deliveries = %v, want 10", summary["total_deliveries"])
	}

	// Tips-only include set on the cached summary.
	response, body = doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/daily/monthly-summary?include=tips", nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("filtered summary status = %d, body = %v", response.StatusCode, body)
	}
	summary, _ = body["summary"].(map[string]any)
	if summary["total_earnings"] != 50.0 {
		t.Fatalf("tips-only earnings = %v, want 50", summary["total_earnings"])
	}

	// Repeating a component in the include set must not double it.
	response, body = doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/daily/monthly-summary?include=tips,tips", nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("duplicated include status = %d, body = %v", response.StatusCode, body)
	}
	summary, _ = body["summary"].(map[string]any)
	if summary["total_earnings"] != 50.0 {
		t.Fatalf("duplicated include earnings = %v, want 50", summary["total_earnings"])
	}

	response, body = doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/daily/monthly-summary?include=bogus", nil, cookie))
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("bogus include status = %d, body = %v", response.StatusCode, body)
	}
}

func TestHistoryEndpointValidation(t *testing.T) {
	app, database, _ := setupTestApp(t)
	cookie := registerTestRider(t, app)
	verifyTestRider(t, app, database, cookie)

	response, body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/daily/history", nil, cookie))
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing params status = %d, body = %v", response.StatusCode, body)
	}

	target := fmt.Sprintf("/api/daily/history?from_date=%s&to_date=not-a-date", todayParam())
	response, body = doJSON(t, app, jsonRequest(t, http.MethodGet, target, nil, cookie))
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad date status = %d, body = %v", response.StatusCode, body)
	}

	response, body = doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/daily/record", map[string]any{
		"date":        todayParam(),
		"work_status": "On",
		"deliveries":  8,
		"tips":        12,
		"expenses":    5,
	}, cookie))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, body = %v", response.StatusCode, body)
	}

	target = fmt.Sprintf("/api/daily/history?from_date=%s&to_date=%s", todayParam(), todayParam())
	response, body = doJSON(t, app, jsonRequest(t, http.MethodGet, target, nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("history status = %d, body = %v", response.StatusCode, body)
	}

	days, _ := body["dailyRecords"].([]any)
	if len(days) != 1 {
		t.Fatalf("expected one history day, got %d", len(days))
	}
	summary, _ := body["summary"].(map[string]any)
	// History earnings exclude the fixed salary: 8*45 + 12.
	if summary["total_earnings"] != 372.0 {
		t.Fatalf("history earnings = %v, want 372", summary["total_earnings"])
	}

	target = fmt.Sprintf("/api/daily/history?from_date=%s&to_date=%s&include=tips,tips", todayParam(), todayParam())
	response, body = doJSON(t, app, jsonRequest(t, http.MethodGet, target, nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("duplicated include status = %d, body = %v", response.StatusCode, body)
	}
	summary, _ = body["summary"].(map[string]any)
	if summary["total_earnings"] != 12.0 {
		t.Fatalf("duplicated include earnings = %v, want 12", summary["total_earnings"])
	}
}
