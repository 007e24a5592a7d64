package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/adeelur/riderledger/internal/db"
	"github.com/adeelur/riderledger/internal/mail"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (mailer *recordingMailer) Send(message mail.Message) error {
	if mailer.err != nil {
		return mailer.err
	}
	mailer.sent = append(mailer.sent, message)
	return nil
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB, *recordingMailer) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	mailer := &recordingMailer{}
	handler := NewHandler(database, "test-secret", mailer, false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, mailer
}

func jsonRequest(t *testing.T, method string, target string, payload any, cookie string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
	}

	request := httptest.NewRequest(method, target, &body)
	request.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		request.AddCookie(&http.Cookie{Name: authCookieName, Value: cookie})
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request) (*http.Response, map[string]any) {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("perform request: %v", err)
	}

	decoded := make(map[string]any)
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return response, decoded
}

func authCookieValue(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatal("expected auth cookie in response")
	return ""
}

func registerTestRider(t *testing.T, app *fiber.App) string {
	t.Helper()

	response, body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":           "Test Rider",
		"email":          "rider@example.com",
		"password":       "password1",
		"employmentType": "FullTimer",
	}, ""))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, body = %v", response.StatusCode, body)
	}
	return authCookieValue(t, response)
}

func verifyTestRider(t *testing.T, app *fiber.App, database *gorm.DB, cookie string) {
	t.Helper()

	var stored struct {
		VerifyOTP string `gorm:"column:verify_otp"`
	}
	if err := database.Table("users").Select("verify_otp").Where("email = ?", "rider@example.com").First(&stored).Error; err != nil {
		t.Fatalf("load verify otp: %v", err)
	}

	response, body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/auth/verify-account", map[string]any{
		"otp": stored.VerifyOTP,
	}, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("verify status = %d, body = %v", response.StatusCode, body)
	}
}
