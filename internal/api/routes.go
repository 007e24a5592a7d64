package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/send-verify-otp", handler.AuthRequired, handler.SendVerifyOTP)
	auth.Post("/verify-account", handler.AuthRequired, handler.VerifyAccount)
	auth.Post("/is-auth", handler.AuthRequired, handler.IsAuthenticated)
	auth.Post("/send-reset-otp", handler.SendResetOTP)
	auth.Post("/verify-reset-otp", handler.VerifyResetOTP)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Put("/update-profile", handler.AuthRequired, handler.UpdateProfile)
	auth.Post("/upload-profile-picture", handler.AuthRequired, handler.UploadProfilePicture)
	auth.Delete("/remove-profile-picture", handler.AuthRequired, handler.RemoveProfilePicture)
	auth.Delete("/delete-account", handler.AuthRequired, handler.DeleteAccount)

	user := api.Group("/user", handler.AuthRequired)
	user.Get("/data", handler.GetUserData)

	daily := api.Group("/daily", handler.AuthRequired)
	daily.Post("/record", handler.CreateDailyRecord)
	daily.Put("/record/:id", handler.EditDailyRecord)
	daily.Delete("/record/:id", handler.DeleteDailyRecord)
	daily.Get("/records", handler.GetDailyRecords)
	daily.Get("/monthly-summary", handler.GetMonthlySummary)
	daily.Get("/history", handler.GetHistoryRecords)
}
