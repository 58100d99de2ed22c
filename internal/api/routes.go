package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)
	auth.Post("/regenerate-recovery-code", handler.AuthRequired, handler.RegenerateRecoveryCode)
	auth.Delete("/delete-account", handler.AuthRequired, handler.DeleteAccount)

	health := api.Group("/health", handler.AuthRequired)
	health.Post("/predict-disease", handler.PredictDisease)
	health.Get("/last-prediction", handler.LastPrediction)
	health.Get("/history", handler.PredictionHistory)

	mentalHealth := api.Group("/mental-health", handler.AuthRequired)
	mentalHealth.Get("/questions", handler.MentalHealthQuestions)
	mentalHealth.Post("/submit-quiz", handler.SubmitMentalHealthQuiz)
	mentalHealth.Post("/analyze-text", handler.AnalyzeTextSentiment)
	mentalHealth.Get("/assessments", handler.MentalHealthAssessments)
	mentalHealth.Get("/assessments/:id", handler.MentalHealthAssessmentDetail)

	fitness := api.Group("/fitness", handler.AuthRequired)
	fitness.Post("/profile", handler.CreateFitnessProfile)
	fitness.Put("/profile/:id", handler.UpdateFitnessProfile)
	fitness.Get("/profiles", handler.ListFitnessProfiles)
	fitness.Post("/recommendations", handler.FitnessRecommendations)

	recommendations := api.Group("/recommendations", handler.AuthRequired)
	recommendations.Post("/combined", handler.CombineRecommendations)
	recommendations.Get("/combined", handler.CombinedHistory)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}
