package routes

import (
	"visa-console-backend/middleware"
	"visa-console-backend/records/controllers"
	"visa-console-backend/records/repositories"

	"github.com/gofiber/fiber/v2"
)

func InitRecordRoutes(app *fiber.App, appCtx *middleware.AppContext, recordRepo repositories.RecordRepository) {
	records := app.Group("/api/v1/records", middleware.ProtectedRoute(appCtx))

	records.Post("/", controllers.CreateRecordController(recordRepo))
	records.Get("/", controllers.GetAllRecordsController(recordRepo))
	records.Get("/by-stage", controllers.GetRecordsByStageController(recordRepo))
	records.Get("/applicant/:applicantId", controllers.GetRecordsByApplicantController(recordRepo))
	records.Put("/:id", controllers.UpdateRecordController(recordRepo))
	records.Delete("/:id", middleware.AdminOnly(), controllers.DeleteRecordController(recordRepo))
}
