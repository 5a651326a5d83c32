package routes

import (
	"visa-console-backend/applicants/controllers"
	"visa-console-backend/applicants/repositories"
	"visa-console-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func InitApplicantRoutes(app *fiber.App, appCtx *middleware.AppContext, applicantRepo repositories.ApplicantRepository) {
	applicants := app.Group("/api/v1/applicants", middleware.ProtectedRoute(appCtx))

	applicants.Post("/", controllers.CreateApplicantController(applicantRepo))
	applicants.Get("/", controllers.GetAllApplicantsController(applicantRepo))
	applicants.Get("/filtered", controllers.GetFilteredApplicantsController(applicantRepo))
	applicants.Get("/:id", controllers.GetApplicantController(applicantRepo))
	applicants.Put("/:id", controllers.UpdateApplicantController(applicantRepo))
	applicants.Delete("/:id", middleware.AdminOnly(), controllers.DeleteApplicantController(applicantRepo))
}
