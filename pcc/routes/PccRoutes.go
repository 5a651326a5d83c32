package routes

import (
	"visa-console-backend/middleware"
	"visa-console-backend/pcc/controllers"
	"visa-console-backend/pcc/repositories"

	"github.com/gofiber/fiber/v2"
)

func InitPccRoutes(app *fiber.App, appCtx *middleware.AppContext, pccRepo repositories.PccRepository) {
	pcc := app.Group("/api/v1/pcc", middleware.ProtectedRoute(appCtx))

	pcc.Post("/", controllers.CreatePccController(pccRepo))
	pcc.Get("/", controllers.GetAllPccController(pccRepo))
	pcc.Get("/applicant/:applicantId", controllers.GetPccByApplicantController(pccRepo))
	pcc.Put("/:id", controllers.UpdatePccController(pccRepo))
	pcc.Delete("/:id", middleware.AdminOnly(), controllers.DeletePccController(pccRepo))
}
