package routes

import (
	"visa-console-backend/dashboard/controllers"
	"visa-console-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func InitDashboardRoutes(app *fiber.App, appCtx *middleware.AppContext, dc *controllers.DashboardController) {
	dashboards := app.Group("/api/v1/dashboards", middleware.ProtectedRoute(appCtx))

	dashboards.Get("/depth", dc.GetDepthDashboardController())
	dashboards.Get("/appointments", dc.GetAppointmentsDashboardController())
	dashboards.Get("/passport-validity", dc.GetPassportValidityDashboardController())
	dashboards.Get("/pcc-validity", dc.GetPccValidityDashboardController())
	dashboards.Get("/ready", dc.GetReadyDashboardController())

	dashboards.Get("/stages", controllers.StagesController())
	dashboards.Get("/:dashboard/export", dc.ExportDashboardController())
}
