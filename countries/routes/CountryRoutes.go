package routes

import (
	"visa-console-backend/countries/controllers"
	"visa-console-backend/countries/repositories"
	"visa-console-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func InitCountryRoutes(app *fiber.App, appCtx *middleware.AppContext, countryRepo repositories.CountryRepository) {
	countries := app.Group("/api/v1/countries", middleware.ProtectedRoute(appCtx))

	countries.Post("/", controllers.CreateCountryController(countryRepo))
	countries.Get("/", controllers.GetAllCountriesController(countryRepo))
	countries.Put("/:id", controllers.UpdateCountryController(countryRepo))
	countries.Delete("/:id", middleware.AdminOnly(), controllers.DeleteCountryController(countryRepo))
}
