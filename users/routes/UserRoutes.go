package routes

import (
	"visa-console-backend/middleware"
	"visa-console-backend/users/controllers"
	"visa-console-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
)

func InitUserRoutes(app *fiber.App, appCtx *middleware.AppContext, userRepo repositories.UserRepository) {
	users := app.Group("/api/v1/users")

	users.Post("/login", controllers.LoginController(appCtx, userRepo))
	users.Post("/refresh", controllers.RefreshController(appCtx, userRepo))
	users.Post("/logout", controllers.LogoutController(appCtx))

	users.Post("/register",
		middleware.ProtectedRoute(appCtx), middleware.AdminOnly(),
		controllers.RegisterController(userRepo))
	users.Get("/",
		middleware.ProtectedRoute(appCtx), middleware.AdminOnly(),
		controllers.GetAllUsersController(userRepo))
	users.Delete("/:id",
		middleware.ProtectedRoute(appCtx), middleware.AdminOnly(),
		controllers.DeleteUserController(userRepo))
}
