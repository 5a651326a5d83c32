package routes

import (
	"visa-console-backend/agents/controllers"
	"visa-console-backend/agents/repositories"
	"visa-console-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func InitAgentRoutes(app *fiber.App, appCtx *middleware.AppContext, agentRepo repositories.AgentRepository) {
	agents := app.Group("/api/v1/agents", middleware.ProtectedRoute(appCtx))

	agents.Post("/", controllers.CreateAgentController(agentRepo))
	agents.Get("/", controllers.GetAllAgentsController(agentRepo))
	agents.Get("/:id", controllers.GetAgentController(agentRepo))
	agents.Put("/:id", controllers.UpdateAgentController(agentRepo))
	agents.Delete("/:id", middleware.AdminOnly(), controllers.DeleteAgentController(agentRepo))
}
