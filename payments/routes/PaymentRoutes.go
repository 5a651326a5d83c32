package routes

import (
	"visa-console-backend/middleware"
	"visa-console-backend/payments/controllers"
	"visa-console-backend/payments/repositories"

	"github.com/gofiber/fiber/v2"
)

func InitPaymentRoutes(app *fiber.App, appCtx *middleware.AppContext, paymentRepo repositories.PaymentRepository) {
	payments := app.Group("/api/v1/payments", middleware.ProtectedRoute(appCtx))

	payments.Post("/", controllers.CreatePaymentController(paymentRepo))
	payments.Get("/", controllers.GetAllPaymentsController(paymentRepo))
	payments.Get("/applicant/:applicantId", controllers.GetPaymentsByApplicantController(paymentRepo))
	payments.Delete("/:id", middleware.AdminOnly(), controllers.DeletePaymentController(paymentRepo))
}
