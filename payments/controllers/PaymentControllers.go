package controllers

import (
	"visa-console-backend/config"
	"visa-console-backend/db/models"
	"visa-console-backend/payments/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreatePaymentController records one instalment against an applicant's file
func CreatePaymentController(paymentRepo repositories.PaymentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payment models.Payment
		if err := c.BodyParser(&payment); err != nil {
			config.Logger.Error("Failed to parse payment request body", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}

		if payment.ApplicantID == uuid.Nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Applicant ID is required",
			})
		}
		if payment.Amount.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Payment amount cannot be negative",
			})
		}

		created, err := paymentRepo.CreatePayment(&payment)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to record payment",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Payment recorded successfully",
			"data":    created,
		})
	}
}

func GetAllPaymentsController(paymentRepo repositories.PaymentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payments, err := paymentRepo.GetAllPayments(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve payments",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Payments retrieved successfully",
			"data":    payments,
		})
	}
}

// GetPaymentsByApplicantController returns the instalment history and total paid
func GetPaymentsByApplicantController(paymentRepo repositories.PaymentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		applicantID, err := uuid.Parse(c.Params("applicantId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid applicant ID",
			})
		}

		payments, total, err := paymentRepo.GetPaymentsByApplicant(applicantID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve payments",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Payments retrieved successfully",
			"data": fiber.Map{
				"payments":   payments,
				"total_paid": total,
			},
		})
	}
}

func DeletePaymentController(paymentRepo repositories.PaymentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid payment ID",
			})
		}

		if err := paymentRepo.DeletePayment(id); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to delete payment",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Payment deleted successfully",
		})
	}
}
