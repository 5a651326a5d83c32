package controllers

import (
	"visa-console-backend/config"
	"visa-console-backend/db/models"
	"visa-console-backend/pcc/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreatePccController creates the PCC record for an applicant. The console
// tracks at most one certificate per applicant, so a duplicate is a conflict.
func CreatePccController(pccRepo repositories.PccRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var record models.PccRecord
		if err := c.BodyParser(&record); err != nil {
			config.Logger.Error("Failed to parse PCC request body", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}

		if record.ApplicantID == uuid.Nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Applicant ID is required",
			})
		}

		existing, err := pccRepo.GetPccByApplicant(record.ApplicantID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to check existing PCC record",
				"error":   err.Error(),
			})
		}
		if existing != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Applicant already has a PCC record",
				"data":    existing,
			})
		}

		created, err := pccRepo.CreatePcc(&record)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to create PCC record",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "PCC record created successfully",
			"data":    created,
		})
	}
}

func GetAllPccController(pccRepo repositories.PccRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := pccRepo.GetAllPcc(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve PCC records",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "PCC records retrieved successfully",
			"data":    records,
		})
	}
}

func GetPccByApplicantController(pccRepo repositories.PccRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		applicantID, err := uuid.Parse(c.Params("applicantId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid applicant ID",
			})
		}

		record, err := pccRepo.GetPccByApplicant(applicantID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve PCC record",
				"error":   err.Error(),
			})
		}
		if record == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No PCC record for this applicant",
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "PCC record retrieved successfully",
			"data":    record,
		})
	}
}

func UpdatePccController(pccRepo repositories.PccRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid PCC record ID",
			})
		}

		existing, err := pccRepo.GetPccByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "PCC record not found",
				"error":   err.Error(),
			})
		}

		if err := c.BodyParser(existing); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
		existing.ID = id

		updated, err := pccRepo.UpdatePcc(existing)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update PCC record",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "PCC record updated successfully",
			"data":    updated,
		})
	}
}

func DeletePccController(pccRepo repositories.PccRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid PCC record ID",
			})
		}

		if err := pccRepo.DeletePcc(id); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to delete PCC record",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "PCC record deleted successfully",
		})
	}
}
