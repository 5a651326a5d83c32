package controllers

import (
	"visa-console-backend/config"
	"visa-console-backend/db/models"
	"visa-console-backend/records/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRecordController opens a new processing record for an applicant
func CreateRecordController(recordRepo repositories.RecordRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var record models.ProcessingRecord
		if err := c.BodyParser(&record); err != nil {
			config.Logger.Error("Failed to parse record request body", zap.Error(err))
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
		if record.ProgressStage != "" && !record.ProgressStage.Known() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unknown progress stage",
			})
		}

		created, err := recordRepo.CreateRecord(&record)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to create processing record",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Processing record created successfully",
			"data":    created,
		})
	}
}

func GetAllRecordsController(recordRepo repositories.RecordRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := recordRepo.GetAllRecords(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve processing records",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Processing records retrieved successfully",
			"data":    records,
		})
	}
}

// GetRecordsByStageController powers the status screen: every record
// currently sitting at the requested stage, newest submissions first.
func GetRecordsByStageController(recordRepo repositories.RecordRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stage := models.ProgressStage(c.Query("stage"))
		if !stage.Known() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unknown progress stage",
				"data":    models.AllProgressStages,
			})
		}

		records, err := recordRepo.GetRecordsByStage(stage)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve processing records",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Processing records retrieved successfully",
			"data":    records,
		})
	}
}

func GetRecordsByApplicantController(recordRepo repositories.RecordRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		applicantID, err := uuid.Parse(c.Params("applicantId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid applicant ID",
			})
		}

		records, err := recordRepo.GetRecordsByApplicant(applicantID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve processing records",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Processing records retrieved successfully",
			"data":    records,
		})
	}
}

func UpdateRecordController(recordRepo repositories.RecordRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid record ID",
			})
		}

		existing, err := recordRepo.GetRecordByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Processing record not found",
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

		if existing.ProgressStage != "" && !existing.ProgressStage.Known() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unknown progress stage",
			})
		}

		updated, err := recordRepo.UpdateRecord(existing)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update processing record",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Processing record updated successfully",
			"data":    updated,
		})
	}
}

func DeleteRecordController(recordRepo repositories.RecordRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid record ID",
			})
		}

		if err := recordRepo.DeleteRecord(id); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to delete processing record",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Processing record deleted successfully",
		})
	}
}
