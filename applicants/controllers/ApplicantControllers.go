package controllers

import (
	"strconv"

	"visa-console-backend/applicants/repositories"
	"visa-console-backend/config"
	"visa-console-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateApplicantController creates a new applicant record
func CreateApplicantController(applicantRepo repositories.ApplicantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var applicant models.Applicant
		if err := c.BodyParser(&applicant); err != nil {
			config.Logger.Error("Failed to parse applicant request body", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}

		if applicant.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Applicant name is required",
			})
		}

		created, err := applicantRepo.CreateApplicant(&applicant)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to create applicant",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Applicant created successfully",
			"data":    created,
		})
	}
}

// GetAllApplicantsController returns every applicant with country and agent preloaded
func GetAllApplicantsController(applicantRepo repositories.ApplicantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		applicants, err := applicantRepo.GetAllApplicants(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve applicants",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Applicants retrieved successfully",
			"data":    applicants,
		})
	}
}

// GetFilteredApplicantsController returns a paginated, searchable applicant list
func GetFilteredApplicantsController(applicantRepo repositories.ApplicantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "20"))
		if err != nil || limit <= 0 {
			limit = 20
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}
		search := c.Query("search", "")

		applicants, total, err := applicantRepo.GetFilteredApplicants(limit, offset, search)
		if err != nil {
			config.Logger.Error("Failed to get filtered applicants", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve applicants",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"data": applicants,
			"meta": fiber.Map{
				"total":  total,
				"limit":  limit,
				"offset": offset,
			},
		})
	}
}

// GetApplicantController returns a single applicant by id
func GetApplicantController(applicantRepo repositories.ApplicantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid applicant ID",
			})
		}

		applicant, err := applicantRepo.GetApplicantByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Applicant not found",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Applicant retrieved successfully",
			"data":    applicant,
		})
	}
}

// UpdateApplicantController updates an existing applicant
func UpdateApplicantController(applicantRepo repositories.ApplicantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid applicant ID",
			})
		}

		existing, err := applicantRepo.GetApplicantByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Applicant not found",
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

		updated, err := applicantRepo.UpdateApplicant(existing)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update applicant",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Applicant updated successfully",
			"data":    updated,
		})
	}
}

// DeleteApplicantController removes an applicant by id
func DeleteApplicantController(applicantRepo repositories.ApplicantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid applicant ID",
			})
		}

		if err := applicantRepo.DeleteApplicant(id); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to delete applicant",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Applicant deleted successfully",
		})
	}
}
