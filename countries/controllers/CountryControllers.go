package controllers

import (
	"visa-console-backend/config"
	"visa-console-backend/countries/repositories"
	"visa-console-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func CreateCountryController(countryRepo repositories.CountryRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var country models.Country
		if err := c.BodyParser(&country); err != nil {
			config.Logger.Error("Failed to parse country request body", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}

		if country.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Country name is required",
			})
		}

		created, err := countryRepo.CreateCountry(&country)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to create country",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Country created successfully",
			"data":    created,
		})
	}
}

func GetAllCountriesController(countryRepo repositories.CountryRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		countries, err := countryRepo.GetAllCountries()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve countries",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Countries retrieved successfully",
			"data":    countries,
		})
	}
}

func UpdateCountryController(countryRepo repositories.CountryRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid country ID",
			})
		}

		existing, err := countryRepo.GetCountryByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Country not found",
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

		updated, err := countryRepo.UpdateCountry(existing)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update country",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Country updated successfully",
			"data":    updated,
		})
	}
}

func DeleteCountryController(countryRepo repositories.CountryRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid country ID",
			})
		}

		if err := countryRepo.DeleteCountry(id); err != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Failed to delete country",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Country deleted successfully",
		})
	}
}
