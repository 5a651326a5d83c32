package controllers

import (
	"visa-console-backend/agents/repositories"
	"visa-console-backend/config"
	"visa-console-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateAgentController creates a new agent
func CreateAgentController(agentRepo repositories.AgentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var agent models.Agent
		if err := c.BodyParser(&agent); err != nil {
			config.Logger.Error("Failed to parse agent request body", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}

		if agent.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Agent name is required",
			})
		}

		created, err := agentRepo.CreateAgent(&agent)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to create agent",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Agent created successfully",
			"data":    created,
		})
	}
}

// GetAllAgentsController lists every agent ordered by name
func GetAllAgentsController(agentRepo repositories.AgentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		agents, err := agentRepo.GetAllAgents(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve agents",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Agents retrieved successfully",
			"data":    agents,
		})
	}
}

// GetAgentController returns one agent plus how many applicants reference it
func GetAgentController(agentRepo repositories.AgentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid agent ID",
			})
		}

		agent, err := agentRepo.GetAgentByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Agent not found",
				"error":   err.Error(),
			})
		}

		applicantCount, err := agentRepo.CountApplicantsByAgent(id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to count applicants",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Agent retrieved successfully",
			"data": fiber.Map{
				"agent":           agent,
				"applicant_count": applicantCount,
			},
		})
	}
}

// UpdateAgentController updates an existing agent
func UpdateAgentController(agentRepo repositories.AgentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid agent ID",
			})
		}

		existing, err := agentRepo.GetAgentByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Agent not found",
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

		updated, err := agentRepo.UpdateAgent(existing)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update agent",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Agent updated successfully",
			"data":    updated,
		})
	}
}

// DeleteAgentController deletes an agent that has no attached applicants
func DeleteAgentController(agentRepo repositories.AgentRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid agent ID",
			})
		}

		if err := agentRepo.DeleteAgent(id); err != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Failed to delete agent",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Agent deleted successfully",
		})
	}
}
