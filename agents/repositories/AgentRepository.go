package repositories

import (
	"context"
	"fmt"

	"visa-console-backend/config"
	"visa-console-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AgentRepository interface {
	CreateAgent(agent *models.Agent) (*models.Agent, error)
	GetAllAgents(ctx context.Context) ([]models.Agent, error)
	GetAgentByID(id uuid.UUID) (*models.Agent, error)
	UpdateAgent(agent *models.Agent) (*models.Agent, error)
	DeleteAgent(id uuid.UUID) error
	CountApplicantsByAgent(id uuid.UUID) (int64, error)
}

type agentRepository struct {
	DB *gorm.DB
}

func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{DB: db}
}

func (r *agentRepository) GetAllAgents(ctx context.Context) ([]models.Agent, error) {
	var agents []models.Agent
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&agents).Error; err != nil {
		config.Logger.Error("Failed to get all agents", zap.Error(err))
		return nil, fmt.Errorf("failed to get all agents: %w", err)
	}
	return agents, nil
}

func (r *agentRepository) GetAgentByID(id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	if err := r.DB.First(&agent, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get agent %s: %w", id, err)
	}
	return &agent, nil
}

func (r *agentRepository) CreateAgent(agent *models.Agent) (*models.Agent, error) {
	if err := r.DB.Create(agent).Error; err != nil {
		config.Logger.Error("Failed to create agent", zap.Error(err), zap.String("name", agent.Name))
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	config.Logger.Info("Created agent successfully", zap.String("agentID", agent.ID.String()))
	return agent, nil
}

func (r *agentRepository) UpdateAgent(agent *models.Agent) (*models.Agent, error) {
	if err := r.DB.Save(agent).Error; err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return agent, nil
}

func (r *agentRepository) DeleteAgent(id uuid.UUID) error {
	var attached int64
	if err := r.DB.Model(&models.Applicant{}).Where("agent_id = ?", id).Count(&attached).Error; err != nil {
		return fmt.Errorf("failed to check agent references: %w", err)
	}
	if attached > 0 {
		return fmt.Errorf("agent has %d attached applicants", attached)
	}

	if err := r.DB.Delete(&models.Agent{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

func (r *agentRepository) CountApplicantsByAgent(id uuid.UUID) (int64, error) {
	var count int64
	if err := r.DB.Model(&models.Applicant{}).Where("agent_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count applicants for agent %s: %w", id, err)
	}
	return count, nil
}
