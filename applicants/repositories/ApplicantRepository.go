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

type ApplicantRepository interface {
	CreateApplicant(applicant *models.Applicant) (*models.Applicant, error)
	GetAllApplicants(ctx context.Context) ([]models.Applicant, error)
	GetApplicantByID(id uuid.UUID) (*models.Applicant, error)
	UpdateApplicant(applicant *models.Applicant) (*models.Applicant, error)
	DeleteApplicant(id uuid.UUID) error
	GetFilteredApplicants(limit, offset int, search string) ([]models.Applicant, int64, error)
}

type applicantRepository struct {
	DB *gorm.DB
}

// NewApplicantRepository initializes a new applicant repository
func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{DB: db}
}

func (ar *applicantRepository) GetAllApplicants(ctx context.Context) ([]models.Applicant, error) {
	var applicants []models.Applicant
	if err := ar.DB.WithContext(ctx).Preload("Country").Preload("Agent").Find(&applicants).Error; err != nil {
		config.Logger.Error("Failed to get all applicants", zap.Error(err))
		return nil, fmt.Errorf("failed to get all applicants: %w", err)
	}
	return applicants, nil
}

func (ar *applicantRepository) GetApplicantByID(id uuid.UUID) (*models.Applicant, error) {
	var applicant models.Applicant
	if err := ar.DB.Preload("Country").Preload("Agent").First(&applicant, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get applicant %s: %w", id, err)
	}
	return &applicant, nil
}

func (ar *applicantRepository) CreateApplicant(applicant *models.Applicant) (*models.Applicant, error) {
	if err := ar.DB.Create(applicant).Error; err != nil {
		config.Logger.Error("Failed to create applicant",
			zap.Error(err),
			zap.String("name", applicant.Name))
		return nil, fmt.Errorf("failed to create applicant: %w", err)
	}

	// Reload with relationships so the response matches list endpoints
	if err := ar.DB.Preload("Country").Preload("Agent").First(applicant, applicant.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load applicant relationships: %w", err)
	}

	config.Logger.Info("Created applicant successfully",
		zap.String("applicantID", applicant.ID.String()),
		zap.String("name", applicant.Name))

	return applicant, nil
}

func (ar *applicantRepository) UpdateApplicant(applicant *models.Applicant) (*models.Applicant, error) {
	if err := ar.DB.Save(applicant).Error; err != nil {
		config.Logger.Error("Failed to update applicant",
			zap.Error(err),
			zap.String("applicantID", applicant.ID.String()))
		return nil, fmt.Errorf("failed to update applicant: %w", err)
	}
	return applicant, nil
}

func (ar *applicantRepository) DeleteApplicant(id uuid.UUID) error {
	if err := ar.DB.Delete(&models.Applicant{}, "id = ?", id).Error; err != nil {
		config.Logger.Error("Failed to delete applicant", zap.Error(err), zap.String("applicantID", id.String()))
		return fmt.Errorf("failed to delete applicant: %w", err)
	}
	return nil
}

func (ar *applicantRepository) GetFilteredApplicants(limit, offset int, search string) ([]models.Applicant, int64, error) {
	var applicants []models.Applicant
	var total int64

	query := ar.DB.Model(&models.Applicant{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR passport ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Country").Preload("Agent").
		Order("updated_at DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&applicants).Error; err != nil {
		return nil, 0, err
	}

	return applicants, total, nil
}
