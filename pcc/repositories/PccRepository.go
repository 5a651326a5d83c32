package repositories

import (
	"context"
	"errors"
	"fmt"

	"visa-console-backend/config"
	"visa-console-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PccRepository interface {
	CreatePcc(record *models.PccRecord) (*models.PccRecord, error)
	GetAllPcc(ctx context.Context) ([]models.PccRecord, error)
	GetPccByID(id uuid.UUID) (*models.PccRecord, error)
	GetPccByApplicant(applicantID uuid.UUID) (*models.PccRecord, error)
	UpdatePcc(record *models.PccRecord) (*models.PccRecord, error)
	DeletePcc(id uuid.UUID) error
}

type pccRepository struct {
	DB *gorm.DB
}

func NewPccRepository(db *gorm.DB) PccRepository {
	return &pccRepository{DB: db}
}

func (r *pccRepository) GetAllPcc(ctx context.Context) ([]models.PccRecord, error) {
	var records []models.PccRecord
	if err := r.DB.WithContext(ctx).Preload("Applicant").Find(&records).Error; err != nil {
		config.Logger.Error("Failed to get all PCC records", zap.Error(err))
		return nil, fmt.Errorf("failed to get all PCC records: %w", err)
	}
	return records, nil
}

func (r *pccRepository) GetPccByID(id uuid.UUID) (*models.PccRecord, error) {
	var record models.PccRecord
	if err := r.DB.Preload("Applicant").First(&record, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get PCC record %s: %w", id, err)
	}
	return &record, nil
}

// GetPccByApplicant returns the applicant's PCC record, or nil without an
// error when none exists yet.
func (r *pccRepository) GetPccByApplicant(applicantID uuid.UUID) (*models.PccRecord, error) {
	var record models.PccRecord
	err := r.DB.First(&record, "applicant_id = ?", applicantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get PCC record for applicant %s: %w", applicantID, err)
	}
	return &record, nil
}

func (r *pccRepository) CreatePcc(record *models.PccRecord) (*models.PccRecord, error) {
	if err := r.DB.Create(record).Error; err != nil {
		config.Logger.Error("Failed to create PCC record",
			zap.Error(err),
			zap.String("applicantID", record.ApplicantID.String()))
		return nil, fmt.Errorf("failed to create PCC record: %w", err)
	}

	config.Logger.Info("Created PCC record successfully",
		zap.String("pccID", record.ID.String()))

	return record, nil
}

func (r *pccRepository) UpdatePcc(record *models.PccRecord) (*models.PccRecord, error) {
	if err := r.DB.Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update PCC record: %w", err)
	}
	return record, nil
}

func (r *pccRepository) DeletePcc(id uuid.UUID) error {
	if err := r.DB.Delete(&models.PccRecord{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete PCC record: %w", err)
	}
	return nil
}
