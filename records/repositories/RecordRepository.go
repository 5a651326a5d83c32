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

type RecordRepository interface {
	CreateRecord(record *models.ProcessingRecord) (*models.ProcessingRecord, error)
	GetAllRecords(ctx context.Context) ([]models.ProcessingRecord, error)
	GetRecordByID(id uuid.UUID) (*models.ProcessingRecord, error)
	GetRecordsByApplicant(applicantID uuid.UUID) ([]models.ProcessingRecord, error)
	GetRecordsByStage(stage models.ProgressStage) ([]models.ProcessingRecord, error)
	UpdateRecord(record *models.ProcessingRecord) (*models.ProcessingRecord, error)
	DeleteRecord(id uuid.UUID) error
}

type recordRepository struct {
	DB *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{DB: db}
}

func (r *recordRepository) GetAllRecords(ctx context.Context) ([]models.ProcessingRecord, error) {
	var records []models.ProcessingRecord
	if err := r.DB.WithContext(ctx).Preload("Applicant").Find(&records).Error; err != nil {
		config.Logger.Error("Failed to get all processing records", zap.Error(err))
		return nil, fmt.Errorf("failed to get all processing records: %w", err)
	}
	return records, nil
}

func (r *recordRepository) GetRecordByID(id uuid.UUID) (*models.ProcessingRecord, error) {
	var record models.ProcessingRecord
	if err := r.DB.Preload("Applicant").First(&record, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get processing record %s: %w", id, err)
	}
	return &record, nil
}

func (r *recordRepository) GetRecordsByApplicant(applicantID uuid.UUID) ([]models.ProcessingRecord, error) {
	var records []models.ProcessingRecord
	if err := r.DB.Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get records for applicant %s: %w", applicantID, err)
	}
	return records, nil
}

func (r *recordRepository) GetRecordsByStage(stage models.ProgressStage) ([]models.ProcessingRecord, error) {
	var records []models.ProcessingRecord
	if err := r.DB.Preload("Applicant").
		Where("progress_stage = ?", stage).
		Order("submitted_at DESC NULLS LAST, created_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get records for stage %s: %w", stage, err)
	}
	return records, nil
}

func (r *recordRepository) CreateRecord(record *models.ProcessingRecord) (*models.ProcessingRecord, error) {
	if err := r.DB.Create(record).Error; err != nil {
		config.Logger.Error("Failed to create processing record",
			zap.Error(err),
			zap.String("applicantID", record.ApplicantID.String()))
		return nil, fmt.Errorf("failed to create processing record: %w", err)
	}

	if err := r.DB.Preload("Applicant").First(record, record.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load record relationships: %w", err)
	}

	config.Logger.Info("Created processing record successfully",
		zap.String("recordID", record.ID.String()),
		zap.String("stage", string(record.ProgressStage)))

	return record, nil
}

func (r *recordRepository) UpdateRecord(record *models.ProcessingRecord) (*models.ProcessingRecord, error) {
	if err := r.DB.Save(record).Error; err != nil {
		config.Logger.Error("Failed to update processing record",
			zap.Error(err),
			zap.String("recordID", record.ID.String()))
		return nil, fmt.Errorf("failed to update processing record: %w", err)
	}
	return record, nil
}

func (r *recordRepository) DeleteRecord(id uuid.UUID) error {
	if err := r.DB.Delete(&models.ProcessingRecord{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete processing record: %w", err)
	}
	return nil
}
