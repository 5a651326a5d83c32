package repositories

import (
	"context"
	"fmt"

	"visa-console-backend/config"
	"visa-console-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	CreatePayment(payment *models.Payment) (*models.Payment, error)
	GetAllPayments(ctx context.Context) ([]models.Payment, error)
	GetPaymentByID(id uuid.UUID) (*models.Payment, error)
	GetPaymentsByApplicant(applicantID uuid.UUID) ([]models.Payment, decimal.Decimal, error)
	DeletePayment(id uuid.UUID) error
}

type paymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{DB: db}
}

func (r *paymentRepository) GetAllPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.DB.WithContext(ctx).Preload("Applicant").Find(&payments).Error; err != nil {
		config.Logger.Error("Failed to get all payments", zap.Error(err))
		return nil, fmt.Errorf("failed to get all payments: %w", err)
	}
	return payments, nil
}

func (r *paymentRepository) GetPaymentByID(id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	if err := r.DB.Preload("Applicant").First(&payment, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get payment %s: %w", id, err)
	}
	return &payment, nil
}

// GetPaymentsByApplicant returns the instalment history together with the
// running total the ready-to-apply gate checks against.
func (r *paymentRepository) GetPaymentsByApplicant(applicantID uuid.UUID) ([]models.Payment, decimal.Decimal, error) {
	var payments []models.Payment
	if err := r.DB.Where("applicant_id = ?", applicantID).
		Order("date ASC, created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to get payments for applicant %s: %w", applicantID, err)
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return payments, total, nil
}

func (r *paymentRepository) CreatePayment(payment *models.Payment) (*models.Payment, error) {
	if err := r.DB.Create(payment).Error; err != nil {
		config.Logger.Error("Failed to create payment",
			zap.Error(err),
			zap.String("applicantID", payment.ApplicantID.String()))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	config.Logger.Info("Recorded payment successfully",
		zap.String("paymentID", payment.ID.String()),
		zap.String("amount", payment.Amount.String()))

	return payment, nil
}

func (r *paymentRepository) DeletePayment(id uuid.UUID) error {
	if err := r.DB.Delete(&models.Payment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
