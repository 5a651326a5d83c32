package repositories

import (
	"fmt"

	"visa-console-backend/config"
	"visa-console-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CountryRepository interface {
	CreateCountry(country *models.Country) (*models.Country, error)
	GetAllCountries() ([]models.Country, error)
	GetCountryByID(id uuid.UUID) (*models.Country, error)
	UpdateCountry(country *models.Country) (*models.Country, error)
	DeleteCountry(id uuid.UUID) error
}

type countryRepository struct {
	DB *gorm.DB
}

func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{DB: db}
}

func (r *countryRepository) GetAllCountries() ([]models.Country, error) {
	var countries []models.Country
	if err := r.DB.Order("name ASC").Find(&countries).Error; err != nil {
		config.Logger.Error("Failed to get all countries", zap.Error(err))
		return nil, fmt.Errorf("failed to get all countries: %w", err)
	}
	return countries, nil
}

func (r *countryRepository) GetCountryByID(id uuid.UUID) (*models.Country, error) {
	var country models.Country
	if err := r.DB.First(&country, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get country %s: %w", id, err)
	}
	return &country, nil
}

func (r *countryRepository) CreateCountry(country *models.Country) (*models.Country, error) {
	if err := r.DB.Create(country).Error; err != nil {
		config.Logger.Error("Failed to create country", zap.Error(err), zap.String("name", country.Name))
		return nil, fmt.Errorf("failed to create country: %w", err)
	}
	return country, nil
}

func (r *countryRepository) UpdateCountry(country *models.Country) (*models.Country, error) {
	if err := r.DB.Save(country).Error; err != nil {
		return nil, fmt.Errorf("failed to update country: %w", err)
	}
	return country, nil
}

func (r *countryRepository) DeleteCountry(id uuid.UUID) error {
	var attached int64
	if err := r.DB.Model(&models.Applicant{}).Where("country_id = ?", id).Count(&attached).Error; err != nil {
		return fmt.Errorf("failed to check country references: %w", err)
	}
	if attached > 0 {
		return fmt.Errorf("country has %d attached applicants", attached)
	}

	if err := r.DB.Delete(&models.Country{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete country: %w", err)
	}
	return nil
}
