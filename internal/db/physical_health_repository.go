package db

import (
	"github.com/wellspring-health/wellspring/internal/models"
	"gorm.io/gorm"
)

type PhysicalHealthRepository struct {
	database *gorm.DB
}

func NewPhysicalHealthRepository(database *gorm.DB) *PhysicalHealthRepository {
	return &PhysicalHealthRepository{database: database}
}

func (repo *PhysicalHealthRepository) CreateInput(input *models.PhysicalHealthInput) error {
	return repo.database.Create(input).Error
}

func (repo *PhysicalHealthRepository) CreatePrediction(prediction *models.DiseasePrediction) error {
	return repo.database.Create(prediction).Error
}

func (repo *PhysicalHealthRepository) ListInputsByUser(userID uint) ([]models.PhysicalHealthInput, error) {
	inputs := make([]models.PhysicalHealthInput, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&inputs).Error; err != nil {
		return nil, err
	}
	return inputs, nil
}

func (repo *PhysicalHealthRepository) ListPredictionsByUser(userID uint) ([]models.DiseasePrediction, error) {
	predictions := make([]models.DiseasePrediction, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

func (repo *PhysicalHealthRepository) LatestPredictionByUser(userID uint) (models.DiseasePrediction, bool, error) {
	prediction := models.DiseasePrediction{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&prediction)
	if result.Error != nil {
		return models.DiseasePrediction{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DiseasePrediction{}, false, nil
	}
	return prediction, true, nil
}
