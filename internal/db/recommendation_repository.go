package db

import (
	"github.com/wellspring-health/wellspring/internal/models"
	"gorm.io/gorm"
)

type RecommendationRepository struct {
	database *gorm.DB
}

func NewRecommendationRepository(database *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{database: database}
}

func (repo *RecommendationRepository) CreateCombined(record *models.CombinedRecommendation) error {
	return repo.database.Create(record).Error
}

func (repo *RecommendationRepository) ListCombinedByUser(userID uint) ([]models.CombinedRecommendation, error) {
	records := make([]models.CombinedRecommendation, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
