package db

import (
	"github.com/wellspring-health/wellspring/internal/models"
	"gorm.io/gorm"
)

type MentalHealthRepository struct {
	database *gorm.DB
}

func NewMentalHealthRepository(database *gorm.DB) *MentalHealthRepository {
	return &MentalHealthRepository{database: database}
}

func (repo *MentalHealthRepository) ListQuestions() ([]models.MentalHealthQuestion, error) {
	questions := make([]models.MentalHealthQuestion, 0)
	if err := repo.database.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (repo *MentalHealthRepository) CountQuestions() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.MentalHealthQuestion{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveQuizResults writes the per-question responses, the aggregated
// assessment, and its wellness recommendation rows in one transaction so a
// rejected response (for example an unknown question_id) leaves nothing
// behind.
func (repo *MentalHealthRepository) SaveQuizResults(
	responses []models.MentalHealthResponse,
	assessment *models.MentalHealthAssessment,
	recommendations []models.MentalWellnessRecommendation,
) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for index := range responses {
			if err := tx.Create(&responses[index]).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(assessment).Error; err != nil {
			return err
		}

		for index := range recommendations {
			recommendations[index].AssessmentID = assessment.ID
			recommendations[index].UserID = assessment.UserID
			if err := tx.Create(&recommendations[index]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (repo *MentalHealthRepository) ListAssessmentsByUser(userID uint) ([]models.MentalHealthAssessment, error) {
	assessments := make([]models.MentalHealthAssessment, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (repo *MentalHealthRepository) LatestAssessmentByUser(userID uint) (models.MentalHealthAssessment, bool, error) {
	assessment := models.MentalHealthAssessment{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&assessment)
	if result.Error != nil {
		return models.MentalHealthAssessment{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MentalHealthAssessment{}, false, nil
	}
	return assessment, true, nil
}

func (repo *MentalHealthRepository) FindAssessmentByIDForUser(assessmentID uint, userID uint) (models.MentalHealthAssessment, bool, error) {
	assessment := models.MentalHealthAssessment{}
	result := repo.database.
		Where("id = ? AND user_id = ?", assessmentID, userID).
		Limit(1).
		Find(&assessment)
	if result.Error != nil {
		return models.MentalHealthAssessment{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MentalHealthAssessment{}, false, nil
	}
	return assessment, true, nil
}

func (repo *MentalHealthRepository) ListResponsesByUser(userID uint) ([]models.MentalHealthResponse, error) {
	responses := make([]models.MentalHealthResponse, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (repo *MentalHealthRepository) ListRecommendationsByAssessment(assessmentID uint) ([]models.MentalWellnessRecommendation, error) {
	recommendations := make([]models.MentalWellnessRecommendation, 0)
	if err := repo.database.
		Where("assessment_id = ?", assessmentID).
		Order("priority ASC, id ASC").
		Find(&recommendations).Error; err != nil {
		return nil, err
	}
	return recommendations, nil
}
