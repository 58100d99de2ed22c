package db

import (
	"github.com/wellspring-health/wellspring/internal/models"
	"gorm.io/gorm"
)

type FitnessRepository struct {
	database *gorm.DB
}

func NewFitnessRepository(database *gorm.DB) *FitnessRepository {
	return &FitnessRepository{database: database}
}

func (repo *FitnessRepository) CreateProfile(profile *models.FitnessProfile) error {
	return repo.database.Create(profile).Error
}

func (repo *FitnessRepository) SaveProfile(profile *models.FitnessProfile) error {
	return repo.database.Save(profile).Error
}

func (repo *FitnessRepository) FindProfileByIDForUser(profileID uint, userID uint) (models.FitnessProfile, bool, error) {
	profile := models.FitnessProfile{}
	result := repo.database.
		Where("id = ? AND user_id = ?", profileID, userID).
		Limit(1).
		Find(&profile)
	if result.Error != nil {
		return models.FitnessProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FitnessProfile{}, false, nil
	}
	return profile, true, nil
}

func (repo *FitnessRepository) ListProfilesByUser(userID uint) ([]models.FitnessProfile, error) {
	profiles := make([]models.FitnessProfile, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// SavePlans persists the advisor's diet plan and exercise routine together so
// a failed write never leaves half a recommendation behind.
func (repo *FitnessRepository) SavePlans(dietPlan *models.DietPlan, routine *models.ExerciseRoutine) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dietPlan).Error; err != nil {
			return err
		}
		return tx.Create(routine).Error
	})
}

func (repo *FitnessRepository) ListDietPlansByUser(userID uint) ([]models.DietPlan, error) {
	plans := make([]models.DietPlan, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *FitnessRepository) ListRoutinesByUser(userID uint) ([]models.ExerciseRoutine, error) {
	routines := make([]models.ExerciseRoutine, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&routines).Error; err != nil {
		return nil, err
	}
	return routines, nil
}
