package db

import (
	"time"

	"github.com/wellspring-health/wellspring/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Create(session *models.UserSession) error {
	return repo.database.Create(session).Error
}

func (repo *SessionRepository) FindByToken(token string) (models.UserSession, bool, error) {
	session := models.UserSession{}
	result := repo.database.Where("session_token = ?", token).Limit(1).Find(&session)
	if result.Error != nil {
		return models.UserSession{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserSession{}, false, nil
	}
	return session, true, nil
}

func (repo *SessionRepository) DeleteByToken(token string) error {
	return repo.database.Where("session_token = ?", token).Delete(&models.UserSession{}).Error
}

func (repo *SessionRepository) DeleteAllForUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.UserSession{}).Error
}

func (repo *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	result := repo.database.Where("expires_at <= ?", now).Delete(&models.UserSession{})
	return result.RowsAffected, result.Error
}
