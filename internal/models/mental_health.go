package models

import (
	"encoding/json"
	"time"
)

// MentalHealthQuestion is static reference data seeded at initialization and
// never modified by normal operation. Options holds a JSON array of the five
// selectable answer labels.
type MentalHealthQuestion struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	QuestionText string `gorm:"not null" json:"question_text"`
	Category     string `gorm:"not null" json:"category"`
	Options      string `gorm:"not null" json:"options"`
}

func (question *MentalHealthQuestion) OptionLabels() ([]string, error) {
	labels := make([]string, 0, 5)
	if err := json.Unmarshal([]byte(question.Options), &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

type MentalHealthResponse struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	QuestionID uint      `gorm:"not null" json:"question_id"`
	Answer     string    `json:"answer"`
	Score      int       `gorm:"not null;default:0" json:"score"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

type MentalHealthAssessment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	TotalScore      int       `gorm:"not null;default:0" json:"total_score"`
	AssessmentType  string    `json:"assessment_type"`
	RiskLevel       string    `json:"risk_level"`
	Recommendations string    `json:"recommendations"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}

type MentalWellnessRecommendation struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"user_id"`
	AssessmentID       uint      `gorm:"not null" json:"assessment_id"`
	Category           string    `json:"category"`
	RecommendationText string    `json:"recommendation_text"`
	Priority           int       `gorm:"not null;default:0" json:"priority"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
}
