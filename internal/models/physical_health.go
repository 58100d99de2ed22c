package models

import "time"

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// PhysicalHealthInput is one biometric/lifestyle snapshot submitted by a user.
// symptoms and lifestyle_factors hold JSON-encoded text, matching the storage
// contract consumers of this schema expect.
type PhysicalHealthInput struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	UserID                 uint      `gorm:"not null;index" json:"user_id"`
	Age                    int       `json:"age"`
	Gender                 string    `json:"gender"`
	Height                 float64   `json:"height"`
	Weight                 float64   `json:"weight"`
	BloodPressureSystolic  int       `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int       `json:"blood_pressure_diastolic"`
	CholesterolLevel       float64   `json:"cholesterol_level"`
	BloodSugarLevel        float64   `json:"blood_sugar_level"`
	Symptoms               string    `json:"symptoms"`
	FamilyHistory          string    `json:"family_history"`
	LifestyleFactors       string    `json:"lifestyle_factors"`
	CreatedAt              time.Time `gorm:"not null" json:"created_at"`
}

// DiseasePrediction is the opaque output the external advisor produced for a
// single health input submission. Nothing in this service interprets the
// predicted_diseases, risk_level, or confidence_score values.
type DiseasePrediction struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	HealthInputID     uint      `gorm:"not null" json:"health_input_id"`
	PredictedDiseases string    `json:"predicted_diseases"`
	RiskLevel         string    `json:"risk_level"`
	ConfidenceScore   float64   `json:"confidence_score"`
	Recommendations   string    `json:"recommendations"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
}
