package models

import "time"

// CombinedRecommendation is an append-only rollup of a user's physical and
// mental health standing at a point in time. The scores are opaque values
// produced by the external advisor.
type CombinedRecommendation struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;index" json:"user_id"`
	PhysicalHealthScore float64   `json:"physical_health_score"`
	MentalHealthScore   float64   `json:"mental_health_score"`
	OverallHealthScore  float64   `json:"overall_health_score"`
	Recommendations     string    `json:"recommendations"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
}
