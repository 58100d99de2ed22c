package advisor

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrUnavailable is returned when no advisor endpoint is configured. The
// platform stores whatever the advisor produces but never computes risk
// levels, confidence scores, or health scores itself.
var ErrUnavailable = errors.New("advisor not configured")

// Advisor is the external process that produces every opaque prediction and
// scoring field in the schema.
type Advisor interface {
	PredictDisease(ctx context.Context, request DiseaseRequest) (DiseaseResult, error)
	AssessMentalHealth(ctx context.Context, request AssessmentRequest) (AssessmentResult, error)
	AnalyzeSentiment(ctx context.Context, request SentimentRequest) (SentimentResult, error)
	RecommendFitness(ctx context.Context, request FitnessRequest) (FitnessResult, error)
	CombineHealth(ctx context.Context, request CombinedRequest) (CombinedResult, error)
}

type DiseaseRequest struct {
	Age                    int             `json:"age"`
	Gender                 string          `json:"gender"`
	Height                 float64         `json:"height"`
	Weight                 float64         `json:"weight"`
	BloodPressureSystolic  int             `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int             `json:"blood_pressure_diastolic"`
	CholesterolLevel       float64         `json:"cholesterol_level"`
	BloodSugarLevel        float64         `json:"blood_sugar_level"`
	Symptoms               []string        `json:"symptoms"`
	FamilyHistory          string          `json:"family_history"`
	LifestyleFactors       json.RawMessage `json:"lifestyle_factors,omitempty"`
}

type DiseaseResult struct {
	PredictedDiseases []string `json:"predicted_diseases"`
	RiskLevel         string   `json:"risk_level"`
	ConfidenceScore   float64  `json:"confidence_score"`
	Recommendations   []string `json:"recommendations"`
}

type QuizAnswer struct {
	QuestionID uint   `json:"question_id"`
	Category   string `json:"category"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"`
}

type AssessmentRequest struct {
	TotalScore int          `json:"total_score"`
	Answers    []QuizAnswer `json:"answers"`
}

type SentimentRequest struct {
	Text string `json:"text"`
}

// SentimentResult is returned as-is to the caller; nothing is persisted.
type SentimentResult struct {
	Sentiment string   `json:"sentiment"`
	Score     float64  `json:"score"`
	Keywords  []string `json:"keywords,omitempty"`
	Summary   string   `json:"summary,omitempty"`
}

type WellnessRecommendation struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Priority int    `json:"priority"`
}

type AssessmentResult struct {
	RiskLevel       string                   `json:"risk_level"`
	Recommendations []WellnessRecommendation `json:"recommendations"`
}

type FitnessRequest struct {
	Age                 int             `json:"age"`
	Gender              string          `json:"gender"`
	Height              float64         `json:"height"`
	Weight              float64         `json:"weight"`
	ActivityLevel       string          `json:"activity_level"`
	FitnessGoals        string          `json:"fitness_goals"`
	MedicalConditions   json.RawMessage `json:"medical_conditions,omitempty"`
	DietaryRestrictions json.RawMessage `json:"dietary_restrictions,omitempty"`
}

// DietPlanResult and ExercisePlanResult keep the advisor's nested structures
// as raw JSON so they round-trip into the plan tables untouched.
type DietPlanResult struct {
	PlanName       string          `json:"plan_name"`
	PlanType       string          `json:"plan_type"`
	DailyCalories  int             `json:"daily_calories"`
	Macronutrients json.RawMessage `json:"macronutrients"`
	MealPlan       json.RawMessage `json:"meal_plan"`
	DurationWeeks  int             `json:"duration_weeks"`
}

type ExercisePlanResult struct {
	RoutineName      string          `json:"routine_name"`
	RoutineType      string          `json:"routine_type"`
	Exercises        json.RawMessage `json:"exercises"`
	DurationMinutes  int             `json:"duration_minutes"`
	Intensity        string          `json:"intensity"`
	FrequencyPerWeek int             `json:"frequency_per_week"`
}

type FitnessResult struct {
	DietPlan     DietPlanResult     `json:"diet_plan"`
	ExercisePlan ExercisePlanResult `json:"exercise_plan"`
}

type CombinedRequest struct {
	PhysicalRiskLevel  string  `json:"physical_risk_level"`
	PhysicalConfidence float64 `json:"physical_confidence"`
	MentalTotalScore   int     `json:"mental_total_score"`
	MentalRiskLevel    string  `json:"mental_risk_level"`
}

type CombinedResult struct {
	PhysicalHealthScore float64 `json:"physical_health_score"`
	MentalHealthScore   float64 `json:"mental_health_score"`
	OverallHealthScore  float64 `json:"overall_health_score"`
	Recommendations     string  `json:"recommendations"`
}
