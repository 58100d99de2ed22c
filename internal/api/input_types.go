package api

import "encoding/json"

type registerInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type forgotPasswordInput struct {
	RecoveryCode string `json:"recovery_code"`
}

type resetPasswordInput struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type deleteAccountInput struct {
	Password string `json:"password"`
}

type predictDiseaseInput struct {
	Age                    int             `json:"age"`
	Gender                 string          `json:"gender"`
	Height                 float64         `json:"height"`
	Weight                 float64         `json:"weight"`
	BloodPressureSystolic  int             `json:"bp_systolic"`
	BloodPressureDiastolic int             `json:"bp_diastolic"`
	CholesterolLevel       float64         `json:"cholesterol"`
	BloodSugarLevel        float64         `json:"blood_sugar"`
	Symptoms               []string        `json:"symptoms"`
	FamilyHistory          string          `json:"family_history"`
	LifestyleFactors       json.RawMessage `json:"lifestyle_factors"`
}

type quizResponseInput struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"`
}

type submitQuizInput struct {
	Responses []quizResponseInput `json:"responses"`
}

type analyzeTextInput struct {
	Text string `json:"text"`
}

type fitnessProfileInput struct {
	Age                 int             `json:"age"`
	Gender              string          `json:"gender"`
	Height              float64         `json:"height"`
	Weight              float64         `json:"weight"`
	ActivityLevel       string          `json:"activity_level"`
	FitnessGoals        string          `json:"fitness_goals"`
	MedicalConditions   json.RawMessage `json:"medical_conditions"`
	DietaryRestrictions json.RawMessage `json:"dietary_restrictions"`
}

type fitnessRecommendationsInput struct {
	ProfileID uint `json:"profile_id"`
}
