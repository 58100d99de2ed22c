package services

import (
	"strconv"

	"github.com/wellspring-health/wellspring/internal/models"
)

var ExportCSVHeaders = []string{
	"Submitted",
	"Age",
	"Gender",
	"Height",
	"Weight",
	"BP systolic",
	"BP diastolic",
	"Cholesterol",
	"Blood sugar",
	"Symptoms",
	"Predicted diseases",
	"Risk level",
	"Confidence",
}

const exportTimeLayout = "2006-01-02 15:04:05"

type ExportBundle struct {
	Profile         exportProfile                   `json:"profile"`
	HealthInputs    []models.PhysicalHealthInput    `json:"physical_health_inputs"`
	Predictions     []models.DiseasePrediction      `json:"disease_predictions"`
	Assessments     []models.MentalHealthAssessment `json:"mental_health_assessments"`
	Responses       []models.MentalHealthResponse   `json:"mental_health_responses"`
	FitnessProfiles []models.FitnessProfile         `json:"fitness_profiles"`
	DietPlans       []models.DietPlan               `json:"diet_plans"`
	Routines        []models.ExerciseRoutine        `json:"exercise_routines"`
	Combined        []models.CombinedRecommendation `json:"combined_recommendations"`
}

type exportProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

type ExportUserReader interface {
	FindByID(userID uint) (models.User, error)
}

type ExportMentalHealthReader interface {
	ListAssessmentsByUser(userID uint) ([]models.MentalHealthAssessment, error)
	ListResponsesByUser(userID uint) ([]models.MentalHealthResponse, error)
}

type ExportService struct {
	users          ExportUserReader
	physicalHealth PhysicalHealthRepository
	mentalHealth   ExportMentalHealthReader
	fitness        FitnessRepository
	combined       CombinedRecommendationRepository
}

func NewExportService(
	users ExportUserReader,
	physicalHealth PhysicalHealthRepository,
	mentalHealth ExportMentalHealthReader,
	fitness FitnessRepository,
	combined CombinedRecommendationRepository,
) *ExportService {
	return &ExportService{
		users:          users,
		physicalHealth: physicalHealth,
		mentalHealth:   mentalHealth,
		fitness:        fitness,
		combined:       combined,
	}
}

// Build collects every record the user owns into one export payload.
func (service *ExportService) Build(userID uint) (ExportBundle, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ExportBundle{}, err
	}

	bundle := ExportBundle{
		Profile: exportProfile{
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
		},
	}

	if bundle.HealthInputs, err = service.physicalHealth.ListInputsByUser(userID); err != nil {
		return ExportBundle{}, err
	}
	if bundle.Predictions, err = service.physicalHealth.ListPredictionsByUser(userID); err != nil {
		return ExportBundle{}, err
	}
	if bundle.Assessments, err = service.mentalHealth.ListAssessmentsByUser(userID); err != nil {
		return ExportBundle{}, err
	}
	if bundle.Responses, err = service.mentalHealth.ListResponsesByUser(userID); err != nil {
		return ExportBundle{}, err
	}
	if bundle.FitnessProfiles, err = service.fitness.ListProfilesByUser(userID); err != nil {
		return ExportBundle{}, err
	}
	if bundle.DietPlans, err = service.fitness.ListDietPlansByUser(userID); err != nil {
		return ExportBundle{}, err
	}
	if bundle.Routines, err = service.fitness.ListRoutinesByUser(userID); err != nil {
		return ExportBundle{}, err
	}
	if bundle.Combined, err = service.combined.ListCombinedByUser(userID); err != nil {
		return ExportBundle{}, err
	}

	return bundle, nil
}

// BuildCSVRows flattens health inputs and their predictions into CSV rows
// matching ExportCSVHeaders.
func (service *ExportService) BuildCSVRows(userID uint) ([][]string, error) {
	inputs, err := service.physicalHealth.ListInputsByUser(userID)
	if err != nil {
		return nil, err
	}
	predictions, err := service.physicalHealth.ListPredictionsByUser(userID)
	if err != nil {
		return nil, err
	}

	predictionsByInput := make(map[uint]models.DiseasePrediction, len(predictions))
	for _, prediction := range predictions {
		predictionsByInput[prediction.HealthInputID] = prediction
	}

	rows := make([][]string, 0, len(inputs))
	for _, input := range inputs {
		row := []string{
			input.CreatedAt.Format(exportTimeLayout),
			strconv.Itoa(input.Age),
			input.Gender,
			formatFloat(input.Height),
			formatFloat(input.Weight),
			strconv.Itoa(input.BloodPressureSystolic),
			strconv.Itoa(input.BloodPressureDiastolic),
			formatFloat(input.CholesterolLevel),
			formatFloat(input.BloodSugarLevel),
			input.Symptoms,
			"", "", "",
		}
		if prediction, ok := predictionsByInput[input.ID]; ok {
			row[10] = prediction.PredictedDiseases
			row[11] = prediction.RiskLevel
			row[12] = formatFloat(prediction.ConfidenceScore)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
