package db

import "gorm.io/gorm"

type Repositories struct {
	Users           *UserRepository
	Sessions        *SessionRepository
	PhysicalHealth  *PhysicalHealthRepository
	MentalHealth    *MentalHealthRepository
	Fitness         *FitnessRepository
	Recommendations *RecommendationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(database),
		Sessions:        NewSessionRepository(database),
		PhysicalHealth:  NewPhysicalHealthRepository(database),
		MentalHealth:    NewMentalHealthRepository(database),
		Fitness:         NewFitnessRepository(database),
		Recommendations: NewRecommendationRepository(database),
	}
}
