package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/db"
	"github.com/wellspring-health/wellspring/internal/services"
	"gorm.io/gorm"
)

const (
	sessionCookieName = "wellspring_session"
	contextUserKey    = "current_user"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool

	repositories *db.Repositories

	authService           *services.AuthService
	sessionService        *services.SessionService
	physicalHealthService *services.PhysicalHealthService
	mentalHealthService   *services.MentalHealthService
	fitnessService        *services.FitnessService
	recommendationService *services.RecommendationService
	exportService         *services.ExportService
}

type Config struct {
	SecretKey    string
	CookieSecure bool
	SessionTTL   time.Duration
	Advisor      advisor.Advisor
}

func NewHandler(database *gorm.DB, config Config) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(config.SecretKey),
		cookieSecure: config.CookieSecure,
	}
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.sessionService = services.NewSessionService(handler.repositories.Sessions, config.SessionTTL)
	handler.physicalHealthService = services.NewPhysicalHealthService(handler.repositories.PhysicalHealth, config.Advisor)
	handler.mentalHealthService = services.NewMentalHealthService(handler.repositories.MentalHealth, config.Advisor)
	handler.fitnessService = services.NewFitnessService(handler.repositories.Fitness, config.Advisor)
	handler.recommendationService = services.NewRecommendationService(
		handler.repositories.Recommendations,
		handler.repositories.PhysicalHealth,
		handler.repositories.MentalHealth,
		config.Advisor,
	)
	handler.exportService = services.NewExportService(
		handler.repositories.Users,
		handler.repositories.PhysicalHealth,
		handler.repositories.MentalHealth,
		handler.repositories.Fitness,
		handler.repositories.Recommendations,
	)
	return handler
}

const passwordResetTokenTTL = 30 * time.Minute

type passwordResetClaims struct {
	UserID      uint   `json:"uid"`
	Purpose     string `json:"purpose"`
	Fingerprint string `json:"fp"`
	jwt.RegisteredClaims
}
