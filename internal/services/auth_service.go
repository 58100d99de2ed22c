package services

import (
	"errors"
	"strings"
	"time"

	"github.com/wellspring-health/wellspring/internal/models"
	"github.com/wellspring-health/wellspring/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRecoveryCodeNotFound = errors.New("recovery code not found")
)

const recoveryCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const recoveryCodeLength = 12

type AuthUserRepository interface {
	ExistsByUsernameOrEmail(username string, email string) (bool, error)
	FindByUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
	UpdateRecoveryCodeHash(userID uint, recoveryHash string) error
	ListWithRecoveryCodeHash() ([]models.User, error)
	DeleteByID(userID uint) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates the account and returns the one-time recovery code. Only
// the bcrypt hash of the code is stored.
func (service *AuthService) Register(username string, email string, password string, fullName string) (models.User, string, error) {
	exists, err := service.users.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return models.User{}, "", err
	}
	if exists {
		return models.User{}, "", ErrUserExists
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, "", err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	recoveryCode, recoveryHash, err := generateRecoveryCode()
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Username:         strings.TrimSpace(username),
		Email:            strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:     string(passwordHash),
		FullName:         strings.TrimSpace(fullName),
		RecoveryCodeHash: recoveryHash,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		// A concurrent insert can still trip the unique indexes.
		if isUniqueConstraintError(err) {
			return models.User{}, "", ErrUserExists
		}
		return models.User{}, "", err
	}

	return user, recoveryCode, nil
}

func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	return service.setPassword(userID, newPassword)
}

func (service *AuthService) ResetPassword(userID uint, newPassword string) error {
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	return service.setPassword(userID, newPassword)
}

func (service *AuthService) setPassword(userID uint, password string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, string(passwordHash))
}

func (service *AuthService) FindUserByRecoveryCode(code string) (*models.User, error) {
	users, err := service.users.ListWithRecoveryCodeHash()
	if err != nil {
		return nil, err
	}

	for index := range users {
		hash := strings.TrimSpace(users[index].RecoveryCodeHash)
		if hash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil {
			return &users[index], nil
		}
	}
	return nil, ErrRecoveryCodeNotFound
}

func (service *AuthService) RegenerateRecoveryCode(userID uint) (string, error) {
	recoveryCode, recoveryHash, err := generateRecoveryCode()
	if err != nil {
		return "", err
	}
	if err := service.users.UpdateRecoveryCodeHash(userID, recoveryHash); err != nil {
		return "", err
	}
	return recoveryCode, nil
}

func (service *AuthService) DeleteAccount(userID uint, password string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return service.users.DeleteByID(userID)
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func generateRecoveryCode() (string, string, error) {
	code, err := security.RandomString(recoveryCodeLength, recoveryCodeAlphabet)
	if err != nil {
		return "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return code, string(hash), nil
}
