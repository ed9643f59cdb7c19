package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nextprime-backend/models"
	"nextprime-backend/utils"
)

// ErrInvalidCredentials covers unknown admin and wrong password alike; the
// login response never distinguishes the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login verifies the credentials and issues a bearer token. The shorthand
// "admin" resolves to the primary site admin account.
func (s *AuthService) Login(email, password string) (string, *models.Admin, error) {
	lookup := strings.ToLower(strings.TrimSpace(email))
	if lookup == "admin" {
		lookup = "admin@nextprimerealestate.com"
	}

	var admin models.Admin
	if err := s.DB.Where("email = ?", lookup).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(admin.ID, admin.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// FindAdmin loads the admin a validated token belongs to.
func (s *AuthService) FindAdmin(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
