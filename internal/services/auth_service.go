package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard/backend/internal/models"
)

const bcryptCost = 10

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// RegisterInput is the validated registration payload. Field presence is
// enforced at the binding layer; the cross-field rules live here.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	CompanyID *uint
}

// Register creates an account. The password is hashed right here with bcrypt
// rather than in a model hook, so the one-way step is visible at the call
// site. Regular users never keep a company reference, even if one was sent.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if role == models.RoleCompanyAdmin && input.CompanyID == nil {
		return nil, ErrCompanyRequired
	}

	db := s.DB.WithContext(ctx)

	if input.CompanyID != nil {
		var company models.Company
		err := db.First(&company, *input.CompanyID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCompany
		}
		if err != nil {
			return nil, err
		}
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Role:     role,
	}
	if role == models.RoleCompanyAdmin {
		user.CompanyID = input.CompanyID
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials. Unknown email and wrong password collapse to
// the same error so callers cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
