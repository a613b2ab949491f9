package services

import (
	"context"

	"gorm.io/gorm"

	"jobboard/backend/internal/models"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

func (s *CompanyService) Create(ctx context.Context, name, industry, location string) (*models.Company, error) {
	company := models.Company{
		Name:     name,
		Industry: industry,
		Location: location,
	}
	if err := s.DB.WithContext(ctx).Create(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}
