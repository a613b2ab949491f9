package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard/backend/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Create files an application for the given user. The applicant id comes
// from the authenticated identity upstream; nothing in the request body can
// override it.
func (s *ApplicationService) Create(ctx context.Context, userID, jobID uint, coverLetter string) (*models.Application, error) {
	db := s.DB.WithContext(ctx)

	var job models.Job
	err := db.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		UserID:      userID,
		JobID:       jobID,
		CoverLetter: coverLetter,
	}
	if err := db.Create(application).Error; err != nil {
		return nil, err
	}
	return application, nil
}

// ListForUser returns the caller's applications with each job and that
// job's company embedded.
func (s *ApplicationService) ListForUser(ctx context.Context, userID uint) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Job.Company").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// ListForCompany returns every application for jobs belonging to one
// company. The applicant is projected down to id/name/email.
func (s *ApplicationService) ListForCompany(ctx context.Context, companyID uint) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.WithContext(ctx).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID).
		Preload("Job.Company").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}
