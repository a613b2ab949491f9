package services

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"jobboard/backend/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create validates the company reference before inserting so a bad
// company id never leaves a job row behind.
func (s *JobService) Create(ctx context.Context, title, description string, companyID uint) (*models.Job, error) {
	db := s.DB.WithContext(ctx)

	var company models.Company
	err := db.First(&company, companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:       title,
		Description: description,
		CompanyID:   companyID,
	}
	if err := db.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// JobPage is one page of the public listing.
type JobPage struct {
	Jobs        []models.Job
	TotalPages  int
	CurrentPage int
}

// List returns jobs with their company embedded, offset = (page-1)*limit.
// Non-positive page or limit values fall back to the defaults.
func (s *JobService) List(ctx context.Context, page, limit int) (*JobPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	db := s.DB.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Job{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var jobs []models.Job
	err := db.Preload("Company").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	return &JobPage{
		Jobs:        jobs,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

func (s *JobService) Get(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).Preload("Company").First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}
