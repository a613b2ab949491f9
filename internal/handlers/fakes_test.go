package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"jobboard/backend/internal/models"
	"jobboard/backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthStore struct {
	registerFn func(ctx context.Context, input services.RegisterInput) (*models.User, error)
	loginFn    func(ctx context.Context, email, password string) (*models.User, error)
}

func (f *fakeAuthStore) Register(ctx context.Context, input services.RegisterInput) (*models.User, error) {
	return f.registerFn(ctx, input)
}

func (f *fakeAuthStore) Login(ctx context.Context, email, password string) (*models.User, error) {
	return f.loginFn(ctx, email, password)
}

type fakeCompanyStore struct {
	createFn func(ctx context.Context, name, industry, location string) (*models.Company, error)
}

func (f *fakeCompanyStore) Create(ctx context.Context, name, industry, location string) (*models.Company, error) {
	return f.createFn(ctx, name, industry, location)
}

type fakeJobStore struct {
	createFn func(ctx context.Context, title, description string, companyID uint) (*models.Job, error)
	listFn   func(ctx context.Context, page, limit int) (*services.JobPage, error)
	getFn    func(ctx context.Context, id uint) (*models.Job, error)

	createCalls int
}

func (f *fakeJobStore) Create(ctx context.Context, title, description string, companyID uint) (*models.Job, error) {
	f.createCalls++
	return f.createFn(ctx, title, description, companyID)
}

func (f *fakeJobStore) List(ctx context.Context, page, limit int) (*services.JobPage, error) {
	return f.listFn(ctx, page, limit)
}

func (f *fakeJobStore) Get(ctx context.Context, id uint) (*models.Job, error) {
	return f.getFn(ctx, id)
}

type fakeApplicationStore struct {
	createFn         func(ctx context.Context, userID, jobID uint, coverLetter string) (*models.Application, error)
	listForUserFn    func(ctx context.Context, userID uint) ([]models.Application, error)
	listForCompanyFn func(ctx context.Context, companyID uint) ([]models.Application, error)
}

func (f *fakeApplicationStore) Create(ctx context.Context, userID, jobID uint, coverLetter string) (*models.Application, error) {
	return f.createFn(ctx, userID, jobID, coverLetter)
}

func (f *fakeApplicationStore) ListForUser(ctx context.Context, userID uint) ([]models.Application, error) {
	return f.listForUserFn(ctx, userID)
}

func (f *fakeApplicationStore) ListForCompany(ctx context.Context, companyID uint) ([]models.Application, error) {
	return f.listForCompanyFn(ctx, companyID)
}
