package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/backend/internal/models"
	"jobboard/backend/internal/services"
)

// The handler layer talks to the domain through these interfaces so tests
// can swap in fakes. The gorm-backed services in internal/services are the
// production implementations.

type AuthStore interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type CompanyStore interface {
	Create(ctx context.Context, name, industry, location string) (*models.Company, error)
}

type JobStore interface {
	Create(ctx context.Context, title, description string, companyID uint) (*models.Job, error)
	List(ctx context.Context, page, limit int) (*services.JobPage, error)
	Get(ctx context.Context, id uint) (*models.Job, error)
}

type ApplicationStore interface {
	Create(ctx context.Context, userID, jobID uint, coverLetter string) (*models.Application, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Application, error)
	ListForCompany(ctx context.Context, companyID uint) ([]models.Application, error)
}

// respondError maps a domain error onto the wire taxonomy. Anything outside
// the known failures is a 500 with a generic body; the real cause only goes
// to the server log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrCompanyRequired),
		errors.Is(err, services.ErrInvalidCompany),
		errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrCompanyNotFound),
		errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
