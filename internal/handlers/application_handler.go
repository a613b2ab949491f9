package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/backend/internal/dtos"
	"jobboard/backend/internal/middleware"
)

type ApplicationHandler struct {
	Applications ApplicationStore
}

func NewApplicationHandler(applications ApplicationStore) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Create is the POST /applications endpoint. The applicant is always the
// authenticated caller; a user_id in the body is ignored.
func (h *ApplicationHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	var req dtos.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Job ID is required"})
		return
	}

	application, err := h.Applications.Create(c.Request.Context(), identity.UserID, req.JobID, req.CoverLetter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

// ListMine is the GET /applications/me endpoint.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	applications, err := h.Applications.ListForUser(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListCompany is the GET /applications/company endpoint. The scoping key is
// the caller's own company id from the token, never client input.
func (h *ApplicationHandler) ListCompany(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok || identity.CompanyID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	applications, err := h.Applications.ListForCompany(c.Request.Context(), *identity.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}
