package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/backend/internal/dtos"
	"jobboard/backend/internal/services"
)

type JobHandler struct {
	Jobs JobStore
}

func NewJobHandler(jobs JobStore) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// Create is the POST /jobs endpoint (company_admin only, enforced by
// middleware on the route).
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	job, err := h.Jobs.Create(c.Request.Context(), req.Title, req.Description, req.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// List is the GET /jobs endpoint.
func (h *JobHandler) List(c *gin.Context) {
	var query dtos.ListJobsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	page, err := h.Jobs.List(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":        page.Jobs,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	})
}

// Get is the GET /jobs/:id endpoint.
func (h *JobHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, services.ErrJobNotFound)
		return
	}

	job, err := h.Jobs.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
