package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/backend/internal/dtos"
)

type CompanyHandler struct {
	Companies CompanyStore
}

func NewCompanyHandler(companies CompanyStore) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// Create is the POST /companies endpoint.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, industry, and location are required"})
		return
	}

	company, err := h.Companies.Create(c.Request.Context(), req.Name, req.Industry, req.Location)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}
