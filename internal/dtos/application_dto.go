package dtos

type CreateApplicationRequest struct {
	JobID uint `json:"job_id" binding:"required"`

	// Optional fields
	CoverLetter string `json:"cover_letter"`
}
