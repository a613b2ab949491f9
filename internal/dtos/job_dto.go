package dtos

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	CompanyID   uint   `json:"company_id" binding:"required"`
}

type ListJobsQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}
