package services

import "errors"

// Failure modes the handlers translate into status codes. The error text is
// the client-facing message, so wording here is part of the API.
var (
	ErrInvalidRole        = errors.New("Invalid role. Must be one of: user, company_admin")
	ErrCompanyRequired    = errors.New("companyId is required for company_admin role")
	ErrInvalidCompany     = errors.New("Invalid companyId")
	ErrEmailTaken         = errors.New("Email already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrCompanyNotFound    = errors.New("Company not found")
	ErrJobNotFound        = errors.New("Job not found")
)
