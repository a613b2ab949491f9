package models

import (
	"time"
)

// Roles a user account can hold.
const (
	RoleUser         = "user"
	RoleCompanyAdmin = "company_admin"
)

// ValidRole reports whether role is one of the accepted account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleCompanyAdmin
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Bcrypt hash, never the raw password. Hashing happens in the auth
	// service, not in a gorm hook, so the contract is visible at the call site.
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'user'" json:"role"`

	// Set only for company_admin accounts; regular users keep it null.
	CompanyID *uint    `json:"company_id"`
	Company   *Company `json:"company,omitempty"`

	Applications []Application `json:"applications,omitempty"`
}

// PublicUser is the projection returned to clients: everything except the
// password hash and association noise.
type PublicUser struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID *uint  `json:"company_id"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CompanyID: u.CompanyID,
	}
}

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Industry string `gorm:"not null" json:"industry"`
	Location string `gorm:"not null" json:"location"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	CompanyID uint `gorm:"not null" json:"company_id"`
	// Association: GORM needs Preload() to fill this.
	Company *Company `json:"company,omitempty"`

	Applications []Application `json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CoverLetter string `gorm:"type:text" json:"cover_letter"`

	UserID uint  `gorm:"not null" json:"user_id"`
	User   *User `json:"user,omitempty"`

	JobID uint `gorm:"not null" json:"job_id"`
	Job   *Job `json:"job,omitempty"`
}
