package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role tags carried in the signed credential. Job seekers are tagged "user"
// for compatibility with the frontend's stored sessions.
const (
	RoleJobSeeker = "user"
	RoleEmployer  = "employer"
)

// Work status of a job seeker.
const (
	WorkStatusExperienced = "experienced"
	WorkStatusFresher     = "fresher"
)

// Application lifecycle states. Only "pending" is ever written by the API;
// accept/reject transitions have no endpoint yet.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Job locations and their display work modes.
const (
	LocationRemote   = "remote"
	LocationInOffice = "in-office"
	LocationHybrid   = "hybrid"

	WorkModeRemote = "Remote"
	WorkModeOffice = "Office"
	WorkModeHybrid = "Hybrid"
)

// Departments a job can be filed under.
var Departments = []string{"Frontend", "Backend", "Fullstack", "QA", "Design", "General"}

var workModeByLocation = map[string]string{
	LocationRemote:   WorkModeRemote,
	LocationInOffice: WorkModeOffice,
	LocationHybrid:   WorkModeHybrid,
}

// NormalizeLocation maps a raw location string to the canonical
// (location, workMode) pair, case-insensitively. Anything unrecognized
// falls back to remote.
func NormalizeLocation(raw string) (string, string) {
	folded := strings.ToLower(raw)
	if mode, ok := workModeByLocation[folded]; ok {
		return folded, mode
	}
	return LocationRemote, WorkModeRemote
}

// NormalizeDepartment keeps a submitted department only when it is one of
// the fixed choices; anything else lands in General.
func NormalizeDepartment(raw string) string {
	for _, d := range Departments {
		if raw == d {
			return d
		}
	}
	return "General"
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// bcrypt hash, never serialized
	Password      string `gorm:"not null" json:"-"`
	Role          string `gorm:"type:varchar(20);default:'user'" json:"role"`
	Mobile        string `json:"mobile,omitempty"`
	WorkStatus    string `gorm:"type:varchar(20);default:'fresher'" json:"workStatus"`
	Notifications bool   `gorm:"default:true" json:"notifications"`
	Avatar        string `json:"avatar,omitempty"`
	Resume        string `json:"resume,omitempty"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location"`
	Website     string `json:"website"`
	Phone       string `json:"phone"`
	Logo        string `json:"logo,omitempty"`

	// One employer User owns at most one Company. Enforced in the service
	// layer, not by a uniqueness constraint.
	OwnerID uint  `gorm:"not null;index" json:"owner_id"`
	Owner   *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

// Qualifications splits a job's requirements into must-have and nice-to-have.
type Qualifications struct {
	Essential datatypes.JSONSlice[string] `json:"essential"`
	Preferred datatypes.JSONSlice[string] `json:"preferred"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Owning company, stamped from the auth context, never from client input
	CompanyID uint     `gorm:"not null;index" json:"postedBy"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	JobTitle         string                      `gorm:"not null" json:"jobTitle"`
	JobDescription   string                      `gorm:"type:text" json:"jobDescription"`
	Responsibilities datatypes.JSONSlice[string] `json:"responsibilities"`
	Qualifications   Qualifications              `gorm:"embedded;embeddedPrefix:qual_" json:"qualifications"`

	Location string `gorm:"type:varchar(20);default:'remote'" json:"location"`
	WorkMode string `gorm:"type:varchar(20);default:'Remote'" json:"workMode"`

	Department string `gorm:"type:varchar(20);default:'General'" json:"department"`
	Address    string `json:"address"`

	CompanyOverview string                      `gorm:"type:text" json:"companyOverview"`
	SalaryRange     string                      `gorm:"not null" json:"salaryRange"`
	Benefits        datatypes.JSONSlice[string] `json:"benefits"`
	CompanyInfo     string                      `json:"companyInfo"`
	CompanyLogo     string                      `json:"companyLogo"`

	ApplicationInstructions string                      `gorm:"type:text" json:"applicationInstructions"`
	ApplicationDeadline     *time.Time                  `json:"applicationDeadline,omitempty"`
	RequiredDocuments       datatypes.JSONSlice[string] `json:"requiredDocuments"`

	ContactInformation datatypes.JSONMap `json:"contactInformation"`

	PostedOn time.Time `gorm:"index" json:"postedOn"`
}

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ApplicantID uint  `gorm:"not null;index" json:"applicant_id"`
	Applicant   *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`

	JobID uint `gorm:"not null;index" json:"job_id"`
	Job   *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`

	// Always set: either the uploaded file URL or the applicant's profile resume
	Resume      string `gorm:"not null" json:"resume"`
	CoverLetter string `gorm:"type:text" json:"coverLetter"`
	Status      string `gorm:"type:varchar(20);default:'pending'" json:"status"`
}

type Review struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CompanyID uint `gorm:"not null;index" json:"company_id"`

	Rating  float64 `json:"rating"`
	Comment string  `gorm:"type:text" json:"comment"`
}
