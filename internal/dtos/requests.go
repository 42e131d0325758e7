package dtos

// Multipart registration form for job seekers and employers. Avatar and
// resume arrive as file parts, not fields.
type RegisterUserRequest struct {
	Name          string `form:"name" binding:"required"`
	Email         string `form:"email" binding:"required"`
	Password      string `form:"password" binding:"required"`
	Role          string `form:"role"`
	Mobile        string `form:"mobile"`
	WorkStatus    string `form:"workStatus"`
	Notifications string `form:"notifications"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Company registration creates the employer account and the company profile
// in one call. The logo arrives as a file part.
type RegisterCompanyRequest struct {
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required"`
	Password    string `form:"password" binding:"required"`
	Description string `form:"description"`
	Location    string `form:"location"`
	Website     string `form:"website"`
	Phone       string `form:"phone"`
}

// Job create/update form. List-valued fields are declared as raw strings;
// the handler runs them through ParseStringList so the legacy CSV and
// JSON-string encodings never reach the store layer.
type JobRequest struct {
	JobTitle                string `form:"jobTitle" binding:"required"`
	JobDescription          string `form:"jobDescription"`
	Location                string `form:"location"`
	Department              string `form:"department"`
	Address                 string `form:"address"`
	CompanyOverview         string `form:"companyOverview"`
	SalaryRange             string `form:"salaryRange"`
	CompanyInfo             string `form:"companyInfo"`
	ApplicationInstructions string `form:"applicationInstructions"`
	ApplicationDeadline     string `form:"applicationDeadline"`
	ContactInformation      string `form:"contactInformation"`
}

type CreateApplicationRequest struct {
	Job         uint   `form:"job"`
	CoverLetter string `form:"coverLetter"`
	ResumeURL   string `form:"resumeUrl"`
}

type CreateReviewRequest struct {
	Company uint    `json:"company" binding:"required"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}
