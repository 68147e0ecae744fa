package employee

// EmployeePayload carries the whole aggregate in one flat body: employee
// fields plus one education, one work-experience and one emergency-contact
// entry, mirroring the intake form that feeds this API.
type EmployeePayload struct {
	FullName         string `json:"full_name" binding:"required"`
	DOB              string `json:"dob" binding:"required"`
	Gender           string `json:"gender" binding:"required"`
	Nationality      string `json:"nationality" binding:"required"`
	PassportNumber   string `json:"passport_number" binding:"required"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Country          string `json:"country" binding:"required"`
	City             string `json:"city" binding:"required"`
	PostalCode       string `json:"postal_code"`
	StreetAddress    string `json:"street_address"`
	PositionID       *int64 `json:"position_id"`
	DepartmentID     *int64 `json:"department_id"`
	EmploymentDate   string `json:"employment_date" binding:"required"`
	EmploymentTypeID *int64 `json:"employment_type_id"`

	Degree         string `json:"degree"`
	University     string `json:"university"`
	GraduationYear int    `json:"graduation_year"`

	PrevCompany     string `json:"prev_company"`
	JobTitle        string `json:"job_title"`
	ExperienceYears int    `json:"experience_years"`

	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`
	EmergencyContactNumber       string `json:"emergency_contact_number"`
}

type CreateEmployeeRequest = EmployeePayload

type UpdateEmployeeRequest = EmployeePayload

type EducationResponse struct {
	Degree         string `json:"degree"`
	University     string `json:"university"`
	GraduationYear int    `json:"graduation_year"`
}

type ExperienceResponse struct {
	CompanyName       string `json:"company_name"`
	JobTitle          string `json:"job_title"`
	YearsOfExperience int    `json:"years_of_experience"`
}

type EmergencyContactResponse struct {
	ContactName  string `json:"contact_name"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phone_number"`
}

type EmployeeDetailResponse struct {
	ID               int64  `json:"id"`
	FullName         string `json:"full_name"`
	DOB              string `json:"dob"`
	Gender           string `json:"gender"`
	Nationality      string `json:"nationality"`
	PassportNumber   string `json:"passport_number"`
	PhoneNumber      string `json:"phone_number"`
	Email            string `json:"email"`
	Country          string `json:"country"`
	City             string `json:"city"`
	PostalCode       string `json:"postal_code"`
	StreetAddress    string `json:"street_address"`
	PositionID       *int64 `json:"position_id"`
	DepartmentID     *int64 `json:"department_id"`
	EmploymentDate   string `json:"employment_date"`
	EmploymentTypeID *int64 `json:"employment_type_id"`

	PositionName       string `json:"position_name"`
	DepartmentName     string `json:"department_name"`
	EmploymentTypeName string `json:"employment_type_name"`

	Education        *EducationResponse        `json:"education"`
	Experience       *ExperienceResponse       `json:"experience"`
	EmergencyContact *EmergencyContactResponse `json:"emergency_contact"`
}
