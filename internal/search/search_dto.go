package search

// Row is the flattened row the ranked query produces: employee columns,
// resolved lookup names and one education/experience snippet. Joined columns
// are pointers because the left joins may produce nulls.
type Row struct {
	ID                 int64
	FullName           string
	Email              string
	PhoneNumber        string
	PassportNumber     string
	Nationality        string
	Gender             string
	City               string
	Country            string
	PositionName       *string
	DepartmentName     *string
	EmploymentTypeName *string
	Degree             *string
	University         *string
	GraduationYear     *int
	CompanyName        *string
	JobTitle           *string
	MatchRank          int
}

type SearchResult struct {
	ID                 int64  `json:"id"`
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phone_number"`
	PassportNumber     string `json:"passport_number"`
	Nationality        string `json:"nationality"`
	Gender             string `json:"gender"`
	City               string `json:"city"`
	Country            string `json:"country"`
	PositionName       string `json:"position_name"`
	DepartmentName     string `json:"department_name"`
	EmploymentTypeName string `json:"employment_type_name"`
	Degree             string `json:"degree"`
	University         string `json:"university"`
	GraduationYear     int    `json:"graduation_year"`
	CompanyName        string `json:"company_name"`
	JobTitle           string `json:"job_title"`
}
