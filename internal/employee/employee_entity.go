package employee

import (
	"time"
)

// Employee is the aggregate root. Education, work experience and emergency
// contact rows never outlive it and are written in the same transaction.
type Employee struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	FullName         string    `gorm:"type:varchar(255);not null"`
	DOB              time.Time `gorm:"column:dob"`
	Gender           string    `gorm:"type:varchar(20)"`
	Nationality      string    `gorm:"type:varchar(100)"`
	PassportNumber   string    `gorm:"type:varchar(50);uniqueIndex:uq_employee_passport"`
	PhoneNumber      string    `gorm:"type:varchar(50)"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex:uq_employee_email"`
	Country          string    `gorm:"type:varchar(100)"`
	City             string    `gorm:"type:varchar(100)"`
	PostalCode       string    `gorm:"type:varchar(20)"`
	StreetAddress    string    `gorm:"type:varchar(255)"`
	PositionID       *int64
	DepartmentID     *int64
	EmploymentDate   time.Time
	EmploymentTypeID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Employee) TableName() string { return "employees" }

// One row per employee, enforced by the unique index on employee_id.
type EducationRecord struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	EmployeeID     int64  `gorm:"not null;uniqueIndex:uq_education_employee"`
	Degree         string `gorm:"type:varchar(100)"`
	University     string `gorm:"type:varchar(255)"`
	GraduationYear int
}

func (EducationRecord) TableName() string { return "education_history" }

type WorkExperienceRecord struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	EmployeeID        int64  `gorm:"not null;uniqueIndex:uq_experience_employee"`
	CompanyName       string `gorm:"type:varchar(255)"`
	JobTitle          string `gorm:"type:varchar(255)"`
	YearsOfExperience int
}

func (WorkExperienceRecord) TableName() string { return "work_experience" }

type EmergencyContact struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	EmployeeID   int64  `gorm:"not null;uniqueIndex:uq_emergency_contact_employee"`
	ContactName  string `gorm:"type:varchar(255)"`
	Relationship string `gorm:"type:varchar(100)"`
	PhoneNumber  string `gorm:"type:varchar(50)"`
}

func (EmergencyContact) TableName() string { return "emergency_contacts" }

// EmployeeDetail is the flattened read model: the employee row joined with
// the display names of its lookup references. Name fields stay nil when the
// reference is missing.
type EmployeeDetail struct {
	Employee
	PositionName       *string
	DepartmentName     *string
	EmploymentTypeName *string
}
