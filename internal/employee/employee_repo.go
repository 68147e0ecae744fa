package employee

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateEmployee(ctx context.Context, empl *Employee) error
	UpdateEmployee(ctx context.Context, empl *Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
	FindDetailByID(ctx context.Context, id int64) (*EmployeeDetail, error)

	CreateEducation(ctx context.Context, rec *EducationRecord) error
	UpsertEducation(ctx context.Context, rec *EducationRecord) error
	FindEducationByEmployee(ctx context.Context, employeeID int64) (*EducationRecord, error)
	DeleteEducationByEmployee(ctx context.Context, employeeID int64) error

	CreateExperience(ctx context.Context, rec *WorkExperienceRecord) error
	UpsertExperience(ctx context.Context, rec *WorkExperienceRecord) error
	FindExperienceByEmployee(ctx context.Context, employeeID int64) (*WorkExperienceRecord, error)
	DeleteExperienceByEmployee(ctx context.Context, employeeID int64) error

	CreateEmergencyContact(ctx context.Context, rec *EmergencyContact) error
	UpsertEmergencyContact(ctx context.Context, rec *EmergencyContact) error
	FindEmergencyContactByEmployee(ctx context.Context, employeeID int64) (*EmergencyContact, error)
	DeleteEmergencyContactByEmployee(ctx context.Context, employeeID int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds the repository to an open transaction.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateEmployee(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

// UpdateEmployee overwrites every mutable column unconditionally and stamps
// updated_at server-side. Zero affected rows means the employee does not
// exist; surfacing that here keeps the child upserts from inserting rows
// keyed to a parent that was never created.
func (r *repository) UpdateEmployee(ctx context.Context, empl *Employee) error {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", empl.ID).
		Updates(map[string]any{
			"full_name":          empl.FullName,
			"dob":                empl.DOB,
			"gender":             empl.Gender,
			"nationality":        empl.Nationality,
			"passport_number":    empl.PassportNumber,
			"phone_number":       empl.PhoneNumber,
			"email":              empl.Email,
			"country":            empl.Country,
			"city":               empl.City,
			"postal_code":        empl.PostalCode,
			"street_address":     empl.StreetAddress,
			"position_id":        empl.PositionID,
			"department_id":      empl.DepartmentID,
			"employment_date":    empl.EmploymentDate,
			"employment_type_id": empl.EmploymentTypeID,
			"updated_at":         gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteEmployee(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

// FindDetailByID resolves lookup names with left joins so a dangling
// reference yields a null name, not an error.
func (r *repository) FindDetailByID(ctx context.Context, id int64) (*EmployeeDetail, error) {
	var detail EmployeeDetail
	err := r.db.WithContext(ctx).
		Table("employees e").
		Select(`e.*,
			p.name AS position_name,
			d.name AS department_name,
			et.name AS employment_type_name`).
		Joins("LEFT JOIN positions p ON e.position_id = p.id").
		Joins("LEFT JOIN departments d ON e.department_id = d.id").
		Joins("LEFT JOIN employment_types et ON e.employment_type_id = et.id").
		Where("e.id = ?", id).
		Take(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *repository) CreateEducation(ctx context.Context, rec *EducationRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) UpsertEducation(ctx context.Context, rec *EducationRecord) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO education_history (employee_id, degree, university, graduation_year)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (employee_id) DO UPDATE
		SET degree = EXCLUDED.degree,
			university = EXCLUDED.university,
			graduation_year = EXCLUDED.graduation_year
	`, rec.EmployeeID, rec.Degree, rec.University, rec.GraduationYear).Error
}

func (r *repository) FindEducationByEmployee(ctx context.Context, employeeID int64) (*EducationRecord, error) {
	var rec EducationRecord
	err := r.db.WithContext(ctx).First(&rec, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) DeleteEducationByEmployee(ctx context.Context, employeeID int64) error {
	return r.db.WithContext(ctx).Delete(&EducationRecord{}, "employee_id = ?", employeeID).Error
}

func (r *repository) CreateExperience(ctx context.Context, rec *WorkExperienceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) UpsertExperience(ctx context.Context, rec *WorkExperienceRecord) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO work_experience (employee_id, company_name, job_title, years_of_experience)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (employee_id) DO UPDATE
		SET company_name = EXCLUDED.company_name,
			job_title = EXCLUDED.job_title,
			years_of_experience = EXCLUDED.years_of_experience
	`, rec.EmployeeID, rec.CompanyName, rec.JobTitle, rec.YearsOfExperience).Error
}

func (r *repository) FindExperienceByEmployee(ctx context.Context, employeeID int64) (*WorkExperienceRecord, error) {
	var rec WorkExperienceRecord
	err := r.db.WithContext(ctx).First(&rec, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) DeleteExperienceByEmployee(ctx context.Context, employeeID int64) error {
	return r.db.WithContext(ctx).Delete(&WorkExperienceRecord{}, "employee_id = ?", employeeID).Error
}

func (r *repository) CreateEmergencyContact(ctx context.Context, rec *EmergencyContact) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) UpsertEmergencyContact(ctx context.Context, rec *EmergencyContact) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO emergency_contacts (employee_id, contact_name, relationship, phone_number)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (employee_id) DO UPDATE
		SET contact_name = EXCLUDED.contact_name,
			relationship = EXCLUDED.relationship,
			phone_number = EXCLUDED.phone_number
	`, rec.EmployeeID, rec.ContactName, rec.Relationship, rec.PhoneNumber).Error
}

func (r *repository) FindEmergencyContactByEmployee(ctx context.Context, employeeID int64) (*EmergencyContact, error) {
	var rec EmergencyContact
	err := r.db.WithContext(ctx).First(&rec, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) DeleteEmergencyContactByEmployee(ctx context.Context, employeeID int64) error {
	return r.db.WithContext(ctx).Delete(&EmergencyContact{}, "employee_id = ?", employeeID).Error
}
