package search

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

//go:generate mockgen -source=search_repo.go -destination=mock/search_repo_mock.go -package=mock
type Repository interface {
	Search(ctx context.Context, field, value string) ([]Row, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// DISTINCT folds the duplicates the one-to-many joins would otherwise
// produce; match_rank must be selected because it orders the result.
const searchQuery = `
SELECT DISTINCT
	e.id,
	e.full_name,
	e.email,
	e.phone_number,
	e.passport_number,
	e.nationality,
	e.gender,
	e.city,
	e.country,
	p.name AS position_name,
	d.name AS department_name,
	et.name AS employment_type_name,
	ed.degree,
	ed.university,
	ed.graduation_year,
	we.company_name,
	we.job_title,
	CASE WHEN LOWER(e.full_name) LIKE ? THEN 0 ELSE 1 END AS match_rank
FROM employees e
LEFT JOIN positions p ON e.position_id = p.id
LEFT JOIN departments d ON e.department_id = d.id
LEFT JOIN employment_types et ON e.employment_type_id = et.id
LEFT JOIN education_history ed ON ed.employee_id = e.id
LEFT JOIN work_experience we ON we.employee_id = e.id
WHERE %s
ORDER BY match_rank ASC, e.full_name ASC
`

func (r *repository) Search(ctx context.Context, field, value string) ([]Row, error) {
	predicate, predicateArgs := buildPredicate(field, value)

	// Exact name matches rank first no matter which field was searched.
	args := make([]any, 0, len(predicateArgs)+1)
	args = append(args, containsPattern(value))
	args = append(args, predicateArgs...)

	var rows []Row
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf(searchQuery, predicate), args...).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
