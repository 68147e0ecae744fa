package refdata

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=refdata_repo.go -destination=mock/refdata_repo_mock.go -package=mock
type Repository interface {
	FindAllDepartments(ctx context.Context) ([]Department, error)
	FindAllPositions(ctx context.Context) ([]Position, error)
	FindAllEmploymentTypes(ctx context.Context) ([]EmploymentType, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllDepartments(ctx context.Context) ([]Department, error) {
	var rows []Department
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllPositions(ctx context.Context) ([]Position, error) {
	var rows []Position
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllEmploymentTypes(ctx context.Context) ([]EmploymentType, error) {
	var rows []EmploymentType
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}
