package employee_test

import (
	"context"
	"testing"
	"time"

	"go-personnel/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	return employee.NewRepository(gormDB), mock, func() { db.Close() }
}

func TestEmployeeRepository_UpdateEmployee(t *testing.T) {
	empl := &employee.Employee{
		ID:             42,
		FullName:       "Jane Doe",
		DOB:            time.Date(1991, 4, 23, 0, 0, 0, 0, time.UTC),
		Email:          "jane@example.com",
		EmploymentDate: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("matched row succeeds", func(t *testing.T) {
		repo, mock, cleanup := setupRepoTest(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE "employees"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateEmployee(context.Background(), empl)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero matched rows reports a missing record", func(t *testing.T) {
		repo, mock, cleanup := setupRepoTest(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE "employees"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateEmployee(context.Background(), empl)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
