package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-personnel/internal/employee"
	employeeerrors "go-personnel/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (int64, error)
	GetByIDFn func(ctx context.Context, id int64) (employee.EmployeeDetailResponse, error)
	UpdateFn  func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error
	DeleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (int64, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id int64) (employee.EmployeeDetailResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

const createBody = `{
	"full_name": "John Doe",
	"dob": "1990-01-15",
	"gender": "male",
	"nationality": "Indonesian",
	"passport_number": "A1234567",
	"phone_number": "0812-3456-7890",
	"email": "john@example.com",
	"country": "Indonesia",
	"city": "Jakarta",
	"employment_date": "2024-02-01",
	"degree": "BSc",
	"university": "UI",
	"graduation_year": 2012
}`

func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestEmployeeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (int64, error) {
				assert.Equal(t, "John Doe", req.FullName)
				assert.Equal(t, "john@example.com", req.Email)
				return 42, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newJSONRequest(http.MethodPost, "/api/v1/employees", createBody)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var envelope struct {
			Ok   bool `json:"ok"`
			Data struct {
				EmployeeID int64 `json:"employee_id"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Ok)
		assert.Equal(t, int64(42), envelope.Data.EmployeeID)
	})

	t.Run("missing required field fails validation", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (int64, error) {
				t.Fatal("service must not be called on invalid payload")
				return 0, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newJSONRequest(http.MethodPost, "/api/v1/employees", `{"full_name":"John Doe"}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})

	t.Run("duplicate email surfaces as conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (int64, error) {
				return 0, employeeerrors.ErrEmailAlreadyExists
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newJSONRequest(http.MethodPost, "/api/v1/employees", createBody)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeDetailResponse, error) {
				assert.Equal(t, int64(42), id)
				return employee.EmployeeDetailResponse{ID: id, FullName: "John Doe"}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/42", nil)
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "John Doe")
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown employee is not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeDetailResponse, error) {
				return employee.EmployeeDetailResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/404", nil)
		c.Params = gin.Params{{Key: "id", Value: "404"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
				assert.Equal(t, int64(42), id)
				return nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newJSONRequest(http.MethodPut, "/api/v1/employees/42", createBody)
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"updated":true`)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int64) error {
				assert.Equal(t, int64(42), id)
				return nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/employees/42", nil)
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})
}
