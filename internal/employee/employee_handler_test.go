package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-onboarding/internal/employee"
	employeeerrors "go-onboarding/internal/employee/errors"
	"go-onboarding/internal/submission"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	CreateFn             func(ctx context.Context, p submission.EmployeePayload) (employee.EmployeeResponse, error)
	UpdateFn             func(ctx context.Context, id string, p submission.EmployeePayload) (employee.EmployeeResponse, error)
	GetAllFn             func(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error)
	GetByIDFn            func(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error)
	DeleteFn             func(ctx context.Context, companyID, id string) error
	MarkERPProvisionedFn func(ctx context.Context, companyID, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, p submission.EmployeePayload) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, p)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, p submission.EmployeePayload) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, p)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, companyID)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, companyID, id)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}
func (f *fakeEmployeeService) MarkERPProvisioned(ctx context.Context, companyID, id string) error {
	return f.MarkERPProvisionedFn(ctx, companyID, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withCompany(companyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()

		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, p submission.EmployeePayload) (employee.EmployeeResponse, error) {
				// company id diambil dari context, bukan dari body
				assert.Equal(t, companyID, p.CompanyID)
				assert.Equal(t, "Siti", p.FirstName)
				return employee.EmployeeResponse{
					ID:        uuid.New().String(),
					FirstName: p.FirstName,
					CompanyID: p.CompanyID,
				}, nil
			},
		}
		handler := employee.NewHandler(svc)

		r := setupRouter()
		r.POST("/employees", withCompany(companyID), handler.Create)

		body, _ := json.Marshal(submission.EmployeePayload{
			FirstName: "Siti",
			LastName:  "Rahma",
			CompanyID: "should-be-overwritten",
		})
		req, _ := http.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		handler := employee.NewHandler(svc)

		r := setupRouter()
		r.POST("/employees", withCompany(uuid.New().String()), handler.Create)

		req, _ := http.NewRequest(http.MethodPost, "/employees", strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	companyID := uuid.New().String()
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, companyID, cid)
			return []employee.EmployeeResponse{
				{ID: "e-1", FirstName: "Siti", LastName: "Rahma", PrimaryEmail: "siti@acme.com"},
				{ID: "e-2", FirstName: "Budi", LastName: "Santoso", PrimaryEmail: "budi@acme.com"},
				{ID: "e-3", FirstName: "Anita", LastName: "Wijaya", PrimaryEmail: "anita@acme.com"},
			}, nil
		},
	}
	handler := employee.NewHandler(svc)

	r := setupRouter()
	r.GET("/employees", withCompany(companyID), handler.GetAll)

	t.Run("filters by q", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/employees?q=siti", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "siti@acme.com")
		assert.NotContains(t, w.Body.String(), "budi@acme.com")
	})

	t.Run("paginates and reports meta", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/employees?page=2&page_size=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Data []employee.EmployeeResponse `json:"data"`
			Meta struct {
				Total int64 `json:"total"`
				Page  int   `json:"page"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res.Data, 1)
		assert.Equal(t, int64(3), res.Meta.Total)
		assert.Equal(t, 2, res.Meta.Page)
	})

	t.Run("sorts by name by default", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var res struct {
			Data []employee.EmployeeResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Data, 3)
		// urut berdasarkan last name: Rahma, Santoso, Wijaya
		assert.Equal(t, "Siti", res.Data[0].FirstName)
		assert.Equal(t, "Budi", res.Data[1].FirstName)
		assert.Equal(t, "Anita", res.Data[2].FirstName)
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		handler := employee.NewHandler(svc)

		r := setupRouter()
		r.GET("/employees/:id", withCompany(uuid.New().String()), handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/employees/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("success forwards id and company", func(t *testing.T) {
		companyID := uuid.New().String()
		employeeID := uuid.New().String()

		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, p submission.EmployeePayload) (employee.EmployeeResponse, error) {
				assert.Equal(t, employeeID, id)
				assert.Equal(t, companyID, p.CompanyID)
				return employee.EmployeeResponse{ID: id, FirstName: p.FirstName}, nil
			},
		}
		handler := employee.NewHandler(svc)

		r := setupRouter()
		r.PUT("/employees/:id", withCompany(companyID), handler.Update)

		body, _ := json.Marshal(submission.EmployeePayload{FirstName: "Siti"})
		req, _ := http.NewRequest(http.MethodPut, "/employees/"+employeeID, bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()
		employeeID := uuid.New().String()

		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, cid, id string) error {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, employeeID, id)
				return nil
			},
		}
		handler := employee.NewHandler(svc)

		r := setupRouter()
		r.DELETE("/employees/:id", withCompany(companyID), handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/employees/"+employeeID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "deleted")
	})
}
