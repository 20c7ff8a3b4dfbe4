package position_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-onboarding/internal/position"
	positionerrors "go-onboarding/internal/position/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePositionService struct {
	CreateFn  func(ctx context.Context, companyID string, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetAllFn  func(ctx context.Context, companyID string) ([]position.PositionResponse, error)
	GetByIDFn func(ctx context.Context, companyID, id string) (position.PositionResponse, error)
	UpdateFn  func(ctx context.Context, companyID, id string, req position.UpdatePositionRequest) (position.PositionResponse, error)
	DeleteFn  func(ctx context.Context, companyID, id string) error
}

func (f *fakePositionService) Create(ctx context.Context, companyID string, req position.CreatePositionRequest) (position.PositionResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakePositionService) GetAll(ctx context.Context, companyID string) ([]position.PositionResponse, error) {
	return f.GetAllFn(ctx, companyID)
}
func (f *fakePositionService) GetByID(ctx context.Context, companyID, id string) (position.PositionResponse, error) {
	return f.GetByIDFn(ctx, companyID, id)
}
func (f *fakePositionService) Update(ctx context.Context, companyID, id string, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	return f.UpdateFn(ctx, companyID, id, req)
}
func (f *fakePositionService) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

func withCompany(companyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	}
}

func TestPositionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()

		svc := &fakePositionService{
			CreateFn: func(ctx context.Context, cid string, req position.CreatePositionRequest) (position.PositionResponse, error) {
				assert.Equal(t, companyID, cid)
				return position.PositionResponse{ID: uuid.New().String(), Name: req.Name}, nil
			},
		}
		handler := position.NewHandler(svc)

		r := gin.New()
		r.POST("/positions", withCompany(companyID), handler.Create)

		body, _ := json.Marshal(position.CreatePositionRequest{
			Name:         "Backend Engineer",
			DepartmentID: uuid.New().String(),
		})
		req, _ := http.NewRequest(http.MethodPost, "/positions", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("department id must be a uuid", func(t *testing.T) {
		handler := position.NewHandler(&fakePositionService{})

		r := gin.New()
		r.POST("/positions", withCompany(uuid.New().String()), handler.Create)

		body, _ := json.Marshal(position.CreatePositionRequest{
			Name:         "Backend Engineer",
			DepartmentID: "dept-1",
		})
		req, _ := http.NewRequest(http.MethodPost, "/positions", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPositionHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakePositionService{
			GetByIDFn: func(ctx context.Context, companyID, id string) (position.PositionResponse, error) {
				return position.PositionResponse{}, positionerrors.ErrPositionNotFound
			},
		}
		handler := position.NewHandler(svc)

		r := gin.New()
		r.GET("/positions/:id", withCompany(uuid.New().String()), handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/positions/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
