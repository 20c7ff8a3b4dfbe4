package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-onboarding/internal/auth"
	autherrors "go-onboarding/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	LoginFn        func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error)
	RefreshTokenFn func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error)
	GetMeFn        func(ctx context.Context, userID string) (*auth.AuthResponse, error)
	RegisterFn     func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
	return f.LoginFn(ctx, email, password)
}
func (f *fakeAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
	return f.RefreshTokenFn(ctx, refreshToken)
}
func (f *fakeAuthService) GetMe(ctx context.Context, userID string) (*auth.AuthResponse, error) {
	return f.GetMeFn(ctx, userID)
}
func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	return f.RegisterFn(ctx, req)
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	loginBody := func() *bytes.Buffer {
		b, _ := json.Marshal(auth.LoginRequest{Email: "siti@acme.com", Password: "password123"})
		return bytes.NewBuffer(b)
	}

	t.Run("web client gets HttpOnly cookies", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				assert.Equal(t, "siti@acme.com", email)
				return "access-123", "refresh-456", auth.AuthResponse{Email: email}, nil
			},
		}
		handler := auth.NewHandler(svc)

		r := gin.New()
		r.POST("/login", handler.Login)

		req, _ := http.NewRequest(http.MethodPost, "/login", loginBody())
		req.Header.Set("X-Client-Type", "web")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		var names []string
		for _, ck := range cookies {
			names = append(names, ck.Name)
			assert.True(t, ck.HttpOnly)
		}
		assert.Contains(t, names, "access_token")
		assert.Contains(t, names, "refresh_token")
		// token tetap ada di body juga
		assert.Contains(t, w.Body.String(), "access-123")
	})

	t.Run("api client gets tokens in body only", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				return "access-123", "refresh-456", auth.AuthResponse{Email: email}, nil
			},
		}
		handler := auth.NewHandler(svc)

		r := gin.New()
		r.POST("/login", handler.Login)

		req, _ := http.NewRequest(http.MethodPost, "/login", loginBody())
		req.Header.Set("X-Client-Type", "api")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
		assert.Contains(t, w.Body.String(), "refresh-456")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				return "", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		handler := auth.NewHandler(svc)

		r := gin.New()
		r.POST("/login", handler.Login)

		req, _ := http.NewRequest(http.MethodPost, "/login", loginBody())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "AUTH_FAILED")
	})

	t.Run("missing email", func(t *testing.T) {
		handler := auth.NewHandler(&fakeAuthService{})

		r := gin.New()
		r.POST("/login", handler.Login)

		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"password":"x"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeAuthService{
			GetMeFn: func(ctx context.Context, id string) (*auth.AuthResponse, error) {
				assert.Equal(t, userID, id)
				return &auth.AuthResponse{ID: id, Email: "siti@acme.com"}, nil
			},
		}
		handler := auth.NewHandler(svc)

		r := gin.New()
		r.GET("/me", func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Next()
		}, handler.Me)

		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "siti@acme.com")
	})

	t.Run("no user in context", func(t *testing.T) {
		handler := auth.NewHandler(&fakeAuthService{})

		r := gin.New()
		r.GET("/me", handler.Me)

		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("web client reads the cookie", func(t *testing.T) {
		svc := &fakeAuthService{
			RefreshTokenFn: func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
				assert.Equal(t, "refresh-456", refreshToken)
				return "new-access", "new-refresh", auth.AuthResponse{}, nil
			},
		}
		handler := auth.NewHandler(svc)

		r := gin.New()
		r.POST("/refresh", handler.RefreshToken)

		req, _ := http.NewRequest(http.MethodPost, "/refresh", nil)
		req.Header.Set("X-Client-Type", "web")
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "refresh-456"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("web client without cookie", func(t *testing.T) {
		handler := auth.NewHandler(&fakeAuthService{})

		r := gin.New()
		r.POST("/refresh", handler.RefreshToken)

		req, _ := http.NewRequest(http.MethodPost, "/refresh", nil)
		req.Header.Set("X-Client-Type", "web")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "NO_REFRESH_TOKEN")
	})

	t.Run("api client sends token in body", func(t *testing.T) {
		svc := &fakeAuthService{
			RefreshTokenFn: func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
				assert.Equal(t, "refresh-456", refreshToken)
				return "new-access", "new-refresh", auth.AuthResponse{}, nil
			},
		}
		handler := auth.NewHandler(svc)

		r := gin.New()
		r.POST("/refresh", handler.RefreshToken)

		req, _ := http.NewRequest(http.MethodPost, "/refresh", bytes.NewBufferString(`{"refresh_token":"refresh-456"}`))
		req.Header.Set("X-Client-Type", "api")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()
		employeeID := uuid.New().String()

		svc := &fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
				assert.Equal(t, companyID, req.CompanyID)
				return auth.AuthResponse{ID: uuid.New().String(), Email: req.Email, CompanyID: req.CompanyID}, nil
			},
		}
		handler := auth.NewHandler(svc)

		r := gin.New()
		r.POST("/register", handler.Register)

		body, _ := json.Marshal(auth.RegisterRequest{
			CompanyID:  companyID,
			EmployeeID: employeeID,
			Email:      "siti@acme.com",
			Name:       "Siti Rahma",
			Password:   "password123",
		})
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
	})

	t.Run("invalid employee id format", func(t *testing.T) {
		handler := auth.NewHandler(&fakeAuthService{})

		r := gin.New()
		r.POST("/register", handler.Register)

		body, _ := json.Marshal(auth.RegisterRequest{
			CompanyID:  uuid.New().String(),
			EmployeeID: "not-a-uuid",
			Email:      "siti@acme.com",
			Name:       "Siti Rahma",
			Password:   "password123",
		})
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
