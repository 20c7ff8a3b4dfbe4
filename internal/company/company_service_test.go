package company_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-onboarding/internal/company"
	companyerrors "go-onboarding/internal/company/errors"

	companyMock "go-onboarding/internal/company/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service company.Service
	repo    *companyMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := companyMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: company.NewService(db, repo),
		repo:    repo,
	}
}

func TestCompanyService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		req := company.CreateCompanyRequest{Name: "Acme Indonesia", Email: "hq@acme.co.id"}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *company.Company) error {
				assert.Equal(t, req.Name, c.Name)
				assert.True(t, c.IsActive)
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "Acme Indonesia", resp.Name)
		assert.NotEmpty(t, resp.ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		req := company.CreateCompanyRequest{Name: "Acme Indonesia"}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New(`duplicate key value violates unique constraint "uq_company_name"`))

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, companyerrors.ErrCompanyAlreadyExists)
	})
}

func TestCompanyService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	rows := []company.Company{
		{ID: uuid.New(), Name: "Acme Indonesia", IsActive: true},
		{ID: uuid.New(), Name: "Acme Europe", IsActive: false},
	}
	deps.repo.EXPECT().FindAll(ctx).Return(rows, nil)

	resp, err := deps.service.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Acme Europe", resp[1].Name)
	assert.False(t, resp[1].IsActive)
}

func TestCompanyService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(&company.Company{ID: targetID, Name: "Acme"}, nil)

		resp, err := deps.service.GetByID(ctx, targetID.String())

		require.NoError(t, err)
		assert.Equal(t, targetID.String(), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, targetID.String())

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestCompanyService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New()

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		existing := &company.Company{ID: targetID, Name: "Old Name", Email: "hq@acme.co.id", IsActive: true}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *company.Company) error {
				assert.Equal(t, "New Name", c.Name)
				assert.Equal(t, "hq@acme.co.id", c.Email, "email tidak dikirim, tetap lama")
				return nil
			})

		resp, err := deps.service.Update(ctx, targetID.String(), company.UpdateCompanyRequest{Name: "New Name"})

		require.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
	})

	t.Run("deactivate", func(t *testing.T) {
		existing := &company.Company{ID: targetID, Name: "Acme", IsActive: true}
		inactive := false

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *company.Company) error {
				assert.False(t, c.IsActive)
				return nil
			})

		resp, err := deps.service.Update(ctx, targetID.String(), company.UpdateCompanyRequest{IsActive: &inactive})

		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})
}

func TestCompanyService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New().String()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Delete(ctx, targetID).Return(nil)

	require.NoError(t, deps.service.Delete(ctx, targetID))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
