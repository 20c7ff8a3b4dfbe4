package refdata_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-onboarding/internal/company"
	"go-onboarding/internal/department"
	"go-onboarding/internal/refdata"

	companyMock "go-onboarding/internal/company/mock"
	departmentMock "go-onboarding/internal/department/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoader_Companies(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss hits the repo and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companies := companyMock.NewMockRepository(ctrl)
		departments := departmentMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()

		rows := []company.Company{
			{ID: uuid.New(), Name: "Acme Indonesia"},
			{ID: uuid.New(), Name: "Acme Europe"},
		}
		companies.EXPECT().FindAll(ctx).Return(rows, nil)

		rmock.ExpectGet("refdata:companies").RedisNil()
		rmock.ExpectSet("refdata:companies", mustJSON(t, []refdata.ReferenceCompany{
			{ID: rows[0].ID.String(), Name: "Acme Indonesia"},
			{ID: rows[1].ID.String(), Name: "Acme Europe"},
		}), time.Hour).SetVal("OK")

		loader := refdata.NewLoader(companies, departments, rdb)

		refs, err := loader.Companies(ctx)

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "Acme Indonesia", refs[0].Name)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("cache hit never touches the repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companies := companyMock.NewMockRepository(ctrl)
		departments := departmentMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()

		cached := []refdata.ReferenceCompany{{ID: "c-1", Name: "Acme"}}
		rmock.ExpectGet("refdata:companies").SetVal(string(mustJSON(t, cached)))

		loader := refdata.NewLoader(companies, departments, rdb)

		refs, err := loader.Companies(ctx)

		require.NoError(t, err)
		assert.Equal(t, cached, refs)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companies := companyMock.NewMockRepository(ctrl)
		departments := departmentMock.NewMockRepository(ctrl)

		companies.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		// rdb nil: cache dilewati, singleflight tetap jalan
		loader := refdata.NewLoader(companies, departments, nil)

		_, err := loader.Companies(ctx)

		assert.Error(t, err)
	})
}

func TestLoader_Departments(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("scoped by company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companies := companyMock.NewMockRepository(ctrl)
		departments := departmentMock.NewMockRepository(ctrl)

		rows := []department.Department{
			{ID: uuid.New(), Name: "Engineering"},
			{ID: uuid.New(), Name: "Sales"},
		}
		departments.EXPECT().FindAllByCompany(ctx, companyID).Return(rows, nil)

		loader := refdata.NewLoader(companies, departments, nil)

		refs, err := loader.Departments(ctx, companyID)

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "Engineering", refs[0].Name)
		assert.Equal(t, rows[0].ID.String(), refs[0].ID)
	})

	t.Run("per-company cache key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companies := companyMock.NewMockRepository(ctrl)
		departments := departmentMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()

		cached := []refdata.ReferenceDepartment{{ID: "d-1", Name: "Engineering"}}
		rmock.ExpectGet(refdata.DepartmentsKey(companyID)).SetVal(string(mustJSON(t, cached)))

		loader := refdata.NewLoader(companies, departments, rdb)

		refs, err := loader.Departments(ctx, companyID)

		require.NoError(t, err)
		assert.Equal(t, cached, refs)
	})

	t.Run("company without departments is an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companies := companyMock.NewMockRepository(ctrl)
		departments := departmentMock.NewMockRepository(ctrl)

		departments.EXPECT().FindAllByCompany(ctx, companyID).Return(nil, nil)

		loader := refdata.NewLoader(companies, departments, nil)

		refs, err := loader.Departments(ctx, companyID)

		require.NoError(t, err)
		assert.Empty(t, refs)
		assert.NotNil(t, refs)
	})
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
