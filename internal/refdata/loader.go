// Package refdata serves the wizard's dropdown reference data: the company
// list and, per selected company, the department list. Both reads are cached
// in Redis and collapsed with singleflight because every open wizard form
// requests them.
package refdata

import (
	"context"
	"encoding/json"
	"time"

	"go-onboarding/internal/company"
	"go-onboarding/internal/department"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	companiesKey         = "refdata:companies"
	departmentsKeyPrefix = "refdata:departments:"

	// Master data; satu jam cukup
	cacheTTL = time.Hour
)

func DepartmentsKey(companyID string) string {
	return departmentsKeyPrefix + companyID
}

type ReferenceCompany struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ReferenceDepartment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

//go:generate mockgen -source=loader.go -destination=mock/loader_mock.go -package=mock
type Loader interface {
	Companies(ctx context.Context) ([]ReferenceCompany, error)
	Departments(ctx context.Context, companyID string) ([]ReferenceDepartment, error)
}

type loader struct {
	companies   company.Repository
	departments department.Repository
	rdb         *redis.Client
	sf          *singleflight.Group
	logger      *zap.Logger
}

func NewLoader(
	companies company.Repository,
	departments department.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Loader {
	l := zap.L().Named("refdata.loader")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("refdata.loader")
	}
	return &loader{
		companies:   companies,
		departments: departments,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		logger:      l,
	}
}

func (l *loader) Companies(ctx context.Context) ([]ReferenceCompany, error) {
	if cached, ok := getCached[[]ReferenceCompany](ctx, l.rdb, companiesKey); ok {
		return cached, nil
	}

	v, err, _ := l.sf.Do(companiesKey, func() (interface{}, error) {
		rows, err := l.companies.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		refs := make([]ReferenceCompany, len(rows))
		for i, row := range rows {
			refs[i] = ReferenceCompany{ID: row.ID.String(), Name: row.Name}
		}

		l.setCached(ctx, companiesKey, refs)
		return refs, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]ReferenceCompany), nil
}

func (l *loader) Departments(ctx context.Context, companyID string) ([]ReferenceDepartment, error) {
	key := DepartmentsKey(companyID)

	if cached, ok := getCached[[]ReferenceDepartment](ctx, l.rdb, key); ok {
		return cached, nil
	}

	v, err, _ := l.sf.Do(key, func() (interface{}, error) {
		rows, err := l.departments.FindAllByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}

		refs := make([]ReferenceDepartment, len(rows))
		for i, row := range rows {
			refs[i] = ReferenceDepartment{ID: row.ID.String(), Name: row.Name}
		}

		l.setCached(ctx, key, refs)
		return refs, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]ReferenceDepartment), nil
}

func getCached[T any](ctx context.Context, rdb *redis.Client, key string) (T, bool) {
	var zero T
	if rdb == nil {
		return zero, false
	}

	cached, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return zero, false
	}

	var out T
	if err := json.Unmarshal([]byte(cached), &out); err != nil {
		return zero, false
	}
	return out, true
}

func (l *loader) setCached(ctx context.Context, key string, v any) {
	if l.rdb == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := l.rdb.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		l.logger.Warn("refdata cache set failed", zap.String("key", key), zap.Error(err))
	}
}
