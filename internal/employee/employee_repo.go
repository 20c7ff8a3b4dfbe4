package employee

import (
	"context"
	"database/sql"
	"time"

	"go-onboarding/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, companyID, id string) error
	MarkERPProvisioned(ctx context.Context, companyID, id string, at time.Time) error
	GetDepartmentIDByName(ctx context.Context, companyID, name string) (string, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn routes statements through the attached transaction, so writes commit
// and roll back together with the caller's other statements.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	if r.tx == nil {
		return r.db.WithContext(ctx)
	}
	db := r.db.Session(&gorm.Session{NewDB: true, Context: ctx})
	db.Statement.ConnPool = r.tx
	return db
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("last_name asc, first_name asc").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Employee{}).Error
}

// GetDepartmentIDByName resolves a department name within a company. Free-text
// departments have no row; that is reported as an empty id, not an error.
func (r *repository) GetDepartmentIDByName(ctx context.Context, companyID, name string) (string, error) {
	var id string
	err := r.conn(ctx).Raw(`
		SELECT id::text FROM departments
		WHERE company_id = ? AND lower(name) = lower(?)
		LIMIT 1
	`, companyID, name).Scan(&id).Error
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *repository) MarkERPProvisioned(ctx context.Context, companyID, id string, at time.Time) error {
	return r.conn(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Update("erp_provisioned_at", at).Error
}
