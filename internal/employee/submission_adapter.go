package employee

import (
	"context"

	"go-onboarding/internal/submission"
)

// SubmissionAdapter exposes the employee service behind the narrow API the
// submission pipeline expects.
type SubmissionAdapter struct {
	svc Service
}

func NewSubmissionAdapter(svc Service) *SubmissionAdapter {
	return &SubmissionAdapter{svc: svc}
}

func (a *SubmissionAdapter) Create(ctx context.Context, p submission.EmployeePayload) (submission.Result, error) {
	resp, err := a.svc.Create(ctx, p)
	if err != nil {
		return submission.Result{}, err
	}
	return submission.Result{
		EmployeeID:        resp.ID,
		TemporaryPassword: resp.TemporaryPassword,
	}, nil
}

func (a *SubmissionAdapter) Update(ctx context.Context, id string, p submission.EmployeePayload) (submission.Result, error) {
	resp, err := a.svc.Update(ctx, id, p)
	if err != nil {
		return submission.Result{}, err
	}
	return submission.Result{
		EmployeeID:        resp.ID,
		TemporaryPassword: resp.TemporaryPassword,
	}, nil
}
