// Package submission turns a fully validated draft into the employee API's
// payload. It re-runs every step's validation from scratch before building
// anything: jump navigation lets a user reach the review step without walking
// through each step, so the pipeline is the safety net.
package submission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-onboarding/internal/draft"
	"go-onboarding/internal/draft/validation"
	"go-onboarding/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Result is what the employee API answered. TemporaryPassword is only set
// when ERP generate mode was active; it cannot be retrieved again, so the
// caller must surface it exactly once.
type Result struct {
	EmployeeID        string `json:"employee_id"`
	TemporaryPassword string `json:"temporary_password,omitempty"`
	Message           string `json:"message,omitempty"`
}

//go:generate mockgen -source=pipeline.go -destination=mock/pipeline_mock.go -package=mock
type EmployeeAPI interface {
	Create(ctx context.Context, p EmployeePayload) (Result, error)
	Update(ctx context.Context, id string, p EmployeePayload) (Result, error)
}

// ValidationFailedError reports the first step that failed the pre-submit
// re-validation, with its field errors.
type ValidationFailedError struct {
	Step   int
	Fields validation.Errors
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("draft failed validation at step %d (%d field errors)", e.Step, len(e.Fields))
}

type Pipeline struct {
	api    EmployeeAPI
	logger *zap.Logger
}

func NewPipeline(api EmployeeAPI, logger ...*zap.Logger) *Pipeline {
	l := zap.L().Named("submission.pipeline")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("submission.pipeline")
	}
	return &Pipeline{api: api, logger: l}
}

// Submit re-validates the whole draft, builds the normalized payload and
// hands it to the employee API. The session's draft is never mutated: on any
// failure the caller keeps the session as it was so the user can retry
// without re-entering data.
func (p *Pipeline) Submit(ctx context.Context, sess *draft.Session, now time.Time) (Result, error) {
	rid := contextutil.GetRequestID(ctx)

	for step := 0; step < draft.StepCount; step++ {
		if errs := validation.ValidateStep(step, sess.Draft, now); len(errs) > 0 {
			p.logger.Warn("submit blocked by validation",
				zap.String("request_id", rid),
				zap.String("draft_id", sess.ID),
				zap.Int("step", step),
				zap.Int("field_errors", len(errs)),
			)
			return Result{}, &ValidationFailedError{Step: step, Fields: errs}
		}
	}

	payload := BuildPayload(sess.Draft)

	var (
		res Result
		err error
	)
	if sess.EmployeeRef != "" {
		res, err = p.api.Update(ctx, sess.EmployeeRef, payload)
	} else {
		res, err = p.api.Create(ctx, payload)
	}
	if err != nil {
		p.logger.Error("employee submission failed",
			zap.String("request_id", rid),
			zap.String("draft_id", sess.ID),
			zap.Error(err),
		)
		return Result{}, err
	}

	p.logger.Info("employee submission succeeded",
		zap.String("request_id", rid),
		zap.String("draft_id", sess.ID),
		zap.String("employee_id", res.EmployeeID),
	)
	return res, nil
}

// BuildPayload maps draft field names onto the employee API's schema and
// normalizes phone values. Exported so tests can assert the exact wire shape.
func BuildPayload(d draft.EmployeeDraft) EmployeePayload {
	contacts := make([]ContactPayload, len(d.Contacts))
	for i, c := range d.Contacts {
		contacts[i] = ContactPayload{
			Type:        c.Type,
			Value:       NormalizePhone(c.Value),
			CountryCode: c.CountryCode,
		}
	}

	children := 0
	if d.ChildrenCount != nil {
		children = *d.ChildrenCount
	}

	payload := EmployeePayload{
		EmployeeType:   d.EmployeeType,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		EmployeeNumber: d.EmployeeID,
		Status:         d.Status,
		Role:           d.Role,
		PersonalImage:  nullable(d.PersonalImage),

		Gender:         d.Gender,
		MaritalStatus:  d.MaritalStatus,
		Nationality:    d.Nationality,
		CurrentAddress: d.CurrentAddress,
		ChildrenCount:  children,
		Birthday:       d.Birthday,

		Contacts: contacts,
		Emails:   append([]string(nil), d.Emails...),

		CompanyID:         d.CompanyID,
		CompanyName:       d.Company.String(),
		DepartmentName:    d.Department.String(),
		JobTitle:          d.JobTitle,
		AttendanceProgram: d.AttendanceProgram,
		JoiningDate:       d.JoiningDate,
		ExitDate:          nullable(d.ExitDate),
		CompanyLocation:   d.CompanyLocation,
		Manager:           nullable(d.Manager),
		IsLineManager:     d.IsLineManager,

		PassportNumber:     d.Passport.Number,
		PassportIssueDate:  d.Passport.Issue,
		PassportExpiryDate: d.Passport.Expiry,
		PassportAttachment: nullable(d.Passport.Attachment),

		NationalIDNumber:     nullable(d.NationalID.Number),
		NationalIDIssueDate:  nullable(d.NationalID.Issue),
		NationalIDExpiryDate: nullable(d.NationalID.Expiry),
		NationalIDAttachment: nullable(d.NationalID.Attachment),

		ResidencyNumber:     nullable(d.Residency.Number),
		ResidencyIssueDate:  nullable(d.Residency.Issue),
		ResidencyExpiryDate: nullable(d.Residency.Expiry),
		ResidencyAttachment: nullable(d.Residency.Attachment),

		InsuranceNumber:     nullable(d.Insurance.Number),
		InsuranceIssueDate:  nullable(d.Insurance.Issue),
		InsuranceExpiryDate: nullable(d.Insurance.Expiry),
		InsuranceAttachment: nullable(d.Insurance.Attachment),

		DrivingLicenseNumber:     nullable(d.DrivingLicense.Number),
		DrivingLicenseIssueDate:  nullable(d.DrivingLicense.Issue),
		DrivingLicenseExpiryDate: nullable(d.DrivingLicense.Expiry),
		DrivingLicenseAttachment: nullable(d.DrivingLicense.Attachment),

		LabourIDNumber:     nullable(d.LabourID.Number),
		LabourIDIssueDate:  nullable(d.LabourID.Issue),
		LabourIDExpiryDate: nullable(d.LabourID.Expiry),
		LabourIDAttachment: nullable(d.LabourID.Attachment),
	}

	if d.ERPAccess.Enabled {
		erp := &ERPPayload{
			WorkEmail:        d.ERPAccess.WorkEmail,
			Role:             d.ERPAccess.Role,
			GeneratePassword: d.ERPAccess.GeneratePassword,
			IsLineManager:    d.IsLineManager,
		}
		if !d.ERPAccess.GeneratePassword {
			erp.Password = d.ERPAccess.Password
		}
		payload.ERPAccess = erp
	}

	return payload
}

// NormalizePhone strips everything that is not a digit or a plus sign and
// prefixes "+" when absent.
func NormalizePhone(v string) string {
	kept := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, v)

	if kept == "" {
		return kept
	}
	if !strings.HasPrefix(kept, "+") {
		kept = "+" + kept
	}
	return kept
}

func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
