package wizard

import (
	"encoding/json"
	"time"

	"go-onboarding/internal/draft"
	"go-onboarding/internal/draft/validation"
	"go-onboarding/internal/prefill"
)

// CreateDraftRequest opens a new wizard session. Navigation carries the org
// tree position the console opened the wizard from; the ambient fields carry
// its global company selection. Both are optional.
type CreateDraftRequest struct {
	Navigation         prefill.NavigationContext `json:"navigation"`
	AmbientCompanyID   string                    `json:"ambient_company_id"`
	AmbientCompanyName string                    `json:"ambient_company_name"`
	EmployeeRef        string                    `json:"employee_ref"`
}

// JumpRequest targets an absolute step index.
type JumpRequest struct {
	Step int `json:"step"`
}

// DraftView is the wizard state the console renders: the draft itself, the
// active step, per-field errors from the last blocked transition, which steps
// are currently jumpable, and the department dropdown options.
type DraftView struct {
	ID                string                   `json:"id"`
	EmployeeRef       string                   `json:"employee_ref,omitempty"`
	Step              int                      `json:"step"`
	Draft             draft.EmployeeDraft      `json:"draft"`
	StepErrors        validation.Errors        `json:"step_errors,omitempty"`
	BlockingStep      *int                     `json:"blocking_step,omitempty"`
	Reachable         []bool                   `json:"reachable"`
	CanSubmit         bool                     `json:"can_submit"`
	DepartmentOptions []draft.DepartmentOption `json:"department_options"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

// SubmitView is the terminal response of a session. TemporaryPassword is
// surfaced exactly once and never stored in plain form.
type SubmitView struct {
	EmployeeID        string `json:"employee_id"`
	TemporaryPassword string `json:"temporary_password,omitempty"`
	Message           string `json:"message"`
}

// PatchDraftRequest is the raw JSON merge patch for the draft. Kept raw so
// absent fields stay untouched while explicit values overwrite.
type PatchDraftRequest struct {
	Draft json.RawMessage `json:"draft"`
}
