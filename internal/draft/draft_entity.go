package draft

import (
	"encoding/json"
	"time"
)

// Wizard step indices. Order is part of the contract: reachability of a step
// depends on every step before it validating.
const (
	StepIdentity = iota
	StepPersonalDetails
	StepContacts
	StepCompanyInfo
	StepLegalInfo
	StepReview

	StepCount = 6
)

const ManagerJobTitle = "Manager"

// Contact is one phone-like entry. The first entry is the primary contact and
// is the only one validation cares about.
type Contact struct {
	Type        string `json:"type"` // phone | mobile | fax
	Value       string `json:"value"`
	CountryCode string `json:"country_code"`
}

// LegalDocument holds one legal-document sub-record. Attachment is an opaque
// storage handle; this service never touches file contents.
type LegalDocument struct {
	Number     string `json:"number"`
	Issue      string `json:"issue"`  // YYYY-MM-DD
	Expiry     string `json:"expiry"` // YYYY-MM-DD
	Attachment string `json:"attachment"`
}

func (d LegalDocument) Empty() bool {
	return d.Number == "" && d.Issue == "" && d.Expiry == "" && d.Attachment == ""
}

type ERPAccess struct {
	Enabled          bool   `json:"enabled"`
	WorkEmail        string `json:"work_email"`
	Password         string `json:"password"`
	PasswordConfirm  string `json:"password_confirm"`
	GeneratePassword bool   `json:"generate_password"`
	Role             string `json:"role"`
}

// EmployeeDraft is the single in-progress employee record a wizard session
// edits. All date fields are YYYY-MM-DD strings until submission normalizes
// them; Company and Department are always plain strings (see NameString).
type EmployeeDraft struct {
	// Identity
	EmployeeType  string `json:"employee_type"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmployeeID    string `json:"employee_id"`
	Status        string `json:"status"`
	Role          string `json:"role"`
	PersonalImage string `json:"personal_image"`

	// Personal details
	Gender         string `json:"gender"`
	MaritalStatus  string `json:"marital_status"`
	Nationality    string `json:"nationality"`
	CurrentAddress string `json:"current_address"`
	ChildrenCount  *int   `json:"children_count"`
	Birthday       string `json:"birthday"`

	// Contacts
	Contacts []Contact `json:"contacts"`
	Emails   []string  `json:"emails"`

	// Company assignment
	CompanyID         string     `json:"company_id"`
	Company           NameString `json:"company"`
	Department        NameString `json:"department"`
	JobTitle          string     `json:"job_title"`
	AttendanceProgram string     `json:"attendance_program"`
	JoiningDate       string     `json:"joining_date"`
	ExitDate          string     `json:"exit_date"`
	CompanyLocation   string     `json:"company_location"`
	Manager           string     `json:"manager"`
	IsLineManager     bool       `json:"is_line_manager"`

	// Legal documents
	Passport       LegalDocument `json:"passport"`
	NationalID     LegalDocument `json:"national_id"`
	Residency      LegalDocument `json:"residency"`
	Insurance      LegalDocument `json:"insurance"`
	DrivingLicense LegalDocument `json:"driving_license"`
	LabourID       LegalDocument `json:"labour_id"`

	ERPAccess ERPAccess `json:"erp_access"`
}

// Apply returns a new draft with the JSON patch merged in. The receiver is
// never mutated, so callers can keep snapshots and replay validation against
// them. Fields absent from the patch keep their current value; slices present
// in the patch replace the old slice wholesale.
func (d EmployeeDraft) Apply(patch []byte) (EmployeeDraft, error) {
	next := d.Clone()
	if err := json.Unmarshal(patch, &next); err != nil {
		return d, err
	}
	next.enforceInvariants()
	return next, nil
}

// Clone deep-copies the draft through its JSON form.
func (d EmployeeDraft) Clone() EmployeeDraft {
	raw, err := json.Marshal(d)
	if err != nil {
		return d
	}
	var c EmployeeDraft
	if err := json.Unmarshal(raw, &c); err != nil {
		return d
	}
	return c
}

// enforceInvariants applies field rules that hold regardless of which field a
// patch touched. A draft whose job title is "Manager" never carries a manager
// of its own.
func (d *EmployeeDraft) enforceInvariants() {
	if d.JobTitle == ManagerJobTitle {
		d.Manager = ""
	}
}

// DepartmentOption is one selectable department, cached on the session for the
// currently selected company.
type DepartmentOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session is one wizard session: the draft, the active step, and the
// department options loaded for the draft's selected company.
// OptionsCompanyID records which company the options belong to so a
// late-arriving load for a previously selected company can be discarded.
type Session struct {
	ID                string             `json:"id"`
	EmployeeRef       string             `json:"employee_ref,omitempty"` // set when editing an existing employee
	Step              int                `json:"step"`
	Draft             EmployeeDraft      `json:"draft"`
	DepartmentOptions []DepartmentOption `json:"department_options"`
	OptionsCompanyID  string             `json:"options_company_id"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
