// Package prefill derives initial draft values from the navigation context a
// wizard session was opened with. Department is only ever prefilled when the
// context carries an explicit organizational marker; ambient "currently
// selected company" state may seed the company field but never the
// department. Stale ambient selection silently misfiling an employee under
// the wrong department is the regression this package exists to prevent.
package prefill

import (
	"go-onboarding/internal/draft"
)

// NavigationContext is what the console sends when the wizard is opened from
// a specific place in the org tree. PositionID (or SubDepartment) is the
// explicit marker; without one, any department value in the context is
// ignored.
type NavigationContext struct {
	PositionID    string           `json:"position_id"`
	Position      draft.NameString `json:"position"`
	SubDepartment draft.NameString `json:"sub_department"`
	Department    draft.NameString `json:"department"`
	Company       draft.NameString `json:"company"`
	CompanyID     string           `json:"company_id"`
}

// Ambient is the console's global selection state, supplied separately from
// the per-draft navigation context so the two can never be confused.
type Ambient struct {
	CompanyID   string
	CompanyName string
}

// Values is the patch Resolve produces for a fresh draft. Empty fields mean
// "leave the draft blank".
type Values struct {
	CompanyID  string
	Company    draft.NameString
	Department draft.NameString
}

// explicitMarker reports whether the context pins the navigation to a
// concrete position or sub-department node.
func (n NavigationContext) explicitMarker() bool {
	return n.PositionID != "" || n.SubDepartment != ""
}

// Resolve computes the prefill for a new draft. Company falls back to the
// ambient selection when the context has none; department comes exclusively
// from an explicitly marked context.
func Resolve(nav NavigationContext, ambient Ambient) Values {
	var v Values

	if nav.Company != "" {
		v.Company = nav.Company
		v.CompanyID = nav.CompanyID
	} else if ambient.CompanyName != "" {
		v.Company = draft.NameString(ambient.CompanyName)
		v.CompanyID = ambient.CompanyID
	}

	if !nav.explicitMarker() {
		return v
	}

	switch {
	case nav.Department != "":
		v.Department = nav.Department
	case nav.SubDepartment != "":
		v.Department = nav.SubDepartment
	}

	return v
}

// Seed applies the resolved values onto an empty draft and returns it.
func Seed(v Values) draft.EmployeeDraft {
	var d draft.EmployeeDraft
	d.Company = v.Company
	d.CompanyID = v.CompanyID
	d.Department = v.Department
	return d
}
