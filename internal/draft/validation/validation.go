// Package validation holds the per-step rules of the employee wizard as pure
// functions. The same rule set gates forward navigation, jump reachability and
// final submission; there is deliberately no second, divergent field set for
// any of those paths.
package validation

import (
	"regexp"
	"strings"
	"time"

	"go-onboarding/internal/draft"
)

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MinPasswordLength for ERP access credentials.
const MinPasswordLength = 8

// MinContactDigits is the minimum digit count of the primary contact value.
const MinContactDigits = 8

// PassportExpiryLeadMonths is how far in the future a passport must stay valid.
const PassportExpiryLeadMonths = 6

// MinAgeYears at validation time, computed from the birthday field.
const MinAgeYears = 18

// ValidateStep runs the rules of one step against the draft. It is pure:
// the result depends only on the arguments, and the draft is never mutated.
// now is the moving reference point for the age and passport-expiry rules.
func ValidateStep(step int, d draft.EmployeeDraft, now time.Time) Errors {
	switch step {
	case draft.StepIdentity:
		return validateIdentity(d)
	case draft.StepPersonalDetails:
		return validatePersonalDetails(d, now)
	case draft.StepContacts:
		return validateContacts(d)
	case draft.StepCompanyInfo:
		return validateCompanyInfo(d)
	case draft.StepLegalInfo:
		return validateLegalInfo(d, now)
	default:
		// Review and anything out of range gate nothing on their own.
		return Errors{}
	}
}

// ValidateAll re-runs every step against the draft and returns the per-step
// results. Used by submission as the safety net against jump navigation.
func ValidateAll(d draft.EmployeeDraft, now time.Time) [draft.StepCount]Errors {
	var all [draft.StepCount]Errors
	for step := 0; step < draft.StepCount; step++ {
		all[step] = ValidateStep(step, d, now)
	}
	return all
}

// FirstInvalid returns the lowest step index that fails validation, or -1 if
// every step passes.
func FirstInvalid(d draft.EmployeeDraft, now time.Time) int {
	for step := 0; step < draft.StepCount; step++ {
		if len(ValidateStep(step, d, now)) > 0 {
			return step
		}
	}
	return -1
}

func validateIdentity(d draft.EmployeeDraft) Errors {
	errs := Errors{}
	requireString(errs, FieldEmployeeType, d.EmployeeType)
	requireString(errs, FieldFirstName, d.FirstName)
	requireString(errs, FieldLastName, d.LastName)
	requireString(errs, FieldEmployeeID, d.EmployeeID)
	requireString(errs, FieldStatus, d.Status)

	erp := d.ERPAccess
	if !erp.Enabled {
		return errs
	}

	switch {
	case strings.TrimSpace(erp.WorkEmail) == "":
		errs[FieldWorkEmail] = CodeRequired
	case !emailPattern.MatchString(erp.WorkEmail):
		errs[FieldWorkEmail] = CodePattern
	}

	// Generate mode defers credentials to the backend; the password fields
	// are not validated at all.
	if erp.GeneratePassword {
		return errs
	}

	switch {
	case erp.Password == "":
		errs[FieldPassword] = CodeRequired
	case len(erp.Password) < MinPasswordLength:
		errs[FieldPassword] = CodeTooShort
	case !hasLetterAndDigit(erp.Password):
		errs[FieldPassword] = CodePattern
	}

	if erp.Password != "" && erp.PasswordConfirm != "" && erp.Password != erp.PasswordConfirm {
		errs[FieldPasswordConfirm] = CodeMismatch
	}

	return errs
}

func validatePersonalDetails(d draft.EmployeeDraft, now time.Time) Errors {
	errs := Errors{}
	requireString(errs, FieldGender, d.Gender)
	requireString(errs, FieldMaritalStatus, d.MaritalStatus)
	requireString(errs, FieldNationality, d.Nationality)
	requireString(errs, FieldCurrentAddress, d.CurrentAddress)

	switch {
	case d.ChildrenCount == nil:
		errs[FieldChildrenCount] = CodeRequired
	case *d.ChildrenCount < 0:
		errs[FieldChildrenCount] = CodeNegative
	}

	// Tiga alasan berbeda untuk birthday: kosong, tidak valid, di bawah umur
	switch {
	case strings.TrimSpace(d.Birthday) == "":
		errs[FieldBirthday] = CodeRequired
	default:
		birthday, err := time.Parse(dateLayout, d.Birthday)
		if err != nil {
			errs[FieldBirthday] = CodeMalformedDate
		} else if !isAtLeastYearsOld(birthday, MinAgeYears, now) {
			errs[FieldBirthday] = CodeUnder18
		}
	}

	return errs
}

func validateContacts(d draft.EmployeeDraft) Errors {
	errs := Errors{}

	switch {
	case len(d.Contacts) == 0 || strings.TrimSpace(d.Contacts[0].Value) == "":
		errs[FieldContacts] = CodeRequired
	case len(digitsOnly(d.Contacts[0].Value)) < MinContactDigits:
		errs[FieldContacts] = CodeTooShort
	}

	if len(d.Emails) == 0 || strings.TrimSpace(d.Emails[0]) == "" {
		errs[FieldEmails] = CodeRequired
	}

	return errs
}

func validateCompanyInfo(d draft.EmployeeDraft) Errors {
	errs := Errors{}
	requireString(errs, FieldCompany, d.Company.String())
	requireString(errs, FieldDepartment, d.Department.String())
	requireString(errs, FieldJobTitle, d.JobTitle)
	requireString(errs, FieldAttendanceProgram, d.AttendanceProgram)
	requireString(errs, FieldCompanyLocation, d.CompanyLocation)

	switch {
	case strings.TrimSpace(d.JoiningDate) == "":
		errs[FieldJoiningDate] = CodeRequired
	default:
		if _, err := time.Parse(dateLayout, d.JoiningDate); err != nil {
			errs[FieldJoiningDate] = CodeMalformedDate
		}
	}

	// Manager is never required; with a "Manager" job title the field is
	// suppressed entirely (the draft clears it on patch).
	return errs
}

func validateLegalInfo(d draft.EmployeeDraft, now time.Time) Errors {
	errs := Errors{}
	requireString(errs, FieldPassportNumber, d.Passport.Number)

	switch {
	case strings.TrimSpace(d.Passport.Issue) == "":
		errs[FieldPassportIssue] = CodeRequired
	default:
		if _, err := time.Parse(dateLayout, d.Passport.Issue); err != nil {
			errs[FieldPassportIssue] = CodeMalformedDate
		}
	}

	switch {
	case strings.TrimSpace(d.Passport.Expiry) == "":
		errs[FieldPassportExpiry] = CodeRequired
	default:
		expiry, err := time.Parse(dateLayout, d.Passport.Expiry)
		if err != nil {
			errs[FieldPassportExpiry] = CodeMalformedDate
		} else if dateOnly(expiry).Before(dateOnly(now).AddDate(0, PassportExpiryLeadMonths, 0)) {
			errs[FieldPassportExpiry] = CodeExpiresSoon
		}
	}

	// The remaining legal documents are optional in full: a partially filled
	// sub-record (expiry without number, etc.) is not flagged.
	return errs
}

func requireString(errs Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = CodeRequired
	}
}

func hasLetterAndDigit(s string) bool {
	var letter, digit bool
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letter = true
		}
	}
	return letter && digit
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// isAtLeastYearsOld compares calendar dates, so someone turning 18 today
// passes and someone one day short does not.
func isAtLeastYearsOld(birthday time.Time, years int, now time.Time) bool {
	threshold := dateOnly(birthday).AddDate(years, 0, 0)
	return !dateOnly(now).Before(threshold)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
