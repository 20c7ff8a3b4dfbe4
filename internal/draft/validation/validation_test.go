package validation_test

import (
	"testing"
	"time"

	"go-onboarding/internal/draft"
	"go-onboarding/internal/draft/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Titik referensi tetap supaya aturan umur dan passport deterministik.
var now = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

// validDraft passes every step at the reference time. Tests knock out
// individual fields from here.
func validDraft() draft.EmployeeDraft {
	return draft.EmployeeDraft{
		EmployeeType: "Full-time",
		FirstName:    "Siti",
		LastName:     "Rahma",
		EmployeeID:   "EMP-0042",
		Status:       "Active",

		Gender:         "female",
		MaritalStatus:  "single",
		Nationality:    "ID",
		CurrentAddress: "Jl. Sudirman 10, Jakarta",
		ChildrenCount:  intPtr(0),
		Birthday:       "1995-04-20",

		Contacts: []draft.Contact{{Type: "mobile", Value: "0501234567", CountryCode: "+62"}},
		Emails:   []string{"siti.rahma@example.com"},

		CompanyID:         "c-1",
		Company:           "Acme Indonesia",
		Department:        "Engineering",
		JobTitle:          "Backend Engineer",
		AttendanceProgram: "Standard",
		JoiningDate:       "2024-02-01",
		CompanyLocation:   "Jakarta HQ",

		Passport: draft.LegalDocument{
			Number: "B1234567",
			Issue:  "2020-01-10",
			Expiry: "2028-01-10",
		},
	}
}

func TestValidateStep_AllStepsPassOnValidDraft(t *testing.T) {
	d := validDraft()
	for step := 0; step < draft.StepCount; step++ {
		assert.Empty(t, validation.ValidateStep(step, d, now), "step %d", step)
	}
	assert.Equal(t, -1, validation.FirstInvalid(d, now))
}

func TestValidateStep_Purity(t *testing.T) {
	d := validDraft()
	d.FirstName = ""
	before := d.Clone()

	_ = validation.ValidateStep(draft.StepIdentity, d, now)
	_ = validation.ValidateAll(d, now)

	// Validator tidak boleh menyentuh draft sama sekali.
	assert.Equal(t, before, d)
}

func TestValidateIdentity(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		d := validDraft()
		d.FirstName = "   "
		d.Status = ""

		errs := validation.ValidateStep(draft.StepIdentity, d, now)

		assert.Equal(t, validation.CodeRequired, errs[validation.FieldFirstName])
		assert.Equal(t, validation.CodeRequired, errs[validation.FieldStatus])
		assert.NotContains(t, errs, validation.FieldLastName)
	})

	t.Run("erp disabled skips credential rules", func(t *testing.T) {
		d := validDraft()
		d.ERPAccess = draft.ERPAccess{Enabled: false, WorkEmail: "not-an-email", Password: "x"}

		errs := validation.ValidateStep(draft.StepIdentity, d, now)

		assert.Empty(t, errs)
	})

	t.Run("erp enabled requires work email", func(t *testing.T) {
		d := validDraft()
		d.ERPAccess = draft.ERPAccess{Enabled: true, GeneratePassword: true}

		errs := validation.ValidateStep(draft.StepIdentity, d, now)

		assert.Equal(t, validation.CodeRequired, errs[validation.FieldWorkEmail])
	})

	t.Run("erp work email pattern", func(t *testing.T) {
		d := validDraft()
		d.ERPAccess = draft.ERPAccess{Enabled: true, WorkEmail: "siti@acme", GeneratePassword: true}

		errs := validation.ValidateStep(draft.StepIdentity, d, now)

		assert.Equal(t, validation.CodePattern, errs[validation.FieldWorkEmail])
	})

	t.Run("generate mode skips password fields entirely", func(t *testing.T) {
		d := validDraft()
		d.ERPAccess = draft.ERPAccess{
			Enabled:          true,
			WorkEmail:        "siti@acme.com",
			GeneratePassword: true,
			Password:         "short", // diabaikan: backend yang generate
		}

		errs := validation.ValidateStep(draft.StepIdentity, d, now)

		assert.Empty(t, errs)
	})

	t.Run("manual password rules", func(t *testing.T) {
		cases := []struct {
			name     string
			password string
			confirm  string
			field    string
			code     validation.Code
		}{
			{"empty", "", "", validation.FieldPassword, validation.CodeRequired},
			{"too short", "a1b2c3", "a1b2c3", validation.FieldPassword, validation.CodeTooShort},
			{"letters only", "abcdefgh", "abcdefgh", validation.FieldPassword, validation.CodePattern},
			{"digits only", "12345678", "12345678", validation.FieldPassword, validation.CodePattern},
			{"mismatch", "passw0rd1", "passw0rd2", validation.FieldPasswordConfirm, validation.CodeMismatch},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := validDraft()
				d.ERPAccess = draft.ERPAccess{
					Enabled:         true,
					WorkEmail:       "siti@acme.com",
					Password:        tc.password,
					PasswordConfirm: tc.confirm,
				}

				errs := validation.ValidateStep(draft.StepIdentity, d, now)

				assert.Equal(t, tc.code, errs[tc.field])
			})
		}
	})

	t.Run("valid manual password", func(t *testing.T) {
		d := validDraft()
		d.ERPAccess = draft.ERPAccess{
			Enabled:         true,
			WorkEmail:       "siti@acme.com",
			Password:        "passw0rd",
			PasswordConfirm: "passw0rd",
		}

		assert.Empty(t, validation.ValidateStep(draft.StepIdentity, d, now))
	})
}

func TestValidatePersonalDetails(t *testing.T) {
	t.Run("children count", func(t *testing.T) {
		d := validDraft()
		d.ChildrenCount = nil
		errs := validation.ValidateStep(draft.StepPersonalDetails, d, now)
		assert.Equal(t, validation.CodeRequired, errs[validation.FieldChildrenCount])

		d.ChildrenCount = intPtr(-1)
		errs = validation.ValidateStep(draft.StepPersonalDetails, d, now)
		assert.Equal(t, validation.CodeNegative, errs[validation.FieldChildrenCount])

		// Nol anak adalah jawaban sah, bukan field kosong.
		d.ChildrenCount = intPtr(0)
		errs = validation.ValidateStep(draft.StepPersonalDetails, d, now)
		assert.NotContains(t, errs, validation.FieldChildrenCount)
	})

	t.Run("birthday", func(t *testing.T) {
		cases := []struct {
			name     string
			birthday string
			code     validation.Code
			ok       bool
		}{
			{"empty", "", validation.CodeRequired, false},
			{"malformed", "20-04-1995", validation.CodeMalformedDate, false},
			{"turns 18 today passes", "2006-01-15", "", true},
			{"one day short of 18", "2006-01-16", validation.CodeUnder18, false},
			{"well over 18", "1990-07-01", "", true},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := validDraft()
				d.Birthday = tc.birthday

				errs := validation.ValidateStep(draft.StepPersonalDetails, d, now)

				if tc.ok {
					assert.NotContains(t, errs, validation.FieldBirthday)
				} else {
					assert.Equal(t, tc.code, errs[validation.FieldBirthday])
				}
			})
		}
	})
}

func TestValidateContacts(t *testing.T) {
	t.Run("primary contact required", func(t *testing.T) {
		d := validDraft()
		d.Contacts = nil
		errs := validation.ValidateStep(draft.StepContacts, d, now)
		assert.Equal(t, validation.CodeRequired, errs[validation.FieldContacts])

		d.Contacts = []draft.Contact{{Value: "   "}}
		errs = validation.ValidateStep(draft.StepContacts, d, now)
		assert.Equal(t, validation.CodeRequired, errs[validation.FieldContacts])
	})

	t.Run("primary contact digit count ignores formatting", func(t *testing.T) {
		d := validDraft()
		d.Contacts = []draft.Contact{{Value: "(050) 123-45"}} // 10 digit, lolos
		errs := validation.ValidateStep(draft.StepContacts, d, now)
		assert.NotContains(t, errs, validation.FieldContacts)

		d.Contacts = []draft.Contact{{Value: "(050) 12-34"}} // 7 digit
		errs = validation.ValidateStep(draft.StepContacts, d, now)
		assert.Equal(t, validation.CodeTooShort, errs[validation.FieldContacts])
	})

	t.Run("only the first contact is validated", func(t *testing.T) {
		d := validDraft()
		d.Contacts = []draft.Contact{
			{Value: "0501234567"},
			{Value: "x"}, // entri kedua bebas
		}

		assert.Empty(t, validation.ValidateStep(draft.StepContacts, d, now))
	})

	t.Run("first email required", func(t *testing.T) {
		d := validDraft()
		d.Emails = []string{""}

		errs := validation.ValidateStep(draft.StepContacts, d, now)

		assert.Equal(t, validation.CodeRequired, errs[validation.FieldEmails])
	})
}

func TestValidateCompanyInfo(t *testing.T) {
	t.Run("required fields", func(t *testing.T) {
		d := validDraft()
		d.Company = ""
		d.Department = ""
		d.JoiningDate = ""

		errs := validation.ValidateStep(draft.StepCompanyInfo, d, now)

		assert.Equal(t, validation.CodeRequired, errs[validation.FieldCompany])
		assert.Equal(t, validation.CodeRequired, errs[validation.FieldDepartment])
		assert.Equal(t, validation.CodeRequired, errs[validation.FieldJoiningDate])
	})

	t.Run("joining date format", func(t *testing.T) {
		d := validDraft()
		d.JoiningDate = "01/02/2024"

		errs := validation.ValidateStep(draft.StepCompanyInfo, d, now)

		assert.Equal(t, validation.CodeMalformedDate, errs[validation.FieldJoiningDate])
	})

	t.Run("manager never required", func(t *testing.T) {
		d := validDraft()
		d.Manager = ""

		assert.Empty(t, validation.ValidateStep(draft.StepCompanyInfo, d, now))
	})
}

func TestValidateLegalInfo(t *testing.T) {
	t.Run("passport expiry lead time", func(t *testing.T) {
		// now = 2024-01-15, jadi ambang batasnya 2024-07-15.
		cases := []struct {
			name   string
			expiry string
			ok     bool
		}{
			{"already expired", "2023-12-01", false},
			{"expires inside the window", "2024-06-14", false},
			{"one day before threshold", "2024-07-14", false},
			{"exactly six months out", "2024-07-15", true},
			{"far in the future", "2030-01-01", true},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := validDraft()
				d.Passport.Expiry = tc.expiry

				errs := validation.ValidateStep(draft.StepLegalInfo, d, now)

				if tc.ok {
					assert.NotContains(t, errs, validation.FieldPassportExpiry)
				} else {
					assert.Equal(t, validation.CodeExpiresSoon, errs[validation.FieldPassportExpiry])
				}
			})
		}
	})

	t.Run("passport fields required", func(t *testing.T) {
		d := validDraft()
		d.Passport = draft.LegalDocument{}

		errs := validation.ValidateStep(draft.StepLegalInfo, d, now)

		assert.Equal(t, validation.CodeRequired, errs[validation.FieldPassportNumber])
		assert.Equal(t, validation.CodeRequired, errs[validation.FieldPassportIssue])
		assert.Equal(t, validation.CodeRequired, errs[validation.FieldPassportExpiry])
	})

	t.Run("other legal documents are optional even when partial", func(t *testing.T) {
		d := validDraft()
		d.NationalID = draft.LegalDocument{Expiry: "2025-01-01"} // tanpa nomor
		d.Insurance = draft.LegalDocument{}

		assert.Empty(t, validation.ValidateStep(draft.StepLegalInfo, d, now))
	})
}

func TestValidateStep_ReviewGatesNothing(t *testing.T) {
	var empty draft.EmployeeDraft

	assert.Empty(t, validation.ValidateStep(draft.StepReview, empty, now))
	assert.Empty(t, validation.ValidateStep(99, empty, now))
}

func TestFirstInvalid(t *testing.T) {
	d := validDraft()
	d.Gender = "" // step 1 rusak, step lain tetap valid
	d.Passport.Number = ""

	require.Equal(t, draft.StepPersonalDetails, validation.FirstInvalid(d, now))

	all := validation.ValidateAll(d, now)
	assert.Empty(t, all[draft.StepIdentity])
	assert.NotEmpty(t, all[draft.StepPersonalDetails])
	assert.NotEmpty(t, all[draft.StepLegalInfo])
}
