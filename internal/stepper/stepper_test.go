package stepper_test

import (
	"testing"
	"time"

	"go-onboarding/internal/draft"
	"go-onboarding/internal/draft/validation"
	"go-onboarding/internal/stepper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func fullDraft() draft.EmployeeDraft {
	return draft.EmployeeDraft{
		EmployeeType: "Full-time",
		FirstName:    "Siti",
		LastName:     "Rahma",
		EmployeeID:   "EMP-0042",
		Status:       "Active",

		Gender:         "female",
		MaritalStatus:  "single",
		Nationality:    "ID",
		CurrentAddress: "Jl. Sudirman 10",
		ChildrenCount:  intPtr(0),
		Birthday:       "1995-04-20",

		Contacts: []draft.Contact{{Value: "0501234567"}},
		Emails:   []string{"siti@example.com"},

		Company:           "Acme",
		Department:        "Engineering",
		JobTitle:          "Engineer",
		AttendanceProgram: "Standard",
		JoiningDate:       "2024-02-01",
		CompanyLocation:   "Jakarta",

		Passport: draft.LegalDocument{Number: "B1234567", Issue: "2020-01-10", Expiry: "2028-01-10"},
	}
}

func TestMachine_Next(t *testing.T) {
	t.Run("advances when the current step validates", func(t *testing.T) {
		m := stepper.New()

		next, errs := m.Next(fullDraft(), now)

		assert.Empty(t, errs)
		assert.Equal(t, draft.StepPersonalDetails, next.Current)
		assert.Equal(t, draft.StepIdentity, m.Current, "receiver tidak berubah")
	})

	t.Run("stays put and reports errors on failure", func(t *testing.T) {
		d := fullDraft()
		d.FirstName = ""
		m := stepper.New()

		next, errs := m.Next(d, now)

		assert.Equal(t, draft.StepIdentity, next.Current)
		assert.Equal(t, validation.CodeRequired, errs[validation.FieldFirstName])
	})

	t.Run("only the current step gates the advance", func(t *testing.T) {
		d := fullDraft()
		d.Passport.Number = "" // step 4 rusak, step 0 tidak peduli

		next, errs := stepper.New().Next(d, now)

		assert.Empty(t, errs)
		assert.Equal(t, draft.StepPersonalDetails, next.Current)
	})

	t.Run("no-op at the review step", func(t *testing.T) {
		m := stepper.At(draft.StepReview)

		next, errs := m.Next(fullDraft(), now)

		assert.Empty(t, errs)
		assert.Equal(t, draft.StepReview, next.Current)
	})
}

func TestMachine_Prev(t *testing.T) {
	m := stepper.At(draft.StepContacts)
	assert.Equal(t, draft.StepPersonalDetails, m.Prev().Current)

	// Prev tidak pernah divalidasi dan berhenti di step pertama.
	first := stepper.New()
	assert.Equal(t, draft.StepIdentity, first.Prev().Current)
}

func TestAt_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, draft.StepIdentity, stepper.At(-3).Current)
	assert.Equal(t, draft.StepReview, stepper.At(42).Current)
}

func TestMachine_JumpTo(t *testing.T) {
	t.Run("jump to review on a full draft", func(t *testing.T) {
		m := stepper.New()

		next, blocking, errs := m.JumpTo(draft.StepReview, fullDraft(), now)

		assert.Equal(t, draft.StepReview, next.Current)
		assert.Equal(t, -1, blocking)
		assert.Empty(t, errs)
	})

	t.Run("blocked by the first failing earlier step", func(t *testing.T) {
		d := fullDraft()
		d.Gender = ""          // step 1
		d.Passport.Number = "" // step 4

		m := stepper.At(draft.StepIdentity)
		next, blocking, errs := m.JumpTo(draft.StepReview, d, now)

		assert.Equal(t, draft.StepIdentity, next.Current)
		assert.Equal(t, draft.StepPersonalDetails, blocking)
		assert.Equal(t, validation.CodeRequired, errs[validation.FieldGender])
	})

	t.Run("the target step itself is not validated", func(t *testing.T) {
		d := fullDraft()
		d.Passport.Number = "" // step tujuan boleh invalid

		next, blocking, _ := stepper.New().JumpTo(draft.StepLegalInfo, d, now)

		assert.Equal(t, draft.StepLegalInfo, next.Current)
		assert.Equal(t, -1, blocking)
	})

	t.Run("jumping backwards is always allowed", func(t *testing.T) {
		var empty draft.EmployeeDraft
		m := stepper.At(draft.StepLegalInfo)

		next, blocking, _ := m.JumpTo(draft.StepIdentity, empty, now)

		assert.Equal(t, draft.StepIdentity, next.Current)
		assert.Equal(t, -1, blocking)
	})

	t.Run("out of range target is rejected", func(t *testing.T) {
		m := stepper.At(draft.StepContacts)

		next, blocking, errs := m.JumpTo(9, fullDraft(), now)

		assert.Equal(t, draft.StepContacts, next.Current)
		assert.Equal(t, draft.StepContacts, blocking)
		assert.Empty(t, errs)
	})
}

func TestReachable(t *testing.T) {
	t.Run("empty draft only reaches the first step", func(t *testing.T) {
		var empty draft.EmployeeDraft

		reachable := stepper.Reachable(empty, now)

		assert.True(t, reachable[draft.StepIdentity])
		for step := 1; step < draft.StepCount; step++ {
			assert.False(t, reachable[step], "step %d", step)
		}
	})

	t.Run("full draft reaches everything", func(t *testing.T) {
		reachable := stepper.Reachable(fullDraft(), now)

		for step := 0; step < draft.StepCount; step++ {
			assert.True(t, reachable[step], "step %d", step)
		}
	})

	t.Run("a gap blocks everything after it", func(t *testing.T) {
		d := fullDraft()
		d.Emails = nil // step 2 rusak

		reachable := stepper.Reachable(d, now)

		assert.True(t, reachable[draft.StepContacts], "step yang rusak masih bisa dituju")
		assert.False(t, reachable[draft.StepCompanyInfo])
		assert.False(t, reachable[draft.StepReview])
	})

	t.Run("matches JumpTo for every step", func(t *testing.T) {
		// Reachable dan JumpTo harus memakai aturan yang sama persis.
		d := fullDraft()
		d.JoiningDate = ""

		reachable := stepper.Reachable(d, now)
		for target := 0; target < draft.StepCount; target++ {
			_, blocking, _ := stepper.New().JumpTo(target, d, now)
			assert.Equal(t, reachable[target], blocking == -1, "step %d", target)
		}
	})
}

func TestMachine_CanSubmit(t *testing.T) {
	d := fullDraft()

	t.Run("only on the review step", func(t *testing.T) {
		assert.False(t, stepper.At(draft.StepLegalInfo).CanSubmit(d, now))
		assert.True(t, stepper.At(draft.StepReview).CanSubmit(d, now))
	})

	t.Run("any invalid step blocks submit", func(t *testing.T) {
		bad := fullDraft()
		bad.Birthday = "2010-01-01"

		require.False(t, stepper.At(draft.StepReview).CanSubmit(bad, now))
	})
}
