// Package stepper is the wizard's step state machine. It is a synchronous,
// purely local transition over the in-memory draft: nothing here suspends,
// caches or talks to the network. Reachability is recomputed from the current
// draft on every call, so fixing an earlier step immediately unlocks later
// steps without revisiting the ones in between.
package stepper

import (
	"time"

	"go-onboarding/internal/draft"
	"go-onboarding/internal/draft/validation"
)

// Machine positions a wizard session on one of the six steps. It is a value
// type: transitions return a new Machine and leave the receiver alone.
type Machine struct {
	Current int
}

func New() Machine {
	return Machine{Current: draft.StepIdentity}
}

// At clamps an arbitrary stored index into the valid step range.
func At(step int) Machine {
	if step < draft.StepIdentity {
		step = draft.StepIdentity
	}
	if step > draft.StepReview {
		step = draft.StepReview
	}
	return Machine{Current: step}
}

// Next validates the current step against d. On success the machine advances
// one step; on failure it stays put and the field errors are returned for
// display. Next at the last step is a no-op.
func (m Machine) Next(d draft.EmployeeDraft, now time.Time) (Machine, validation.Errors) {
	errs := validation.ValidateStep(m.Current, d, now)
	if len(errs) > 0 {
		return m, errs
	}
	if m.Current >= draft.StepReview {
		return m, nil
	}
	return Machine{Current: m.Current + 1}, nil
}

// Prev is always allowed and never validates.
func (m Machine) Prev() Machine {
	if m.Current <= draft.StepIdentity {
		return m
	}
	return Machine{Current: m.Current - 1}
}

// JumpTo moves directly to target when every step before it validates against
// the current draft. When blocked it returns the machine unchanged together
// with the first failing step and that step's errors; when the jump succeeds
// the returned blocking step is -1.
func (m Machine) JumpTo(target int, d draft.EmployeeDraft, now time.Time) (Machine, int, validation.Errors) {
	if target < draft.StepIdentity || target > draft.StepReview {
		return m, m.Current, nil
	}

	for step := draft.StepIdentity; step < target; step++ {
		if errs := validation.ValidateStep(step, d, now); len(errs) > 0 {
			return m, step, errs
		}
	}

	return Machine{Current: target}, -1, nil
}

// Reachable reports, per step, whether a jump to it would currently succeed.
// Recomputed fresh on every call; never cached.
func Reachable(d draft.EmployeeDraft, now time.Time) [draft.StepCount]bool {
	var reachable [draft.StepCount]bool
	reachable[draft.StepIdentity] = true

	for step := 1; step < draft.StepCount; step++ {
		if !reachable[step-1] {
			break
		}
		if len(validation.ValidateStep(step-1, d, now)) == 0 {
			reachable[step] = true
		}
	}
	return reachable
}

// CanSubmit reports whether the terminal submit action is available: the
// machine must sit on the review step and the whole draft must validate.
func (m Machine) CanSubmit(d draft.EmployeeDraft, now time.Time) bool {
	if m.Current != draft.StepReview {
		return false
	}
	return validation.FirstInvalid(d, now) == -1
}
