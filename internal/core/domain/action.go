package domain

// ActionOutcome names the terminal state of a form action.
type ActionOutcome string

const (
	OutcomeRedirect          ActionOutcome = "redirect"
	OutcomeValidationFailure ActionOutcome = "validation_failure"
	OutcomeOK                ActionOutcome = "ok"
)

// FormState is the state a form round-trips through an action: field errors
// plus one aggregate message. The zero value is a pristine form.
type FormState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// HasErrors reports whether the state carries any field error.
func (s FormState) HasErrors() bool {
	return len(s.Errors) > 0
}

// ActionResult is what an action returns instead of navigating itself.
// Callers switch on Outcome.
type ActionResult struct {
	Outcome    ActionOutcome
	RedirectTo string
	State      FormState
}

// Redirect ends the action by sending the caller to path.
func Redirect(path string) ActionResult {
	return ActionResult{Outcome: OutcomeRedirect, RedirectTo: path}
}

// ValidationFailure hands the form state back for re-display.
func ValidationFailure(state FormState) ActionResult {
	return ActionResult{Outcome: OutcomeValidationFailure, State: state}
}

// OK completes the action with the caller staying on its current view.
func OK() ActionResult {
	return ActionResult{Outcome: OutcomeOK}
}
