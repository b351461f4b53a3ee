package modal

import (
	"errors"
	"fmt"
)

// Contract violations reported by Props.Validate.
var (
	ErrNoOnClose  = errors.New("modal: OnClose is required")
	ErrNoActions  = errors.New("modal: Actions is required (use an empty slice for no buttons)")
	ErrEmptyLabel = errors.New("label is required")
	ErrNoOnClick  = errors.New("OnClick is required")
)

// ActionError reports a violation in a single action.
type ActionError struct {
	Index int
	Err   error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("modal: action %d: %v", e.Index, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// Validate checks the props against the component contract. The result
// joins every violation; nil means the props are complete.
func (p Props) Validate() error {
	return errors.Join(p.violations()...)
}

func (p Props) violations() []error {
	var errs []error
	if p.OnClose == nil {
		errs = append(errs, ErrNoOnClose)
	}
	if p.Actions == nil {
		errs = append(errs, ErrNoActions)
	}
	for i, a := range p.Actions {
		if a.Label == "" {
			errs = append(errs, &ActionError{Index: i, Err: ErrEmptyLabel})
		}
		if a.OnClick == nil {
			errs = append(errs, &ActionError{Index: i, Err: ErrNoOnClick})
		}
	}
	return errs
}
