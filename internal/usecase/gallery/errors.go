package gallery

import "errors"

var (
	ErrValidation      = errors.New("gallery: invalid input")
	ErrNotEditing      = errors.New("gallery: no media selected for editing")
	ErrDeleteCancelled = errors.New("gallery: delete not confirmed")
	ErrNotFound        = errors.New("gallery: media not in current listing")
)

// ValidationError carries the notice shown to the user for rejected input.
type ValidationError struct {
	Notice string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Notice
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
