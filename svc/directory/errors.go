package directory

import "errors"

var (
	ErrNotFound         = errors.New("therapist not found")
	ErrFieldNotEditable = errors.New("field is not editable")
	ErrQueryFailed      = errors.New("directory query failed")
	ErrUpdateFailed     = errors.New("directory update failed")
)
