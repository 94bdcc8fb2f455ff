package remediation

import (
	"errors"

	"github.com/dmitrymomot/therapist-admin/svc/directory"
)

// FailureMessage is shown to operators for any failed write.
const FailureMessage = "Failed to update"

var (
	ErrFieldNotEditable = directory.ErrFieldNotEditable
	ErrRecordNotFound   = errors.New("therapist record not found")
	ErrUpdateFailed     = errors.New("failed to update")
	ErrInvalidEdit      = errors.New("invalid edit request")
	ErrRejected         = errors.New("value rejected by validation")
)
