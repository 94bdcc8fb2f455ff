package swissfield

// Reasons reported in Result.Error.
const (
	ReasonEmptyZip           = "Empty ZIP"
	ReasonInvalidZipFormat   = "Invalid Format (must be 4 digits)"
	ReasonEmptyCanton        = "Empty Canton"
	ReasonInvalidCanton      = "Invalid Canton Code"
	ReasonInvalidEmailFormat = "Invalid Email Format"
	ReasonPhoneTooShort      = "Too Short"
	ReasonUnknownKind        = "Unknown Field"
)

// Result is the verdict for a single field value.
// Error is set iff Valid is false. Normalized is set only when the value is valid
// and a canonical form exists.
type Result struct {
	Valid      bool
	Error      string
	Normalized *string
}

// Value returns the normalized value and whether one exists.
func (r Result) Value() (string, bool) {
	if r.Normalized == nil {
		return "", false
	}
	return *r.Normalized, true
}

func valid(normalized string) Result {
	return Result{Valid: true, Normalized: &normalized}
}

func invalid(reason string) Result {
	return Result{Error: reason}
}

// Kind identifies which validator applies to a value.
type Kind string

const (
	KindPostalCode Kind = "postal_code"
	KindCanton     Kind = "canton"
	KindEmail      Kind = "email"
	KindPhone      Kind = "phone"
)

// Kinds lists every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindPostalCode, KindCanton, KindEmail, KindPhone}
}

// Validate dispatches to the validator for kind.
// Unknown kinds are reported as invalid rather than panicking.
func Validate(kind Kind, value string) Result {
	switch kind {
	case KindPostalCode:
		return ValidatePostalCode(value)
	case KindCanton:
		return ValidateCantonCode(value)
	case KindEmail:
		return ValidateEmail(value)
	case KindPhone:
		return ValidatePhone(value)
	default:
		return invalid(ReasonUnknownKind)
	}
}

// ValidatePtr validates a nullable value; nil is treated as absent.
func ValidatePtr(kind Kind, value *string) Result {
	if value == nil {
		return Validate(kind, "")
	}
	return Validate(kind, *value)
}
