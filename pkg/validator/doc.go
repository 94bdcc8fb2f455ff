// Package validator builds declarative validation rules and collects their
// failures into ValidationErrors.
//
// A Rule pairs a check with translation-ready error metadata. Apply runs a
// list of rules and returns nil or a ValidationErrors value:
//
//	err := validator.Apply(
//		validator.RequiredString("id", edit.ID),
//		validator.SwissPostalCode("zip", edit.Value),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// verrs.Get("zip") holds the reasons for the zip field
//	}
//
// The Swiss rules delegate to pkg/swissfield, so a rejected edit reports the
// same reason the data-quality scanner shows for that value.
package validator
