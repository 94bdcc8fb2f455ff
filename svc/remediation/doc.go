// Package remediation overwrites a single field of a directory record.
//
// Edits are unchecked by default: the submitted value is stored exactly as
// typed, whitespace included. WithValidation(FieldValidation()) rejects values
// the swissfield validators would flag. Concurrent edits to the same record are
// last-write-wins.
//
//	svc := remediation.NewService(store,
//		remediation.WithOnApplied(func(ctx context.Context, _ remediation.Edit) {
//			_ = scanner.Invalidate(ctx)
//		}),
//	)
//	err := svc.Apply(ctx, remediation.Edit{ID: id, Field: "zip", Value: "8001"})
package remediation
