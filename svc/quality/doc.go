// Package quality finds therapist records whose address or contact fields fail
// the swissfield validators.
//
// A fixed registry of named checks (zip, canton, email, phone) binds each field
// to its validator and to a store predicate. The SQL half of every predicate is
// built from the patterns exported by swissfield, and every row returned by the
// store is re-verified with the validator before being reported, so a Finding
// always describes a value the validator rejects.
//
// Basic usage:
//
//	scanner := quality.NewScanner(store,
//		quality.WithCache(quality.NewMemoryCache(30*time.Second)),
//		quality.WithLogger(log),
//	)
//	findings, err := scanner.Scan(ctx, "zip", 100)
//	n, err := scanner.CountFailures(ctx, "canton")
//	summary, err := scanner.Summary(ctx)
//
// Unknown check names are not errors: Scan returns no findings, CountFailures
// returns zero and Describe returns "no description".
package quality
