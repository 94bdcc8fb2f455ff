// Package binder fills request structs from HTTP requests.
//
// Each binder reads one source and only touches fields carrying its tag:
//
//   - Query(): `query:"name"` from the URL query string
//   - Form(): `form:"name"` from an application/x-www-form-urlencoded body
//   - Path(extractor): `path:"name"` from router path parameters
//
// Binders are plain func(*http.Request, any) error values and are meant to be
// stacked with handler.WithBinders. A binder that has nothing to read for the
// request returns ErrBinderNotApplicable and the handler moves on.
//
//	type FixRequest struct {
//	    Check string `query:"check"`
//	    ID    string `form:"id"`
//	    Field string `form:"field"`
//	    Value string `form:"value"`
//	}
//
// Supported field types are strings, signed and unsigned integers, floats,
// booleans, pointers to those for optional values, and slices for repeated
// parameters. String values are stored exactly as sent.
package binder
