// Package validation provides Laravel-style input validation over flat
// string maps.
//
// # Overview
//
// Rules are expressed as pipe-separated strings on a map of field names.
// Each field is checked left to right and stops at its first failing rule,
// so a field carries at most one error.
//
// # Basic Usage
//
//	v := validation.Make(map[string]string{
//	    "email":           "alice@example.com",
//	    "password":        "secret1",
//	    "confirmPassword": "secret1",
//	}, validation.Rules{
//	    "email":           "required|email",
//	    "password":        "required|password:6",
//	    "confirmPassword": "required|same:password",
//	})
//
//	if v.Fails() {
//	    // v.Errors().Kind("email") == validation.KindInvalidFormat
//	    // JSON: {"errors": {"email": {"kind": "invalid_format", "message": "..."}}}
//	}
//
// # Available Rules
//
// Presence:
//   - required — non-empty after trimming (KindEmptyField)
//   - nullable — empty values skip the remaining rules
//
// Format (KindInvalidFormat):
//   - email — local-part "@" domain containing a dot
//   - regex:pattern — must match the pattern
//
// Length (KindInvalidLength), counted in runes:
//   - min:n, max:n, between:min,max
//
// Strength (KindTooWeak):
//   - password:n — at least n runes; n <= 0 disables the check
//
// Comparison (KindMismatch):
//   - same:other — must equal data[other]
//   - confirmed  — must equal data[field+"_confirmation"]
//
// # Options
//
//	validation.Make(data, rules,
//	    validation.WithTrim(),
//	    validation.WithAttributes(map[string]string{"confirmPassword": "confirm password"}),
//	    validation.WithMessages(map[string]string{"confirmPassword.same": "Passwords do not match"}),
//	)
package validation
