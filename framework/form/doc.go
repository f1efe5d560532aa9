// Package form holds the session state of an HTML-style form: values,
// touched and dirty flags, and the latest validation result.
//
// The controller follows the validate-on-blur contract:
//
//	ctl := form.New([]string{"name", "email"}, validator, submit)
//
//	ctl.SetFieldValue("email", "bad") // no validation while typing
//	ctl.OnFieldBlur("email")          // touch + validate the whole record
//	ctl.FieldError("email")           // *validation.FieldError, visible now
//	ctl.FieldError("name")            // nil: untouched fields stay quiet
//
//	if ctl.Submit() {                 // touches all, validates, gates submit
//	    // submit already received a copy of the values
//	}
//
// The validator always receives the complete record so cross-field rules
// (a confirmation matching its original) see current values.
package form
