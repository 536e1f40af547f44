// Package validator provides composable validation rules that collect every failure
// into ValidationErrors instead of stopping at the first one.
//
//	err := validator.Apply(
//		validator.Required("name", name),
//		validator.ValidEmail("email", email),
//		validator.MaxLen("message", message, 5000),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		flag(errs.Fields())
//	}
//
// Each ValidationError carries a translation key and values so callers can localize messages.
package validator
