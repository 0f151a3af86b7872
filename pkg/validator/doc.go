// Package validator checks request payloads with composable rules.
//
// A Rule pairs a check with the error reported when the check fails. Apply
// runs every rule and returns ValidationErrors listing all failures, so a
// client sees every invalid field at once:
//
//	err := validator.Apply(
//		validator.Required("email", req.Email),
//		validator.ValidEmail("email", req.Email),
//		validator.MinLen("password", req.Password, 6),
//	)
//	if validator.IsValidationError(err) {
//		// respond 422 with validator.ExtractValidationErrors(err).Map()
//	}
package validator
