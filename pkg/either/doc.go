// Package either provides a two-variant result container used by use cases
// in place of error returns for expected business outcomes.
//
// A use case returns Left with a business failure or Right with its payload.
// Callers must branch on IsLeft/IsRight (or use the comma-ok accessors)
// before reading a side:
//
//	res := either.Right[*auth.Error, auth.AuthenticateResponse](resp)
//	if failure, ok := res.Left(); ok {
//		// handle failure
//	}
//	token := res.MustRight().AccessToken
//
// Unexpected infrastructure failures are not carried in Either; they travel
// on the regular error return next to it.
package either
