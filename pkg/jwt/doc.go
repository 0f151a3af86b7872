// Package jwt signs and verifies HS256 JSON Web Tokens and provides HTTP
// middleware plus context helpers for protected routes.
//
// Signing and verification are delegated to github.com/golang-jwt/jwt/v5;
// this package pins the algorithm, maps library failures onto a small set of
// sentinel errors and keeps the key immutable for the lifetime of a Service.
//
// # Usage
//
//	svc, err := jwt.NewFromString(secret, jwt.WithIssuer("forum"))
//	if err != nil {
//		// handle error
//	}
//
//	token, err := svc.Generate(jwt.MapClaims{"sub": userID})
//
//	var claims jwt.StandardClaims
//	if err := svc.Parse(token, &claims); err != nil {
//		// ErrExpiredToken, ErrInvalidSignature, ErrInvalidToken, ...
//	}
//
//	r.With(jwt.Middleware(svc)).Get("/me", me)
//
// Inside a protected handler jwt.Subject(ctx) returns the "sub" claim.
package jwt
