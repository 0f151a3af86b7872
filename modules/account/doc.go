// Package account exposes password authentication over HTTP.
//
// PasswordService serves POST /sessions (login, optionally throttled) and
// POST /accounts (registration). ProfileService serves GET /me for holders
// of a valid bearer token. Router mounts both.
package account
