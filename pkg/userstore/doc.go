// Package userstore provides auth.UserRepository implementations backed by
// memory, PostgreSQL and MongoDB. All of them store emails as given; callers
// normalize before lookup and insert.
package userstore
