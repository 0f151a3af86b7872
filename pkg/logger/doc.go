// Package logger builds the service's *slog.Logger.
//
// New assembles a JSON or text handler from functional options and wraps it in
// a decorator that pulls request-scoped values (request id, user id) out of
// context.Context on every record. NewFromConfig does the same from a Config
// loaded via pkg/config.
//
// Attribute helpers in attr.go keep key names consistent across packages:
//
//	log := logger.New(logger.WithEnvironment("production", "forum"))
//	log.InfoContext(ctx, "user authenticated",
//		logger.UserID(user.ID),
//		logger.Component("authenticate"),
//	)
//
// Plaintext passwords and access tokens must never be passed to a logger.
package logger
