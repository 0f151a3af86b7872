// Package redis opens go-redis clients from a connection URL, retrying until
// the server answers PING, and exposes a readiness probe.
package redis
