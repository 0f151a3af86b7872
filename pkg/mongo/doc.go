// Package mongo opens MongoDB clients with mongo-driver v2 using settings
// loaded from the environment, retrying the initial connection and exposing a
// ping-based readiness probe.
package mongo
