// Package session manages simulator session lifecycle: creation, lookup,
// expiry cleanup, and optional JSON file persistence. Each session owns one
// Simulation; the manager serializes nothing beyond its own maps, so
// per-session command execution is synchronized by the service layer.
package session
