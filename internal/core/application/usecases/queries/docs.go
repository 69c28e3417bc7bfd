// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers read through the repositories outside of any unit of work; the
// grouping report reads the tables directly.
package queries
