// Package commands contains the use cases that change parcel state.
//
// Every handler follows the same shape: validate the command, open a unit of
// work, load what it needs, let the aggregate apply the change, persist the
// parcel with the history entries it recorded and commit. A deferred rollback
// undoes every write when any step fails. Domain events are published by the
// unit of work after the commit.
package commands
