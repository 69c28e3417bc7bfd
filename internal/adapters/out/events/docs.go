// Package events delivers parcel domain events after commit.
//
// NatsPublisher sends each event as JSON on the subject parcels.<name>,
// MetricsPublisher counts events in Prometheus and Fanout hands events to
// several publishers. The unit of work calls the configured publisher once per
// committed transaction.
package events
