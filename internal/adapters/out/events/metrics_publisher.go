package events

import (
	"context"

	"parceltracker/internal/core/domain/model/parcel"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPublisher counts committed parcel events by name and, for status
// changes, by the new status.
type MetricsPublisher struct {
	published *prometheus.CounterVec
}

func NewMetricsPublisher(registerer prometheus.Registerer) *MetricsPublisher {
	return &MetricsPublisher{
		published: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "parceltracker",
				Name:      "parcel_events_total",
				Help:      "Parcel domain events committed.",
			},
			[]string{"event", "status"},
		),
	}
}

func (p *MetricsPublisher) Publish(_ context.Context, events ...parcel.Event) error {
	for _, event := range events {
		status := ""
		switch e := event.(type) {
		case parcel.CreatedEvent:
			status = parcel.Created.String()
		case parcel.StatusChangedEvent:
			status = e.To.String()
		}
		p.published.WithLabelValues(event.EventName(), status).Inc()
	}
	return nil
}

// Counter exposes the underlying vector for tests and dashboards.
func (p *MetricsPublisher) Counter() *prometheus.CounterVec {
	return p.published
}
