package queries

import (
	"context"
	"time"

	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"
)

// CountDeliveredTodayQueryHandler counts DELIVERED ledger entries stamped
// within the current server-local calendar day.
type CountDeliveredTodayQueryHandler struct {
	history ports.HistoryRepository
	now     func() time.Time
}

func NewCountDeliveredTodayQueryHandler(history ports.HistoryRepository) CountDeliveredTodayQueryHandler {
	return CountDeliveredTodayQueryHandler{history: history, now: time.Now}
}

func (h CountDeliveredTodayQueryHandler) Handle(ctx context.Context) (int64, error) {
	from, to := DayBounds(h.now())
	return h.history.CountByStatusBetween(ctx, parcel.Delivered, from, to)
}

// DayBounds returns the server-local calendar day containing t as [start, end).
func DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(time.Local)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}
