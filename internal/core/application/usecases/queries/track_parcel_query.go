package queries

import (
	"context"
	"errors"
	"strings"

	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery is the public tracking lookup. Knowing the recipient's email
// is what authorizes the caller.
type TrackParcelQuery struct {
	parcelID kernel.UUID
	email    string
	guard    guard.ConstructorGuard
}

func NewTrackParcelQuery(parcelID kernel.UUID, email string) (TrackParcelQuery, error) {
	var problems []error
	if parcelID.Validate() != nil {
		problems = append(problems, errs.NewValueIsRequiredError("parcelId"))
	}
	if strings.TrimSpace(email) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if err := errors.Join(problems...); err != nil {
		return TrackParcelQuery{}, err
	}
	return TrackParcelQuery{parcelID: parcelID, email: email, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingView is the resolved parcel with its full timeline, oldest entry
// first.
type TrackingView struct {
	Parcel   views.ParcelView
	Timeline []views.HistoryEntryView
}

type TrackParcelQueryHandler struct {
	parcels   ports.ParcelRepository
	history   ports.HistoryRepository
	directory ports.Directory
}

func NewTrackParcelQueryHandler(
	parcels ports.ParcelRepository,
	history ports.HistoryRepository,
	directory ports.Directory,
) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{parcels: parcels, history: history, directory: directory}
}

// Handle answers BadRequest when the email is not the recipient's, compared
// ignoring case and surrounding spaces.
func (h TrackParcelQueryHandler) Handle(ctx context.Context, query TrackParcelQuery) (TrackingView, error) {
	if err := query.Validate(); err != nil {
		return TrackingView{}, err
	}

	p, err := h.parcels.Get(ctx, query.parcelID)
	if err != nil {
		return TrackingView{}, err
	}

	entity, err := ports.LookupEntity(ctx, h.directory, directory.KindRecipient, "recipientId", p.RecipientID())
	if err != nil {
		return TrackingView{}, err
	}
	recipient, ok := entity.(*directory.Recipient)
	if !ok || !recipient.Contact().EmailMatches(query.email) {
		return TrackingView{}, errs.NewBadRequestError("email does not match the parcel recipient")
	}

	view, err := views.NewResolver(h.directory).Resolve(ctx, p)
	if err != nil {
		return TrackingView{}, err
	}

	timeline, err := h.history.Timeline(ctx, p.ID())
	if err != nil {
		return TrackingView{}, err
	}

	return TrackingView{Parcel: view, Timeline: views.HistoryList(timeline)}, nil
}
