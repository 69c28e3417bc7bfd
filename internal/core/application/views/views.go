// Package views builds the read models returned by parcel use cases.
//
// A ParcelSummary carries only ids. A ParcelView has its references resolved
// through the entity directory; the resolution is an explicit call made by the
// use case that needs it.
package views

import (
	"context"
	"time"

	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ParcelSummary is a parcel as listed by searches and filters: references stay
// ids, Weight is in kilograms.
type ParcelSummary struct {
	ID               kernel.UUID
	Description      *string
	Weight           decimal.Decimal
	Status           parcel.Status
	Priority         parcel.Priority
	DestinationCity  string
	CreatedAt        time.Time
	SenderID         kernel.UUID
	RecipientID      kernel.UUID
	DeliveryPersonID *kernel.UUID
	ZoneID           *kernel.UUID
}

// Summarize copies the parcel fields without touching the directory.
func Summarize(p *parcel.Parcel) ParcelSummary {
	return ParcelSummary{
		ID:               p.ID(),
		Description:      p.Description(),
		Weight:           p.Weight().Kilograms(),
		Status:           p.Status(),
		Priority:         p.Priority(),
		DestinationCity:  p.DestinationCity(),
		CreatedAt:        p.CreatedAt(),
		SenderID:         p.SenderID(),
		RecipientID:      p.RecipientID(),
		DeliveryPersonID: p.DeliveryPersonID(),
		ZoneID:           p.ZoneID(),
	}
}

// SummarizeAll keeps the input order and never returns nil.
func SummarizeAll(parcels []*parcel.Parcel) []ParcelSummary {
	out := make([]ParcelSummary, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, Summarize(p))
	}
	return out
}

// Ref is a resolved directory reference.
type Ref struct {
	ID   kernel.UUID
	Name string
}

// LineItemView is one line item with its product name. UnitPrice is the price
// captured when the parcel was created, not the current catalogue price.
type LineItemView struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ParcelView is the detailed parcel returned by the get and tracking use cases.
// DeliveryPerson and Zone are nil while the parcel is unassigned.
type ParcelView struct {
	ParcelSummary
	Sender         Ref
	Recipient      Ref
	DeliveryPerson *Ref
	Zone           *Ref
	Items          []LineItemView
	TotalValue     decimal.Decimal
}

// HistoryEntryView is one status history entry. Comment is nil when none was
// given.
type HistoryEntryView struct {
	ID        kernel.UUID
	ParcelID  kernel.UUID
	Status    parcel.Status
	Timestamp time.Time
	Comment   *string
}

// History converts a stored history entry.
func History(e parcel.HistoryEntry) HistoryEntryView {
	return HistoryEntryView{
		ID:        e.ID(),
		ParcelID:  e.ParcelID(),
		Status:    e.Status(),
		Timestamp: e.Timestamp(),
		Comment:   e.Comment(),
	}
}

// HistoryList keeps the input order and never returns nil.
func HistoryList(entries []parcel.HistoryEntry) []HistoryEntryView {
	out := make([]HistoryEntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, History(e))
	}
	return out
}

// Resolver loads the directory entities a parcel references.
type Resolver struct {
	directory ports.Directory
}

func NewResolver(directory ports.Directory) Resolver {
	return Resolver{directory: directory}
}

// Resolve fails with errs.ObjectNotFoundError when a reference no longer resolves.
func (r Resolver) Resolve(ctx context.Context, p *parcel.Parcel) (ParcelView, error) {
	view := ParcelView{
		ParcelSummary: Summarize(p),
		TotalValue:    p.TotalValue(),
	}

	var err error
	if view.Sender, err = r.ref(ctx, directory.KindSender, p.SenderID()); err != nil {
		return ParcelView{}, err
	}
	if view.Recipient, err = r.ref(ctx, directory.KindRecipient, p.RecipientID()); err != nil {
		return ParcelView{}, err
	}
	if id := p.DeliveryPersonID(); id != nil {
		ref, refErr := r.ref(ctx, directory.KindDeliveryPerson, *id)
		if refErr != nil {
			return ParcelView{}, refErr
		}
		view.DeliveryPerson = &ref
	}
	if id := p.ZoneID(); id != nil {
		ref, refErr := r.ref(ctx, directory.KindZone, *id)
		if refErr != nil {
			return ParcelView{}, refErr
		}
		view.Zone = &ref
	}

	view.Items = make([]LineItemView, 0, len(p.Items()))
	for _, item := range p.Items() {
		product, refErr := r.ref(ctx, directory.KindProduct, item.ProductID())
		if refErr != nil {
			return ParcelView{}, refErr
		}
		view.Items = append(view.Items, LineItemView{
			ProductID:   item.ProductID(),
			ProductName: product.Name,
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
		})
	}
	return view, nil
}

// ResolveAll resolves parcels in order.
func (r Resolver) ResolveAll(ctx context.Context, parcels []*parcel.Parcel) ([]ParcelView, error) {
	out := make([]ParcelView, 0, len(parcels))
	for _, p := range parcels {
		view, err := r.Resolve(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (r Resolver) ref(ctx context.Context, kind directory.Kind, id kernel.UUID) (Ref, error) {
	entity, err := r.directory.Get(ctx, kind, id)
	if err != nil {
		return Ref{}, err
	}
	return Ref{ID: entity.ID(), Name: entity.DisplayName()}, nil
}
