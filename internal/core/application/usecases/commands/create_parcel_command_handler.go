package commands

import (
	"context"
	"time"

	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"

	"github.com/shopspring/decimal"
)

// CreateParcelCommandHandler registers a parcel together with its line items
// and its first history entry in one transaction.
type CreateParcelCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewCreateParcelCommandHandler(uowFactory ports.UnitOfWorkFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{uowFactory: uowFactory}
}

// Handle checks that the sender, the recipient and every product exist, then
// persists the parcel and returns it with its references resolved.
// Every field was validated by NewCreateParcelCommand, so invalid input is
// rejected before the directory is consulted.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (views.ParcelView, error) {
	if err := cmd.Validate(); err != nil {
		return views.ParcelView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.ParcelView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dir := uow.DirectoryRepository()
	if err := ports.RequireEntity(ctx, dir, directory.KindSender, "senderId", cmd.SenderID()); err != nil {
		return views.ParcelView{}, err
	}
	if err := ports.RequireEntity(ctx, dir, directory.KindRecipient, "recipientId", cmd.RecipientID()); err != nil {
		return views.ParcelView{}, err
	}

	items := make([]parcel.LineItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		entity, err := ports.LookupEntity(ctx, dir, directory.KindProduct, "productId", input.ProductID)
		if err != nil {
			return views.ParcelView{}, err
		}

		price := decimal.Zero
		if product, ok := entity.(*directory.Product); ok {
			price = product.Price()
		}
		if input.UnitPrice != nil {
			price = *input.UnitPrice
		}
		item, err := parcel.NewLineItem(input.ProductID, input.Quantity, price)
		if err != nil {
			return views.ParcelView{}, err
		}
		items = append(items, item)
	}

	p, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.Description(),
		cmd.Weight(),
		cmd.Priority(),
		cmd.DestinationCity(),
		cmd.SenderID(),
		cmd.RecipientID(),
		items,
		time.Now(),
	)
	if err != nil {
		return views.ParcelView{}, err
	}

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return views.ParcelView{}, err
	}
	if err = uow.HistoryRepository().Append(ctx, p.PullHistory()...); err != nil {
		return views.ParcelView{}, err
	}

	view, err := views.NewResolver(dir).Resolve(ctx, p)
	if err != nil {
		return views.ParcelView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.ParcelView{}, err
	}

	return view, nil
}
