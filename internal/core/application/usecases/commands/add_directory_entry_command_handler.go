package commands

import (
	"context"

	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/ports"
)

// AddDirectoryEntryCommandHandler stores zones, delivery persons, senders,
// recipients and products.
type AddDirectoryEntryCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewAddDirectoryEntryCommandHandler(uowFactory ports.UnitOfWorkFactory) AddDirectoryEntryCommandHandler {
	return AddDirectoryEntryCommandHandler{uowFactory: uowFactory}
}

// Handle stores the entity. A delivery person's zone must exist; uniqueness is
// enforced by the store and surfaces as errs.DuplicateError.
func (h AddDirectoryEntryCommandHandler) Handle(ctx context.Context, cmd AddDirectoryEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DirectoryRepository()
	if person, ok := cmd.Entity().(*directory.DeliveryPerson); ok && person.ZoneID() != nil {
		if err := ports.RequireEntity(ctx, repo, directory.KindZone, "zoneId", *person.ZoneID()); err != nil {
			return err
		}
	}

	if err := repo.Add(ctx, cmd.Entity()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
