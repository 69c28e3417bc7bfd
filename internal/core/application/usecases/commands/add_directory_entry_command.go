package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"
)

var ErrAddDirectoryEntryCommandIsNotConstructed = errors.New(
	"AddDirectoryEntryCommand must be created via NewAddDirectoryEntryCommand constructor",
)

// AddDirectoryEntryCommand registers a zone, delivery person, sender, recipient or product.
type AddDirectoryEntryCommand struct { //nolint:recvcheck //using for validation
	entity directory.Entity
	guard  guard.ConstructorGuard
}

func NewAddDirectoryEntryCommand(entity directory.Entity) (AddDirectoryEntryCommand, error) {
	if entity == nil {
		return AddDirectoryEntryCommand{}, errs.NewValueIsRequiredError("entity")
	}
	if err := entity.Kind().Validate(); err != nil {
		return AddDirectoryEntryCommand{}, err
	}
	return AddDirectoryEntryCommand{entity: entity, guard: guard.NewConstructorGuard()}, nil
}

func (c AddDirectoryEntryCommand) Validate() error {
	return c.guard.Validate(ErrAddDirectoryEntryCommandIsNotConstructed)
}

func (c AddDirectoryEntryCommand) Entity() directory.Entity {
	return c.entity
}
