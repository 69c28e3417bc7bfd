package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/guard"
)

var ErrDeleteHistoryEntryCommandIsNotConstructed = errors.New(
	"DeleteHistoryEntryCommand must be created via NewDeleteHistoryEntryCommand constructor",
)

// DeleteHistoryEntryCommand removes one ledger entry. It rewrites the audit
// trail; access is restricted by the transport.
type DeleteHistoryEntryCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewDeleteHistoryEntryCommand(entryID kernel.UUID) (DeleteHistoryEntryCommand, error) {
	if err := entryID.Validate(); err != nil {
		return DeleteHistoryEntryCommand{}, err
	}
	return DeleteHistoryEntryCommand{entryID: entryID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteHistoryEntryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteHistoryEntryCommandIsNotConstructed)
}

func (c DeleteHistoryEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}
