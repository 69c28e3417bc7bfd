package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"
)

var ErrCreateHistoryEntryCommandIsNotConstructed = errors.New(
	"CreateHistoryEntryCommand must be created via NewCreateHistoryEntryCommand constructor",
)

// CreateHistoryEntryCommand appends a corrective ledger entry. Unlike a status
// update it is recorded even when the status does not change.
type CreateHistoryEntryCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	status   parcel.Status
	comment  *string

	guard guard.ConstructorGuard
}

func NewCreateHistoryEntryCommand(
	parcelID kernel.UUID,
	status parcel.Status,
	comment *string,
) (CreateHistoryEntryCommand, error) {
	var problems []error
	if parcelID.Validate() != nil {
		problems = append(problems, errs.NewValueIsRequiredError("parcelId"))
	}
	problems = append(problems, status.Validate())
	if err := errors.Join(problems...); err != nil {
		return CreateHistoryEntryCommand{}, err
	}

	return CreateHistoryEntryCommand{
		parcelID: parcelID,
		status:   status,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateHistoryEntryCommand) Validate() error {
	return c.guard.Validate(ErrCreateHistoryEntryCommandIsNotConstructed)
}

func (c CreateHistoryEntryCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c CreateHistoryEntryCommand) Status() parcel.Status { return c.status }
func (c CreateHistoryEntryCommand) Comment() *string      { return c.comment }
