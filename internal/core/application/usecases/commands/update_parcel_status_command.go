package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand is the status change a delivery person makes on a
// parcel assigned to them.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID         kernel.UUID
	status           parcel.Status
	deliveryPersonID kernel.UUID
	comment          *string

	guard guard.ConstructorGuard
}

func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	status parcel.Status,
	actingDeliveryPersonID kernel.UUID,
	comment *string,
) (UpdateParcelStatusCommand, error) {
	cmd := UpdateParcelStatusCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	var problems []error
	if parcelID.Validate() != nil {
		problems = append(problems, errs.NewValueIsRequiredError("parcelId"))
	}
	if actingDeliveryPersonID.Validate() != nil {
		problems = append(problems, errs.NewValueIsRequiredError("deliveryPersonId"))
	}
	problems = append(problems, status.Validate())
	if err := errors.Join(problems...); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	cmd.parcelID = parcelID
	cmd.status = status
	cmd.deliveryPersonID = actingDeliveryPersonID
	return cmd, nil
}

func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID         { return c.parcelID }
func (c UpdateParcelStatusCommand) Status() parcel.Status         { return c.status }
func (c UpdateParcelStatusCommand) DeliveryPersonID() kernel.UUID { return c.deliveryPersonID }
func (c UpdateParcelStatusCommand) Comment() *string              { return c.comment }
