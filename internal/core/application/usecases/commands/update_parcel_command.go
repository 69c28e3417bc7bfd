package commands

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// ParcelPatch lists the fields of a partial parcel update. A nil field is left
// untouched. An empty Description clears it. Assignments can be changed but not
// removed.
type ParcelPatch struct {
	Description      *string
	Weight           *decimal.Decimal
	Priority         *parcel.Priority
	DestinationCity  *string
	Status           *parcel.Status
	DeliveryPersonID *kernel.UUID
	ZoneID           *kernel.UUID
}

// UpdateParcelCommand represents a partial update of a parcel. A status that
// differs from the current one is accepted unconditionally and recorded in the
// history without comment.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	patch    ParcelPatch
	weight   *kernel.Weight

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand validates the supplied fields and returns all violations joined.
func NewUpdateParcelCommand(parcelID kernel.UUID, patch ParcelPatch) (UpdateParcelCommand, error) {
	cmd := UpdateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	return cmd, nil
}

func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

func (c UpdateParcelCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c UpdateParcelCommand) Patch() ParcelPatch    { return c.patch }

// Weight returns nil when the weight is not updated.
func (c UpdateParcelCommand) Weight() *kernel.Weight { return c.weight }

func (c *UpdateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *UpdateParcelCommand) setPatch(patch ParcelPatch) error {
	var problems []error

	if patch.Weight != nil {
		weight, err := kernel.NewWeight(*patch.Weight)
		if err != nil {
			problems = append(problems, err)
		} else {
			c.weight = &weight
		}
	}
	if patch.Priority != nil {
		problems = append(problems, patch.Priority.Validate())
	}
	if patch.Status != nil {
		problems = append(problems, patch.Status.Validate())
	}
	if patch.DeliveryPersonID != nil && patch.DeliveryPersonID.Validate() != nil {
		problems = append(problems, errs.NewValueIsRequiredError("deliveryPersonId"))
	}
	if patch.ZoneID != nil && patch.ZoneID.Validate() != nil {
		problems = append(problems, errs.NewValueIsRequiredError("zoneId"))
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}
	c.patch = patch
	return nil
}
