package commands

import (
	"errors"
	"fmt"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// LineItemInput is one requested product of a new parcel. A nil UnitPrice takes
// the product's catalog price at creation time.
type LineItemInput struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice *decimal.Decimal
}

// CreateParcelCommand represents a request to register a new parcel in CREATED status.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(kernel.NewUUID(), nil, decimal.RequireFromString("2.5"),
//	    parcel.Normal, "Lyon", senderID, recipientID, []LineItemInput{{ProductID: pid, Quantity: 2}})
//	if err != nil {
//	    return err // every invalid field is reported
//	}
//	view, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID        kernel.UUID
	description     *string
	weight          kernel.Weight
	priority        parcel.Priority
	destinationCity string
	senderID        kernel.UUID
	recipientID     kernel.UUID
	items           []LineItemInput

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand validates every field, including the description and
// destination city rules of the aggregate, and returns all violations joined.
// The handler never reaches the directory with invalid input.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	description *string,
	weightKg decimal.Decimal,
	priority parcel.Priority,
	destinationCity string,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	items []LineItemInput,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDescription(description),
		cmd.setDestinationCity(destinationCity),
		cmd.setWeight(weightKg),
		cmd.setPriority(priority),
		cmd.setParty("senderId", &cmd.senderID, senderID),
		cmd.setParty("recipientId", &cmd.recipientID, recipientID),
		cmd.setItems(items),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// Accessors return the normalized values. Description is nil when blank.
func (c CreateParcelCommand) ParcelID() kernel.UUID     { return c.parcelID }
func (c CreateParcelCommand) Description() *string      { return c.description }
func (c CreateParcelCommand) Weight() kernel.Weight     { return c.weight }
func (c CreateParcelCommand) Priority() parcel.Priority { return c.priority }
func (c CreateParcelCommand) DestinationCity() string   { return c.destinationCity }
func (c CreateParcelCommand) SenderID() kernel.UUID     { return c.senderID }
func (c CreateParcelCommand) RecipientID() kernel.UUID  { return c.recipientID }
func (c CreateParcelCommand) Items() []LineItemInput    { return c.items }

func (c *CreateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *CreateParcelCommand) setDescription(description *string) error {
	normalized, err := parcel.NormalizeDescription(description)
	if err != nil {
		return err
	}
	c.description = normalized
	return nil
}

func (c *CreateParcelCommand) setDestinationCity(city string) error {
	normalized, err := parcel.NormalizeDestinationCity(city)
	if err != nil {
		return err
	}
	c.destinationCity = normalized
	return nil
}

func (c *CreateParcelCommand) setWeight(kg decimal.Decimal) error {
	weight, err := kernel.NewWeight(kg)
	if err != nil {
		return err
	}
	c.weight = weight
	return nil
}

func (c *CreateParcelCommand) setPriority(priority parcel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *CreateParcelCommand) setParty(name string, field *kernel.UUID, id kernel.UUID) error {
	if id.Validate() != nil {
		return errs.NewValueIsRequiredError(name)
	}
	*field = id
	return nil
}

func (c *CreateParcelCommand) setItems(items []LineItemInput) error {
	var problems []error
	for i, item := range items {
		if item.ProductID.Validate() != nil {
			problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].productId", i)))
		}
		if item.Quantity < 1 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i), fmt.Errorf("%d is not greater than 0", item.Quantity)))
		}
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].unitPrice", i), fmt.Errorf("%s is negative", item.UnitPrice.String())))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	c.items = append([]LineItemInput(nil), items...)
	return nil
}
