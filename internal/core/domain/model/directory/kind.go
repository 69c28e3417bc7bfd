package directory

import (
	"fmt"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"
)

// Kind identifies a directory entity type.
type Kind int

const (
	UnknownKind Kind = iota
	KindZone
	KindDeliveryPerson
	KindSender
	KindRecipient
	KindProduct
)

var kindNames = map[Kind]string{
	KindZone:           "zone",
	KindDeliveryPerson: "delivery person",
	KindSender:         "sender",
	KindRecipient:      "recipient",
	KindProduct:        "product",
}

// Kinds returns every directory kind.
func Kinds() []Kind {
	return []Kind{KindZone, KindDeliveryPerson, KindSender, KindRecipient, KindProduct}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) Validate() error {
	if _, ok := kindNames[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a directory kind", k))
	}
	return nil
}

// NotFound builds the error returned when no entity of kind k has the given id.
// paramName is the field the caller used to reference it (e.g. "senderId").
func (k Kind) NotFound(paramName string, id kernel.UUID) error {
	return errs.NewObjectNotFoundError(k.String(), paramName, id.String())
}

// Entity is the read side of a directory record as the core sees it.
type Entity interface {
	ID() kernel.UUID
	Kind() Kind
	DisplayName() string
}
