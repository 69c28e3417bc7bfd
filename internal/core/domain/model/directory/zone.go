package directory

import (
	"errors"
	"strings"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"
)

// UnassignedZoneName labels parcels and delivery persons without a zone.
const UnassignedZoneName = "Unassigned"

// Zone is a geographic delivery area. Names are unique.
type Zone struct {
	id          kernel.UUID
	name        string
	description *string
	guard       guard.ConstructorGuard
}

func NewZone(id kernel.UUID, name string, description *string) (*Zone, error) {
	z := &Zone{
		id:          id,
		name:        strings.TrimSpace(name),
		description: optionalText(description),
		guard:       guard.NewConstructorGuard(),
	}
	if err := errors.Join(requireID(id), requireText("name", z.name, maxNameLength)); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *Zone) Validate() error {
	return z.guard.Validate(errs.NewValueIsRequiredError("zone"))
}

func (z *Zone) ID() kernel.UUID      { return z.id }
func (z *Zone) Kind() Kind           { return KindZone }
func (z *Zone) DisplayName() string  { return z.name }
func (z *Zone) Name() string         { return z.name }
func (z *Zone) Description() *string { return z.description }

func requireID(id kernel.UUID) error {
	if id.Validate() != nil {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}
