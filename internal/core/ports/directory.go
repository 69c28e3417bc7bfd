package ports

import (
	"context"
	"errors"

	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"
)

// Directory is the read-only view of the entity directory used by the core.
type Directory interface {
	Exists(ctx context.Context, kind directory.Kind, id kernel.UUID) (bool, error)

	// Get returns errs.ObjectNotFoundError when no entity of kind has the id.
	Get(ctx context.Context, kind directory.Kind, id kernel.UUID) (directory.Entity, error)

	Count(ctx context.Context, kind directory.Kind) (int64, error)

	// ListDeliveryPersons and ListZones return entities ordered by name.
	ListDeliveryPersons(ctx context.Context) ([]*directory.DeliveryPerson, error)
	ListZones(ctx context.Context) ([]*directory.Zone, error)

	CountDeliveryPersonsInZone(ctx context.Context, zoneID kernel.UUID) (int64, error)
}

// DirectoryRepository adds the thin CRUD used to maintain the directory.
type DirectoryRepository interface {
	Directory

	// Add stores a new entity. Unique violations are reported as errs.DuplicateError
	// and unknown references (a delivery person's zone) as errs.ObjectNotFoundError.
	Add(ctx context.Context, entity directory.Entity) error

	// List returns every entity of kind ordered by display name.
	List(ctx context.Context, kind directory.Kind) ([]directory.Entity, error)
}

// RequireEntity checks that an entity of kind exists. The NotFound error names
// paramName, the field the caller referenced the entity by.
func RequireEntity(ctx context.Context, dir Directory, kind directory.Kind, paramName string, id kernel.UUID) error {
	ok, err := dir.Exists(ctx, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return kind.NotFound(paramName, id)
	}
	return nil
}

// LookupEntity is RequireEntity for callers that need the entity itself.
func LookupEntity(
	ctx context.Context,
	dir Directory,
	kind directory.Kind,
	paramName string,
	id kernel.UUID,
) (directory.Entity, error) {
	entity, err := dir.Get(ctx, kind, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, kind.NotFound(paramName, id)
	}
	return entity, err
}
