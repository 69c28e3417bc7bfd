package parcelrepo

import (
	"context"
	"errors"

	"parceltracker/internal/adapters/out/postgres/historyrepo"
	"parceltracker/internal/adapters/out/postgres/pgerr"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects the aggregates written during a unit of work so
// their events can be published after commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a parcel repository. tracker may be nil for
// read-only use outside a unit of work.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel together with its line items.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, pgerr.Rule{
			Column: "pkey", Kind: "parcel", Field: "id", Value: aggregate.ID().String(),
		})
	}

	r.track(aggregate)
	return nil
}

// Update writes the mutable columns. Line items are fixed at creation.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Items = nil
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{ID: dto.ID}).
		Select(updatableColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return notFound(aggregate.ID())
	}

	r.track(aggregate)
	return nil
}

// Delete removes the parcel, its line items and its ledger.
func (r *GormParcelRepository) Delete(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	db := r.db.WithContext(ctx)
	if err := historyrepo.NewGormHistoryRepository(r.db).DeleteByParcel(ctx, id); err != nil {
		return err
	}
	if err := db.Delete(&LineItemDTO{}, "parcel_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := db.Delete(&ParcelDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound(id)
	}

	r.track(aggregate)
	return nil
}

func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormParcelRepository) Search(
	ctx context.Context,
	criteria ports.ParcelCriteria,
	page ports.PageRequest,
) (ports.Page[*parcel.Parcel], error) {
	total, err := r.Count(ctx, criteria)
	if err != nil {
		return ports.Page[*parcel.Parcel]{}, err
	}

	result := ports.Page[*parcel.Parcel]{
		Items:  []*parcel.Parcel{},
		Total:  total,
		Number: page.Number,
		Size:   page.Size,
	}
	if int64(page.Offset()) >= total {
		return result, nil
	}

	var dtos []ParcelDTO
	err = r.db.WithContext(ctx).
		Scopes(Where(criteria), OrderBy(page.Sort)).
		Offset(page.Offset()).
		Limit(page.Size).
		Preload("Items", orderedItems).
		Find(&dtos).Error
	if err != nil {
		return ports.Page[*parcel.Parcel]{}, err
	}

	if result.Items, err = toDomainList(dtos); err != nil {
		return ports.Page[*parcel.Parcel]{}, err
	}
	return result, nil
}

func (r *GormParcelRepository) Find(ctx context.Context, criteria ports.ParcelCriteria) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Scopes(Where(criteria), OrderBy(ports.DefaultSort)).
		Preload("Items", orderedItems).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormParcelRepository) Count(ctx context.Context, criteria ports.ParcelCriteria) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ParcelDTO{}).Scopes(Where(criteria)).Count(&count).Error
	return count, err
}

func (r *GormParcelRepository) track(aggregate *parcel.Parcel) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func notFound(id kernel.UUID) error {
	return errs.NewObjectNotFoundError("parcel", "id", id.String())
}

func toDomainList(dtos []ParcelDTO) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}
	return parcels, nil
}
