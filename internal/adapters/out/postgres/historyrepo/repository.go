package historyrepo

import (
	"context"
	"errors"
	"time"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	ascending  = "recorded_at ASC, seq ASC"
	descending = "recorded_at DESC, seq DESC"
)

// GormHistoryRepository implements ports.HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append inserts the entries in the given order so that seq follows it.
func (r *GormHistoryRepository) Append(ctx context.Context, entries ...parcel.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]HistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entry))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormHistoryRepository) Get(ctx context.Context, id kernel.UUID) (parcel.HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return parcel.HistoryEntry{}, err
	}

	var dto HistoryEntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return parcel.HistoryEntry{}, errs.NewObjectNotFoundError("history entry", "id", id.String())
		}
		return parcel.HistoryEntry{}, err
	}
	return toDomain(dto)
}

func (r *GormHistoryRepository) List(ctx context.Context) ([]parcel.HistoryEntry, error) {
	var dtos []HistoryEntryDTO
	if err := r.db.WithContext(ctx).Order(ascending).Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormHistoryRepository) Timeline(ctx context.Context, parcelID kernel.UUID) (parcel.Timeline, error) {
	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order(ascending).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries, err := toDomainList(dtos)
	if err != nil {
		return nil, err
	}
	return parcel.Timeline(entries), nil
}

func (r *GormHistoryRepository) Latest(ctx context.Context, parcelID kernel.UUID) (parcel.HistoryEntry, error) {
	var dto HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order(descending).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return parcel.HistoryEntry{}, errs.NewObjectNotFoundError("history entry", "parcelId", parcelID.String())
		}
		return parcel.HistoryEntry{}, err
	}
	return toDomain(dto)
}

func (r *GormHistoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&HistoryEntryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("history entry", "id", id.String())
	}
	return nil
}

// DeleteByParcel removes the whole ledger of a parcel. It runs as part of the
// parcel delete.
func (r *GormHistoryRepository) DeleteByParcel(ctx context.Context, parcelID kernel.UUID) error {
	return r.db.WithContext(ctx).Delete(&HistoryEntryDTO{}, "parcel_id = ?", parcelID.Bytes()).Error
}

func (r *GormHistoryRepository) CountByParcel(ctx context.Context, parcelID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&HistoryEntryDTO{}).
		Where("parcel_id = ?", parcelID.Bytes()).
		Count(&count).Error
	return count, err
}

func (r *GormHistoryRepository) CountByStatusBetween(
	ctx context.Context,
	status parcel.Status,
	from, to time.Time,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&HistoryEntryDTO{}).
		Where("status = ? AND recorded_at >= ? AND recorded_at < ?", status.String(), from, to).
		Count(&count).Error
	return count, err
}

func (r *GormHistoryRepository) ListWithComments(ctx context.Context) ([]parcel.HistoryEntry, error) {
	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Where("comment IS NOT NULL AND BTRIM(comment) <> ''").
		Order(ascending).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}
