// Package historyrepo persists the parcel status ledger.
package historyrepo

import (
	"time"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// HistoryEntryDTO is one row of the ledger. Seq is assigned by the database and
// orders entries that share a timestamp by insertion.
type HistoryEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int64     `gorm:"->;autoIncrement;not null;uniqueIndex:idx_parcel_history_seq"`
	ParcelID   uuid.UUID `gorm:"type:uuid;not null;index:idx_parcel_history_parcel"`
	Status     string    `gorm:"size:16;not null;index:idx_parcel_history_status_recorded,priority:1"`
	RecordedAt time.Time `gorm:"not null;index:idx_parcel_history_status_recorded,priority:2"`
	Comment    *string   `gorm:"type:text"`
}

func (HistoryEntryDTO) TableName() string {
	return "parcel_history"
}

func fromDomain(entry parcel.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:         entry.ID().Bytes(),
		ParcelID:   entry.ParcelID().Bytes(),
		Status:     entry.Status().String(),
		RecordedAt: entry.Timestamp(),
		Comment:    entry.Comment(),
	}
}

func toDomain(dto HistoryEntryDTO) (parcel.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.HistoryEntry{}, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return parcel.HistoryEntry{}, err
	}
	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return parcel.HistoryEntry{}, err
	}
	return parcel.RestoreHistoryEntry(id, parcelID, status, dto.RecordedAt, dto.Comment)
}

func toDomainList(dtos []HistoryEntryDTO) ([]parcel.HistoryEntry, error) {
	entries := make([]parcel.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
