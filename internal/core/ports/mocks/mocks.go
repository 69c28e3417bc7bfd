// Package mocks provides testify mocks of the ports for use case tests.
package mocks

import (
	"context"
	"time"

	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	_ ports.ParcelRepository    = (*ParcelRepository)(nil)
	_ ports.HistoryRepository   = (*HistoryRepository)(nil)
	_ ports.DirectoryRepository = (*DirectoryRepository)(nil)
	_ ports.UnitOfWork          = (*UnitOfWork)(nil)
	_ ports.UnitOfWorkFactory   = (*UnitOfWorkFactory)(nil)
	_ ports.EventPublisher      = (*EventPublisher)(nil)
)

type ParcelRepository struct{ mock.Mock }

func (m *ParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ParcelRepository) Delete(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Error(1)
}

func (m *ParcelRepository) Search(
	ctx context.Context,
	criteria ports.ParcelCriteria,
	page ports.PageRequest,
) (ports.Page[*parcel.Parcel], error) {
	args := m.Called(ctx, criteria, page)
	result, _ := args.Get(0).(ports.Page[*parcel.Parcel])
	return result, args.Error(1)
}

func (m *ParcelRepository) Find(ctx context.Context, criteria ports.ParcelCriteria) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, criteria)
	result, _ := args.Get(0).([]*parcel.Parcel)
	return result, args.Error(1)
}

func (m *ParcelRepository) Count(ctx context.Context, criteria ports.ParcelCriteria) (int64, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).(int64), args.Error(1)
}

type HistoryRepository struct{ mock.Mock }

func (m *HistoryRepository) Append(ctx context.Context, entries ...parcel.HistoryEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *HistoryRepository) Get(ctx context.Context, id kernel.UUID) (parcel.HistoryEntry, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(parcel.HistoryEntry)
	return entry, args.Error(1)
}

func (m *HistoryRepository) List(ctx context.Context) ([]parcel.HistoryEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]parcel.HistoryEntry)
	return entries, args.Error(1)
}

func (m *HistoryRepository) Timeline(ctx context.Context, parcelID kernel.UUID) (parcel.Timeline, error) {
	args := m.Called(ctx, parcelID)
	timeline, _ := args.Get(0).(parcel.Timeline)
	return timeline, args.Error(1)
}

func (m *HistoryRepository) Latest(ctx context.Context, parcelID kernel.UUID) (parcel.HistoryEntry, error) {
	args := m.Called(ctx, parcelID)
	entry, _ := args.Get(0).(parcel.HistoryEntry)
	return entry, args.Error(1)
}

func (m *HistoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *HistoryRepository) CountByParcel(ctx context.Context, parcelID kernel.UUID) (int64, error) {
	args := m.Called(ctx, parcelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *HistoryRepository) CountByStatusBetween(
	ctx context.Context,
	status parcel.Status,
	from, to time.Time,
) (int64, error) {
	args := m.Called(ctx, status, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *HistoryRepository) ListWithComments(ctx context.Context) ([]parcel.HistoryEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]parcel.HistoryEntry)
	return entries, args.Error(1)
}

type DirectoryRepository struct{ mock.Mock }

func (m *DirectoryRepository) Exists(ctx context.Context, kind directory.Kind, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

func (m *DirectoryRepository) Get(
	ctx context.Context,
	kind directory.Kind,
	id kernel.UUID,
) (directory.Entity, error) {
	args := m.Called(ctx, kind, id)
	entity, _ := args.Get(0).(directory.Entity)
	return entity, args.Error(1)
}

func (m *DirectoryRepository) Count(ctx context.Context, kind directory.Kind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DirectoryRepository) ListDeliveryPersons(ctx context.Context) ([]*directory.DeliveryPerson, error) {
	args := m.Called(ctx)
	persons, _ := args.Get(0).([]*directory.DeliveryPerson)
	return persons, args.Error(1)
}

func (m *DirectoryRepository) ListZones(ctx context.Context) ([]*directory.Zone, error) {
	args := m.Called(ctx)
	zones, _ := args.Get(0).([]*directory.Zone)
	return zones, args.Error(1)
}

func (m *DirectoryRepository) CountDeliveryPersonsInZone(ctx context.Context, zoneID kernel.UUID) (int64, error) {
	args := m.Called(ctx, zoneID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DirectoryRepository) Add(ctx context.Context, entity directory.Entity) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *DirectoryRepository) List(ctx context.Context, kind directory.Kind) ([]directory.Entity, error) {
	args := m.Called(ctx, kind)
	entities, _ := args.Get(0).([]directory.Entity)
	return entities, args.Error(1)
}

type UnitOfWork struct{ mock.Mock }

func (m *UnitOfWork) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UnitOfWork) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

func (m *UnitOfWork) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}

func (m *UnitOfWork) DirectoryRepository() ports.DirectoryRepository {
	return m.Called().Get(0).(ports.DirectoryRepository)
}

type UnitOfWorkFactory struct{ mock.Mock }

func (m *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}

type EventPublisher struct{ mock.Mock }

func (m *EventPublisher) Publish(ctx context.Context, events ...parcel.Event) error {
	return m.Called(ctx, events).Error(0)
}
