package queries

import (
	"context"
	"errors"

	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/guard"
)

var ErrGetHistoryEntryQueryIsNotConstructed = errors.New(
	"GetHistoryEntryQuery must be created via NewGetHistoryEntryQuery constructor",
)

type GetHistoryEntryQuery struct {
	entryID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetHistoryEntryQuery(entryID kernel.UUID) (GetHistoryEntryQuery, error) {
	if err := entryID.Validate(); err != nil {
		return GetHistoryEntryQuery{}, err
	}
	return GetHistoryEntryQuery{entryID: entryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetHistoryEntryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryEntryQueryIsNotConstructed)
}

func (q GetHistoryEntryQuery) EntryID() kernel.UUID {
	return q.entryID
}

type GetHistoryEntryQueryHandler struct {
	history ports.HistoryRepository
}

func NewGetHistoryEntryQueryHandler(history ports.HistoryRepository) GetHistoryEntryQueryHandler {
	return GetHistoryEntryQueryHandler{history: history}
}

func (h GetHistoryEntryQueryHandler) Handle(ctx context.Context, query GetHistoryEntryQuery) (views.HistoryEntryView, error) {
	if err := query.Validate(); err != nil {
		return views.HistoryEntryView{}, err
	}
	entry, err := h.history.Get(ctx, query.EntryID())
	if err != nil {
		return views.HistoryEntryView{}, err
	}
	return views.History(entry), nil
}

// ListHistoryEntriesQueryHandler returns the whole ledger, oldest first.
type ListHistoryEntriesQueryHandler struct {
	history ports.HistoryRepository
}

func NewListHistoryEntriesQueryHandler(history ports.HistoryRepository) ListHistoryEntriesQueryHandler {
	return ListHistoryEntriesQueryHandler{history: history}
}

func (h ListHistoryEntriesQueryHandler) Handle(ctx context.Context) ([]views.HistoryEntryView, error) {
	entries, err := h.history.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.HistoryList(entries), nil
}

// GetCommentedHistoryEntriesQueryHandler returns the entries carrying a
// non-blank comment.
type GetCommentedHistoryEntriesQueryHandler struct {
	history ports.HistoryRepository
}

func NewGetCommentedHistoryEntriesQueryHandler(history ports.HistoryRepository) GetCommentedHistoryEntriesQueryHandler {
	return GetCommentedHistoryEntriesQueryHandler{history: history}
}

func (h GetCommentedHistoryEntriesQueryHandler) Handle(ctx context.Context) ([]views.HistoryEntryView, error) {
	entries, err := h.history.ListWithComments(ctx)
	if err != nil {
		return nil, err
	}
	return views.HistoryList(entries), nil
}
