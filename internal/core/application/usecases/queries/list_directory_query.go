package queries

import (
	"context"
	"errors"

	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/guard"
)

var ErrListDirectoryQueryIsNotConstructed = errors.New(
	"ListDirectoryQuery must be created via NewListDirectoryQuery constructor",
)

type ListDirectoryQuery struct {
	kind  directory.Kind
	guard guard.ConstructorGuard
}

func NewListDirectoryQuery(kind directory.Kind) (ListDirectoryQuery, error) {
	if err := kind.Validate(); err != nil {
		return ListDirectoryQuery{}, err
	}
	return ListDirectoryQuery{kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDirectoryQuery) Validate() error {
	return q.guard.Validate(ErrListDirectoryQueryIsNotConstructed)
}

func (q ListDirectoryQuery) Kind() directory.Kind {
	return q.kind
}

type ListDirectoryQueryHandler struct {
	directory ports.DirectoryRepository
}

func NewListDirectoryQueryHandler(dir ports.DirectoryRepository) ListDirectoryQueryHandler {
	return ListDirectoryQueryHandler{directory: dir}
}

func (h ListDirectoryQueryHandler) Handle(ctx context.Context, query ListDirectoryQuery) ([]directory.Entity, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.directory.List(ctx, query.Kind())
}
