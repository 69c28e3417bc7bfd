package ports

import (
	"errors"
	"fmt"
	"strings"

	"parceltracker/internal/pkg/errs"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SortField is a parcel attribute results can be ordered by.
type SortField string

const (
	SortByCreatedAt       SortField = "createdAt"
	SortByWeight          SortField = "weight"
	SortByPriority        SortField = "priority"
	SortByStatus          SortField = "status"
	SortByDestinationCity SortField = "destinationCity"
)

var sortFields = []SortField{
	SortByCreatedAt, SortByWeight, SortByPriority, SortByStatus, SortByDestinationCity,
}

type Sort struct {
	Field      SortField
	Descending bool
}

// DefaultSort is creation time, newest first.
var DefaultSort = Sort{Field: SortByCreatedAt, Descending: true}

// ParseSort reads "field" or "field,asc|desc". An empty string yields DefaultSort.
func ParseSort(s string) (Sort, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSort, nil
	}

	name, direction, _ := strings.Cut(s, ",")
	sort := Sort{}
	for _, f := range sortFields {
		if strings.EqualFold(f.String(), strings.TrimSpace(name)) {
			sort.Field = f
		}
	}
	if sort.Field == "" {
		return Sort{}, errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("%q is not a sortable field", name))
	}

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "asc":
	case "desc":
		sort.Descending = true
	default:
		return Sort{}, errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("%q is not a sort direction", direction))
	}
	return sort, nil
}

func (f SortField) String() string {
	return string(f)
}

// PageRequest selects a 0-based page of results.
type PageRequest struct {
	Number int
	Size   int
	Sort   Sort
}

// NewPageRequest applies the defaults: size 0 means DefaultPageSize. Sizes
// above MaxPageSize and negative values are rejected; all problems are joined.
func NewPageRequest(number, size int, sort Sort) (PageRequest, error) {
	var problems []error
	if number < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("%d is negative", number)))
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if size < 1 || size > MaxPageSize {
		problems = append(problems, errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize))
	}
	if sort.Field == "" {
		sort = DefaultSort
	}
	if err := errors.Join(problems...); err != nil {
		return PageRequest{}, err
	}
	return PageRequest{Number: number, Size: size, Sort: sort}, nil
}

// Offset is the number of rows before the page.
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// Page is one slice of an ordered result set.
type Page[T any] struct {
	Items  []T
	Total  int64
	Number int
	Size   int
}

// TotalPages is 0 for an empty result set.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 || p.Total == 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// MapPage converts the items of a page, keeping its metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Page[R]{Items: items, Total: p.Total, Number: p.Number, Size: p.Size}
}
