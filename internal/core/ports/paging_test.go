package ports_test

import (
	"testing"

	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		in   string
		want ports.Sort
	}{
		{"", ports.DefaultSort},
		{"weight", ports.Sort{Field: ports.SortByWeight}},
		{"destinationCity,asc", ports.Sort{Field: ports.SortByDestinationCity}},
		{"PRIORITY,DESC", ports.Sort{Field: ports.SortByPriority, Descending: true}},
		{" status , desc ", ports.Sort{Field: ports.SortByStatus, Descending: true}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ports.ParseSort(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("should reject unknown field", func(t *testing.T) {
		_, err := ports.ParseSort("sender")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown direction", func(t *testing.T) {
		_, err := ports.ParseSort("weight,sideways")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewPageRequest(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		p, err := ports.NewPageRequest(0, 0, ports.Sort{})

		require.NoError(t, err)
		assert.Equal(t, ports.DefaultPageSize, p.Size)
		assert.Equal(t, ports.DefaultSort, p.Sort)
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("should compute offset", func(t *testing.T) {
		p, err := ports.NewPageRequest(3, 25, ports.DefaultSort)

		require.NoError(t, err)
		assert.Equal(t, 75, p.Offset())
	})

	t.Run("should reject negative page and oversized size together", func(t *testing.T) {
		_, err := ports.NewPageRequest(-1, ports.MaxPageSize+1, ports.DefaultSort)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPage_TotalPages(t *testing.T) {
	assert.Equal(t, 0, ports.Page[int]{Size: 20}.TotalPages())
	assert.Equal(t, 1, ports.Page[int]{Size: 20, Total: 20}.TotalPages())
	assert.Equal(t, 2, ports.Page[int]{Size: 20, Total: 21}.TotalPages())

	mapped := ports.MapPage(ports.Page[int]{Items: []int{1, 2}, Total: 7, Number: 1, Size: 2},
		func(i int) string { return string(rune('a' + i)) })
	assert.Equal(t, []string{"b", "c"}, mapped.Items)
	assert.Equal(t, int64(7), mapped.Total)
}
