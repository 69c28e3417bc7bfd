package kernel_test

import (
	"testing"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should accept the inclusive bounds", func(t *testing.T) {
		for _, raw := range []string{"0.01", "2.5", "999.99"} {
			w, err := kernel.NewWeight(decimal.RequireFromString(raw))

			require.NoError(t, err, raw)
			require.NoError(t, w.Validate())
			assert.True(t, w.Kilograms().Equal(decimal.RequireFromString(raw)))
		}
	})

	t.Run("should reject values outside the range", func(t *testing.T) {
		for _, raw := range []string{"0", "0.00", "-1", "1000", "999.991"} {
			_, err := kernel.NewWeight(decimal.RequireFromString(raw))

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, raw)
		}
	})

	t.Run("should reject more than two decimal places", func(t *testing.T) {
		_, err := kernel.NewWeight(decimal.RequireFromString("1.234"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "at most 2 decimal places")
	})

	t.Run("should accept trailing zeros", func(t *testing.T) {
		w, err := kernel.NewWeight(decimal.RequireFromString("2.500"))

		require.NoError(t, err)
		assert.Equal(t, "2.50", w.String())
	})
}

func TestWeight_Validate(t *testing.T) {
	var zero kernel.Weight

	assert.Equal(t, kernel.ErrWeightIsNotConstructed, zero.Validate())
}

func TestWeight_IsEqual(t *testing.T) {
	a, _ := kernel.NewWeight(decimal.RequireFromString("2.5"))
	b, _ := kernel.NewWeight(decimal.RequireFromString("2.50"))
	c, _ := kernel.NewWeight(decimal.RequireFromString("3"))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
