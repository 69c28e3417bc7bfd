package kernel

import (
	"errors"

	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// WeightScale is the number of fractional digits a weight may carry.
const WeightScale = 2

var (
	// MinWeight and MaxWeight bound a parcel weight in kilograms (inclusive).
	MinWeight = decimal.RequireFromString("0.01")
	MaxWeight = decimal.RequireFromString("999.99")

	ErrWeightIsNotConstructed = errors.New("Weight must be created via NewWeight")
)

// Weight is a parcel weight in kilograms with exact decimal precision.
type Weight struct {
	kg    decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight validates kg against [MinWeight, MaxWeight] and WeightScale.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if kg.LessThan(MinWeight) || kg.GreaterThan(MaxWeight) {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg.String(), MinWeight.String(), MaxWeight.String())
	}
	if !kg.Equal(kg.Round(WeightScale)) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			errors.New("must have at most 2 decimal places"))
	}

	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

// Kilograms returns the weight value.
func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

func (w Weight) String() string {
	return w.kg.StringFixed(WeightScale)
}

func (w Weight) IsEqual(other Weight) bool {
	return w.kg.Equal(other.kg)
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
