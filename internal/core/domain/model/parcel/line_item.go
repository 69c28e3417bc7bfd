package parcel

import (
	"errors"
	"fmt"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItem is one product carried by a parcel. The unit price is captured when
// the item is added and does not follow later catalog price changes.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
}

// NewLineItem validates quantity >= 1 and unitPrice >= 0. All violations are returned joined.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	var problems []error

	if productID.Validate() != nil {
		problems = append(problems, errs.NewValueIsRequiredError("productId"))
	}
	if quantity < 1 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if unitPrice.IsNegative() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice.String())))
	}

	if err := errors.Join(problems...); err != nil {
		return LineItem{}, err
	}

	return LineItem{productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

func (i LineItem) Quantity() int {
	return i.quantity
}

func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal is quantity × unit price.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
