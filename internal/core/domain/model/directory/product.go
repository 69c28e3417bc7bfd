package directory

import (
	"errors"
	"fmt"
	"strings"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Its price is the default unit price of new line items.
type Product struct {
	id          kernel.UUID
	name        string
	price       decimal.Decimal
	description *string
}

func NewProduct(id kernel.UUID, name string, price decimal.Decimal, description *string) (*Product, error) {
	name = strings.TrimSpace(name)

	var priceErr error
	if price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price.String()))
	}
	if err := errors.Join(requireID(id), requireText("name", name, maxNameLength), priceErr); err != nil {
		return nil, err
	}
	return &Product{id: id, name: name, price: price, description: optionalText(description)}, nil
}

func (p *Product) ID() kernel.UUID        { return p.id }
func (p *Product) Kind() Kind             { return KindProduct }
func (p *Product) DisplayName() string    { return p.name }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Description() *string   { return p.description }
