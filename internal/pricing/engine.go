// Package pricing computes customization prices from a product's base
// price and the selected options.
package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Gamertag001/eonova-backend/internal/catalog"
)

var (
	SecondaryColorSurcharge = decimal.RequireFromString("5.00")
	PrintSurcharge          = decimal.RequireFromString("8.00")
	SpecialStyleSurcharge   = decimal.RequireFromString("3.00")
)

const (
	DefaultStyle = StyleClassic
	priceScale   = 2
)

var specialStyles = map[string]bool{
	StyleElegant: true,
	StyleVintage: true,
}

// Either value means "no print" and adds no surcharge.
var noPrint = map[string]bool{
	PrintNone:  true,
	"no print": true,
}

type Request struct {
	ProductID      string  `json:"product_id"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
	Style          string  `json:"style,omitempty"`
	Print          *string `json:"print,omitempty"`
}

type Breakdown struct {
	SecondaryColor decimal.Decimal `json:"secondary_color"`
	Print          decimal.Decimal `json:"print"`
	SpecialStyle   decimal.Decimal `json:"special_style"`
}

type Quote struct {
	BasePrice  decimal.Decimal `json:"base_price"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Breakdown  Breakdown       `json:"breakdown"`
}

// Calculate is pure: identical inputs always produce identical quotes. The
// final price is rounded half-to-even at two decimals.
func Calculate(base decimal.Decimal, req Request) Quote {
	var b Breakdown

	if req.SecondaryColor != nil && *req.SecondaryColor != "" {
		b.SecondaryColor = SecondaryColorSurcharge
	}
	if req.Print != nil && *req.Print != "" && !noPrint[*req.Print] {
		b.Print = PrintSurcharge
	}

	style := req.Style
	if style == "" {
		style = DefaultStyle
	}
	if specialStyles[style] {
		b.SpecialStyle = SpecialStyleSurcharge
	}

	final := base.Add(b.SecondaryColor).Add(b.Print).Add(b.SpecialStyle)

	return Quote{
		BasePrice:  base,
		FinalPrice: final.RoundBank(priceScale),
		Breakdown:  b,
	}
}

// ProductLookup resolves product ids; unknown ids yield store.ErrNotFound.
type ProductLookup interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}

type Engine struct {
	Products ProductLookup
}

func (e *Engine) Quote(ctx context.Context, req Request) (Quote, error) {
	p, err := e.Products.Get(ctx, req.ProductID)
	if err != nil {
		return Quote{}, fmt.Errorf("quote: %w", err)
	}
	return Calculate(p.BasePrice, req), nil
}
