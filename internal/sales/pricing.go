package sales

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Base unit prices per model, in USD.
var (
	sedanPrice   = decimal.NewFromInt(8000)
	suvPrice     = decimal.NewFromInt(9500)
	offroadPrice = decimal.NewFromInt(12500)
	sportPrice   = decimal.NewFromInt(18200)

	// Sport carries a 7% surcharge on top of its base price.
	sportSurchargeRate = decimal.NewFromFloat(0.07)
)

// Price returns the final unit price for the given model. The Sport surcharge
// is already applied. An unknown model is a programming error, not caller
// input: the enum is closed and handlers never construct models directly.
func Price(model CarModel) (decimal.Decimal, error) {
	var base decimal.Decimal
	switch model {
	case Sedan:
		base = sedanPrice
	case SUV:
		base = suvPrice
	case Offroad:
		base = offroadPrice
	case Sport:
		base = sportPrice
	default:
		return decimal.Zero, fmt.Errorf("sales: no price for model %d", int(model))
	}
	if model == Sport {
		base = base.Add(base.Mul(sportSurchargeRate))
	}
	return base, nil
}
