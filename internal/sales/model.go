// Package sales records car sale transactions against a fixed catalog of
// distribution centers and answers aggregate reporting queries over them.
package sales

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CarModel identifies one of the four manufactured car models.
type CarModel int

// The closed set of car models. The numeric values double as the wire-level
// model index accepted by ParseCarModel.
const (
	Sedan CarModel = iota
	SUV
	Offroad
	Sport
)

var carModelNames = [...]string{"Sedan", "SUV", "Offroad", "Sport"}

// CarModels returns every known model in index order.
func CarModels() []CarModel {
	return []CarModel{Sedan, SUV, Offroad, Sport}
}

// Valid reports whether the model is one of the known variants.
func (m CarModel) Valid() bool {
	return m >= Sedan && m <= Sport
}

// String returns the canonical model name.
func (m CarModel) String() string {
	if !m.Valid() {
		return "Unknown"
	}
	return carModelNames[m]
}

// MarshalJSON renders the model as its canonical name.
func (m CarModel) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts a canonical name, a stringified index, or a bare
// numeric index.
func (m *CarModel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, perr := ParseCarModel(name)
		if perr != nil {
			return perr
		}
		*m = parsed
		return nil
	}

	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return err
	}
	parsed := CarModel(index)
	if !parsed.Valid() {
		return errInvalidModelIndex(index)
	}
	*m = parsed
	return nil
}

// DistributionCenter is a fixed delivery location sales are attributed to.
type DistributionCenter struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Sale is one recorded transaction. UnitPrice and TotalAmount are derived
// from CarModel and Quantity by the pricing table and are never set directly.
type Sale struct {
	ID                   int             `json:"id"`
	CarModel             CarModel        `json:"carModel"`
	DistributionCenterID int             `json:"distributionCenterId"`
	Quantity             int             `json:"quantity"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	SaleDate             time.Time       `json:"saleDate"`
}
