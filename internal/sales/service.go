package sales

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Service orchestrates sale creation and computes the aggregate reports.
type Service struct {
	store *Store
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Store *Store
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, errors.New("sales: store is required")
	}
	return &Service{store: cfg.Store}, nil
}

// CreateSaleRequest is the inbound payload for recording a sale. CarModel
// accepts either a canonical name or a numeric index ("0".."3").
type CreateSaleRequest struct {
	CarModel             string `json:"carModel" validate:"required"`
	DistributionCenterID int    `json:"distributionCenterId" validate:"required,min=1"`
	Quantity             int    `json:"quantity" validate:"required,min=1"`
}

// SaleResponse is returned after a sale is recorded.
type SaleResponse struct {
	ID                     int             `json:"id"`
	CarModel               string          `json:"carModel"`
	DistributionCenterID   int             `json:"distributionCenterId"`
	DistributionCenterName string          `json:"distributionCenterName"`
	Quantity               int             `json:"quantity"`
	UnitPrice              decimal.Decimal `json:"unitPrice"`
	TotalAmount            decimal.Decimal `json:"totalAmount"`
	SaleDate               time.Time       `json:"saleDate"`
	Message                string          `json:"message"`
}

// TotalVolumeReport sums units, amounts, and sale count over every sale.
type TotalVolumeReport struct {
	TotalUnits  int             `json:"totalUnits"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalSales  int             `json:"totalSales"`
}

// CenterVolume is one center's slice of the volume report.
type CenterVolume struct {
	DistributionCenterID   int             `json:"distributionCenterId"`
	DistributionCenterName string          `json:"distributionCenterName"`
	TotalUnits             int             `json:"totalUnits"`
	TotalAmount            decimal.Decimal `json:"totalAmount"`
	TotalSales             int             `json:"totalSales"`
}

// VolumeByCenterReport lists volume per catalog center plus grand totals.
// Centers without sales appear with zero-valued fields.
type VolumeByCenterReport struct {
	Centers          []CenterVolume  `json:"centers"`
	GrandTotalUnits  int             `json:"grandTotalUnits"`
	GrandTotalAmount decimal.Decimal `json:"grandTotalAmount"`
}

// ModelPercentage is one model's share of a center's units.
type ModelPercentage struct {
	CarModel           string          `json:"carModel"`
	UnitsSold          int             `json:"unitsSold"`
	PercentageOfCenter decimal.Decimal `json:"percentageOfCenter"`
	PercentageOfTotal  decimal.Decimal `json:"percentageOfTotal"`
}

// CenterPercentage breaks one center's units down by model.
type CenterPercentage struct {
	DistributionCenterID   int               `json:"distributionCenterId"`
	DistributionCenterName string            `json:"distributionCenterName"`
	TotalUnitsInCenter     int               `json:"totalUnitsInCenter"`
	Models                 []ModelPercentage `json:"models"`
}

// PercentageReport holds the per-model per-center percentage breakdown.
type PercentageReport struct {
	Centers          []CenterPercentage `json:"centers"`
	TotalUnitsGlobal int                `json:"totalUnitsGlobal"`
}

// CreateSale validates the request against the catalog, prices it, and
// appends exactly one sale. The model is parsed before the center is
// resolved, so a request that is wrong on both counts reports the model
// error. Errors carry the caller-input codes from errors.go.
func (s *Service) CreateSale(req CreateSaleRequest) (SaleResponse, error) {
	model, err := ParseCarModel(req.CarModel)
	if err != nil {
		return SaleResponse{}, err
	}

	center, ok := s.store.GetDistributionCenter(req.DistributionCenterID)
	if !ok {
		return SaleResponse{}, errCenterNotFound(req.DistributionCenterID)
	}

	sale, err := s.store.AddSale(SaleCandidate{
		CarModel:             model,
		DistributionCenterID: req.DistributionCenterID,
		Quantity:             req.Quantity,
	})
	if err != nil {
		return SaleResponse{}, err
	}

	return SaleResponse{
		ID:                     sale.ID,
		CarModel:               sale.CarModel.String(),
		DistributionCenterID:   sale.DistributionCenterID,
		DistributionCenterName: center.Name,
		Quantity:               sale.Quantity,
		UnitPrice:              sale.UnitPrice,
		TotalAmount:            sale.TotalAmount,
		SaleDate:               sale.SaleDate,
		Message:                "sale recorded successfully",
	}, nil
}

// ListSales returns every recorded sale in insertion order.
func (s *Service) ListSales() []Sale {
	return s.store.GetAllSales()
}

// ListDistributionCenters returns the fixed center catalog.
func (s *Service) ListDistributionCenters() []DistributionCenter {
	return s.store.GetAllDistributionCenters()
}

// TotalVolume sums quantity, amount, and count over all sales. An empty
// store yields all zeros.
func (s *Service) TotalVolume() TotalVolumeReport {
	report := TotalVolumeReport{TotalAmount: decimal.Zero}
	for _, sale := range s.store.GetAllSales() {
		report.TotalUnits += sale.Quantity
		report.TotalAmount = report.TotalAmount.Add(sale.TotalAmount)
		report.TotalSales++
	}
	return report
}

// VolumeByCenter reports per-center volume in catalog order. Every catalog
// center appears, including those without sales.
func (s *Service) VolumeByCenter() VolumeByCenterReport {
	grouped := s.store.GetSalesGroupedByCenter()

	report := VolumeByCenterReport{GrandTotalAmount: decimal.Zero}
	for _, center := range s.store.GetAllDistributionCenters() {
		entry := CenterVolume{
			DistributionCenterID:   center.ID,
			DistributionCenterName: center.Name,
			TotalAmount:            decimal.Zero,
		}
		for _, sale := range grouped[center.ID] {
			entry.TotalUnits += sale.Quantity
			entry.TotalAmount = entry.TotalAmount.Add(sale.TotalAmount)
			entry.TotalSales++
		}
		report.Centers = append(report.Centers, entry)
		report.GrandTotalUnits += entry.TotalUnits
		report.GrandTotalAmount = report.GrandTotalAmount.Add(entry.TotalAmount)
	}
	return report
}

// PercentageByModelAndCenter reports, for each catalog center, each sold
// model's share of the center's units and of the global units. Model rows
// are sorted by canonical name. Percentages are rounded to two decimals and
// defined as zero when the corresponding denominator is zero.
func (s *Service) PercentageByModelAndCenter() PercentageReport {
	grouped := s.store.GetSalesGroupedByCenterAndModel()

	totalUnitsGlobal := 0
	for _, sale := range s.store.GetAllSales() {
		totalUnitsGlobal += sale.Quantity
	}

	report := PercentageReport{TotalUnitsGlobal: totalUnitsGlobal}
	for _, center := range s.store.GetAllDistributionCenters() {
		entry := CenterPercentage{
			DistributionCenterID:   center.ID,
			DistributionCenterName: center.Name,
			Models:                 []ModelPercentage{},
		}

		byModel := grouped[center.ID]
		for _, modelSales := range byModel {
			for _, sale := range modelSales {
				entry.TotalUnitsInCenter += sale.Quantity
			}
		}
		for model, modelSales := range byModel {
			unitsSold := 0
			for _, sale := range modelSales {
				unitsSold += sale.Quantity
			}
			entry.Models = append(entry.Models, ModelPercentage{
				CarModel:           model.String(),
				UnitsSold:          unitsSold,
				PercentageOfCenter: percentage(unitsSold, entry.TotalUnitsInCenter),
				PercentageOfTotal:  percentage(unitsSold, totalUnitsGlobal),
			})
		}
		sort.Slice(entry.Models, func(i, j int) bool {
			return entry.Models[i].CarModel < entry.Models[j].CarModel
		})

		report.Centers = append(report.Centers, entry)
	}
	return report
}

var oneHundred = decimal.NewFromInt(100)

// percentage computes round(units/total × 100, 2), or zero for a zero total.
func percentage(units, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(units)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(oneHundred).
		Round(2)
}
