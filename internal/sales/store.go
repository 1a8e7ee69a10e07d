package sales

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Store owns the authoritative sale list and the fixed distribution center
// catalog. A single mutex guards the id counter and the sale slice together,
// so ids are unique and strictly increasing under concurrent writers. Readers
// take the same lock and copy out, which makes every read a point-in-time
// snapshot: a concurrent AddSale either fully precedes or fully follows it.
type Store struct {
	mu      sync.Mutex
	nextID  int
	sales   []Sale
	centers []DistributionCenter
}

// NewStore builds a store with the fixed four-center catalog and no sales.
func NewStore() *Store {
	return &Store{
		nextID: 1,
		centers: []DistributionCenter{
			{ID: 1, Name: "North Center", Location: "Buenos Aires North"},
			{ID: 2, Name: "South Center", Location: "Buenos Aires South"},
			{ID: 3, Name: "East Center", Location: "East Region"},
			{ID: 4, Name: "West Center", Location: "West Region"},
		},
	}
}

// SaleCandidate carries the validated inputs AddSale derives a Sale from.
type SaleCandidate struct {
	CarModel             CarModel
	DistributionCenterID int
	Quantity             int
}

// AddSale assigns the next sequential id, derives the unit price and total
// amount from the pricing table, stamps the sale date, and appends the sale.
// The store is not mutated when pricing fails.
func (s *Store) AddSale(candidate SaleCandidate) (Sale, error) {
	unitPrice, err := Price(candidate.CarModel)
	if err != nil {
		return Sale{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sale := Sale{
		ID:                   s.nextID,
		CarModel:             candidate.CarModel,
		DistributionCenterID: candidate.DistributionCenterID,
		Quantity:             candidate.Quantity,
		UnitPrice:            unitPrice,
		TotalAmount:          unitPrice.Mul(decimal.NewFromInt(int64(candidate.Quantity))),
		SaleDate:             time.Now().UTC(),
	}
	s.nextID++
	s.sales = append(s.sales, sale)
	return sale, nil
}

// GetDistributionCenter looks a center up by id.
func (s *Store) GetDistributionCenter(id int) (DistributionCenter, bool) {
	for _, center := range s.centers {
		if center.ID == id {
			return center, true
		}
	}
	return DistributionCenter{}, false
}

// GetAllDistributionCenters returns the catalog in fixed order (ids 1..4).
func (s *Store) GetAllDistributionCenters() []DistributionCenter {
	out := make([]DistributionCenter, len(s.centers))
	copy(out, s.centers)
	return out
}

// GetAllSales returns every sale in insertion order.
func (s *Store) GetAllSales() []Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// GetSalesByCenter returns the center's sales in insertion order. A center
// with no sales, or an unknown center id, yields an empty slice.
func (s *Store) GetSalesByCenter(centerID int) []Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Sale, 0)
	for _, sale := range s.sales {
		if sale.DistributionCenterID == centerID {
			out = append(out, sale)
		}
	}
	return out
}

// GetSalesGroupedByCenter groups sales by center id. Only centers with at
// least one sale appear as keys.
func (s *Store) GetSalesGroupedByCenter() map[int][]Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	grouped := make(map[int][]Sale)
	for _, sale := range s.sales {
		grouped[sale.DistributionCenterID] = append(grouped[sale.DistributionCenterID], sale)
	}
	return grouped
}

// GetSalesGroupedByCenterAndModel groups sales by center id and then model.
// Only centers and models with at least one sale appear.
func (s *Store) GetSalesGroupedByCenterAndModel() map[int]map[CarModel][]Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	grouped := make(map[int]map[CarModel][]Sale)
	for _, sale := range s.sales {
		byModel, ok := grouped[sale.DistributionCenterID]
		if !ok {
			byModel = make(map[CarModel][]Sale)
			grouped[sale.DistributionCenterID] = byModel
		}
		byModel[sale.CarModel] = append(byModel[sale.CarModel], sale)
	}
	return grouped
}
