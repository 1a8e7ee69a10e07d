package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// SalesCreatedTotal counts sale creation attempts by model, center, and outcome.
	SalesCreatedTotal *prometheus.CounterVec
	// SaleUnitsTotal accumulates the number of units across recorded sales.
	SaleUnitsTotal prometheus.Counter
	// ReportRequestsTotal counts aggregate report requests by report kind.
	ReportRequestsTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		SalesCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_created_total",
			Help:      "Count of sale creation attempts by outcome.",
		}, []string{"model", "center", "result"})
		SaleUnitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sale_units_total",
			Help:      "Total number of car units recorded across all sales.",
		})
		ReportRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_requests_total",
			Help:      "Count of aggregate report requests by report kind.",
		}, []string{"report"})

		mustRegisterCollector(reg, SalesCreatedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				SalesCreatedTotal = v
			}
		})
		mustRegisterCollector(reg, SaleUnitsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				SaleUnitsTotal = v
			}
		})
		mustRegisterCollector(reg, ReportRequestsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				ReportRequestsTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
