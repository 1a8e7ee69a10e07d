package health

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

var ready atomic.Bool

func init() {
	ready.Store(true)
}

// SetReady flips the readiness gate. Shutdown hooks call SetReady(false) so
// load balancers drain the instance before the listener closes.
func SetReady(v bool) {
	ready.Store(v)
}

// Checker reports whether the sales store is reachable and consistent.
type Checker interface {
	CheckStore() error
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Checker Checker
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the shutdown gate and the store probe.
func (h Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	storeStatus := "ok"
	if h.Checker == nil {
		storeStatus = "store not configured"
	} else if err := h.Checker.CheckStore(); err != nil {
		storeStatus = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	if !ready.Load() || storeStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"store": storeStatus})
}
