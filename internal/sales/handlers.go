package sales

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-carsales/internal/common"
	"github.com/noah-isme/backend-carsales/internal/obs"
)

// Handler exposes the sales endpoints.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Service  *Service
	Validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	v := cfg.Validate
	if v == nil {
		v = validator.New()
	}
	return &Handler{service: cfg.Service, validate: v}
}

// Create handles POST /api/v1/sales.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sales service not configured", nil)
		return
	}

	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid request body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid request", validationDetails(err))
		return
	}

	resp, err := h.service.CreateSale(req)
	if err != nil {
		obs.SalesCreatedTotal.WithLabelValues("unknown", strconv.Itoa(req.DistributionCenterID), "rejected").Inc()
		h.writeError(w, err)
		return
	}

	obs.SalesCreatedTotal.WithLabelValues(resp.CarModel, strconv.Itoa(resp.DistributionCenterID), "ok").Inc()
	obs.SaleUnitsTotal.Add(float64(resp.Quantity))
	common.JSON(w, http.StatusCreated, map[string]any{"data": resp})
}

// List handles GET /api/v1/sales.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sales service not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.service.ListSales()})
}

// Centers handles GET /api/v1/distribution-centers.
func (h *Handler) Centers(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sales service not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.service.ListDistributionCenters()})
}

// TotalVolume handles GET /api/v1/sales/total-volume.
func (h *Handler) TotalVolume(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sales service not configured", nil)
		return
	}
	obs.ReportRequestsTotal.WithLabelValues("total_volume").Inc()
	common.JSON(w, http.StatusOK, map[string]any{"data": h.service.TotalVolume()})
}

// VolumeByCenter handles GET /api/v1/sales/volume-by-center.
func (h *Handler) VolumeByCenter(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sales service not configured", nil)
		return
	}
	obs.ReportRequestsTotal.WithLabelValues("volume_by_center").Inc()
	common.JSON(w, http.StatusOK, map[string]any{"data": h.service.VolumeByCenter()})
}

// PercentageByModelAndCenter handles GET /api/v1/sales/percentage-by-model-and-center.
func (h *Handler) PercentageByModelAndCenter(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "sales service not configured", nil)
		return
	}
	obs.ReportRequestsTotal.WithLabelValues("percentage_by_model_and_center").Inc()
	common.JSON(w, http.StatusOK, map[string]any{"data": h.service.PercentageByModelAndCenter()})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := appErr.Code
		if code == "" {
			code = "INTERNAL"
		}
		message := appErr.Message
		if message == "" {
			message = "internal error"
		}
		common.JSONError(w, status, code, message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}

func validationDetails(err error) any {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
