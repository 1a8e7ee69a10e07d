package sales_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-carsales/internal/obs"
	"github.com/noah-isme/backend-carsales/internal/sales"
)

func TestMain(m *testing.M) {
	obs.MustRegisterDomainMetrics("carsales", prometheus.NewRegistry())
	os.Exit(m.Run())
}

type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestHandler(t *testing.T) *sales.Handler {
	t.Helper()
	svc, err := sales.NewService(sales.ServiceConfig{Store: sales.NewStore()})
	require.NoError(t, err)
	return sales.NewHandler(sales.HandlerConfig{Service: svc})
}

func postSale(t *testing.T, h *sales.Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func TestCreateHandlerSuccess(t *testing.T) {
	h := newTestHandler(t)

	rr := postSale(t, h, `{"carModel":"Sedan","distributionCenterId":1,"quantity":5}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body struct {
		Data sales.SaleResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Equal(t, 1, body.Data.ID)
	require.Equal(t, "Sedan", body.Data.CarModel)
	require.Equal(t, "North Center", body.Data.DistributionCenterName)
	require.True(t, body.Data.UnitPrice.Equal(decimal.RequireFromString("8000")))
	require.True(t, body.Data.TotalAmount.Equal(decimal.RequireFromString("40000")))
	require.Equal(t, "sale recorded successfully", body.Data.Message)
}

func TestCreateHandlerMalformedBody(t *testing.T) {
	h := newTestHandler(t)

	rr := postSale(t, h, `{"carModel":`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "VALIDATION", decodeError(t, rr).Error.Code)
}

func TestCreateHandlerValidation(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name       string
		payload    string
		wantDetail string
	}{
		{"missing model", `{"distributionCenterId":1,"quantity":1}`, "CarModel"},
		{"zero quantity", `{"carModel":"Sedan","distributionCenterId":1,"quantity":0}`, "Quantity"},
		{"negative quantity", `{"carModel":"Sedan","distributionCenterId":1,"quantity":-2}`, "Quantity"},
		{"zero center", `{"carModel":"Sedan","distributionCenterId":0,"quantity":1}`, "DistributionCenterID"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := postSale(t, h, tc.payload)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			body := decodeError(t, rr)
			require.Equal(t, "VALIDATION", body.Error.Code)
			require.Contains(t, body.Error.Details, tc.wantDetail)
		})
	}
}

func TestCreateHandlerDomainErrors(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name     string
		payload  string
		wantCode string
	}{
		{"unknown model name", `{"carModel":"Truck","distributionCenterId":1,"quantity":1}`, sales.CodeInvalidModelName},
		{"index out of range", `{"carModel":"99","distributionCenterId":1,"quantity":1}`, sales.CodeInvalidModelIndex},
		{"blank model", `{"carModel":"   ","distributionCenterId":1,"quantity":1}`, sales.CodeEmptyCarModel},
		{"unknown center", `{"carModel":"Sedan","distributionCenterId":99,"quantity":1}`, sales.CodeCenterNotFound},
		{"model error wins over center error", `{"carModel":"Truck","distributionCenterId":99,"quantity":1}`, sales.CodeInvalidModelName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := postSale(t, h, tc.payload)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, tc.wantCode, decodeError(t, rr).Error.Code)
		})
	}
}

func TestListHandler(t *testing.T) {
	h := newTestHandler(t)
	rr := postSale(t, h, `{"carModel":"SUV","distributionCenterId":2,"quantity":3}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales", nil)
	rr = httptest.NewRecorder()
	h.List(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data []sales.Sale `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	require.Equal(t, 3, body.Data[0].Quantity)
}

func TestCentersHandler(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/distribution-centers", nil)
	rr := httptest.NewRecorder()
	h.Centers(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data []sales.DistributionCenter `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body.Data, 4)
	require.Equal(t, "Buenos Aires North", body.Data[0].Location)
}

func TestTotalVolumeHandler(t *testing.T) {
	h := newTestHandler(t)
	for _, payload := range []string{
		`{"carModel":"Sedan","distributionCenterId":1,"quantity":5}`,
		`{"carModel":"SUV","distributionCenterId":2,"quantity":3}`,
		`{"carModel":"Sport","distributionCenterId":1,"quantity":2}`,
	} {
		require.Equal(t, http.StatusCreated, postSale(t, h, payload).Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/total-volume", nil)
	rr := httptest.NewRecorder()
	h.TotalVolume(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data sales.TotalVolumeReport `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Equal(t, 10, body.Data.TotalUnits)
	require.Equal(t, 3, body.Data.TotalSales)
	require.True(t, body.Data.TotalAmount.Equal(decimal.RequireFromString("107448")))
}

func TestVolumeByCenterHandler(t *testing.T) {
	h := newTestHandler(t)
	require.Equal(t, http.StatusCreated, postSale(t, h, `{"carModel":"Offroad","distributionCenterId":3,"quantity":2}`).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/volume-by-center", nil)
	rr := httptest.NewRecorder()
	h.VolumeByCenter(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data sales.VolumeByCenterReport `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body.Data.Centers, 4)
	require.Equal(t, 2, body.Data.Centers[2].TotalUnits)
	require.True(t, body.Data.Centers[2].TotalAmount.Equal(decimal.RequireFromString("25000")))
	require.Equal(t, 2, body.Data.GrandTotalUnits)
}

func TestPercentageHandler(t *testing.T) {
	h := newTestHandler(t)
	require.Equal(t, http.StatusCreated, postSale(t, h, `{"carModel":"Sedan","distributionCenterId":1,"quantity":6}`).Code)
	require.Equal(t, http.StatusCreated, postSale(t, h, `{"carModel":"Sport","distributionCenterId":1,"quantity":4}`).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/percentage-by-model-and-center", nil)
	rr := httptest.NewRecorder()
	h.PercentageByModelAndCenter(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data sales.PercentageReport `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Equal(t, 10, body.Data.TotalUnitsGlobal)
	models := body.Data.Centers[0].Models
	require.Len(t, models, 2)
	require.Equal(t, "Sedan", models[0].CarModel)
	require.True(t, models[0].PercentageOfCenter.Equal(decimal.RequireFromString("60")))
	require.Equal(t, "Sport", models[1].CarModel)
	require.True(t, models[1].PercentageOfTotal.Equal(decimal.RequireFromString("40")))
}

func TestHandlerWithoutService(t *testing.T) {
	h := sales.NewHandler(sales.HandlerConfig{})

	rr := postSale(t, h, `{"carModel":"Sedan","distributionCenterId":1,"quantity":1}`)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "INTERNAL", decodeError(t, rr).Error.Code)
}
