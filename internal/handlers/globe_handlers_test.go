package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"globe-api/internal/db"
	"globe-api/internal/globe"
	"globe-api/internal/handlers"
	"globe-api/internal/logger"
	"globe-api/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	m.Run()
}

func newGloBERouter(t *testing.T) (*gin.Engine, *mocks.MockQuerier) {
	ctrl := gomock.NewController(t)
	querier := mocks.NewMockQuerier(ctrl)

	h := handlers.NewGloBEHandler(handlers.NewCommonServices(querier))

	r := gin.New()
	r.POST("/globe/compute", h.ComputeGloBE)
	r.POST("/globe/calculations", h.CreateGloBECalculation)
	r.GET("/globe/calculations", h.ListGloBECalculations)
	r.GET("/globe/calculations/:calculation_id", h.GetGloBECalculation)
	r.PUT("/globe/calculations/:calculation_id", h.UpdateGloBECalculation)
	r.DELETE("/globe/calculations/:calculation_id", h.DeleteGloBECalculation)
	return r, querier
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestComputeGloBE(t *testing.T) {
	r, _ := newGloBERouter(t)

	input := globe.GloBEInput{
		Jurisdiction: "IE",
		FiscalYear:   "2025",
		FANI:         "1000000",
		CurrentTax:   "100000",
	}

	w := doJSON(t, r, http.MethodPost, "/globe/compute", input)
	require.Equal(t, http.StatusOK, w.Code)

	var result globe.GloBEResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "IE", result.Jurisdiction)
	assert.Equal(t, 2025, result.FiscalYear)
	assert.InDelta(t, 10.0, result.ETR, 1e-9)
	assert.Equal(t, globe.StatusLowTaxed, result.Status)
}

func TestComputeGloBE_ValidationFailure(t *testing.T) {
	r, _ := newGloBERouter(t)

	w := doJSON(t, r, http.MethodPost, "/globe/compute", globe.GloBEInput{FiscalYear: "2025"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp handlers.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.NotEmpty(t, resp.Fields)
}

func TestComputeGloBE_InvalidBody(t *testing.T) {
	r, _ := newGloBERouter(t)

	req := httptest.NewRequest(http.MethodPost, "/globe/compute", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateGloBECalculation(t *testing.T) {
	r, querier := newGloBERouter(t)

	calcID := uuid.New()
	querier.EXPECT().
		CreateGlobeCalculation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, arg db.CreateGlobeCalculationParams) (db.GlobeCalculation, error) {
			assert.Equal(t, "Ireland FY2025", arg.Label)
			assert.Equal(t, "IE", arg.Jurisdiction)
			assert.Equal(t, "LOW_TAXED", arg.Status.String)
			return db.GlobeCalculation{
				ID:           calcID,
				Label:        arg.Label,
				Jurisdiction: arg.Jurisdiction,
				FiscalYear:   arg.FiscalYear,
				Currency:     arg.Currency,
				Status:       arg.Status,
				Inputs:       arg.Inputs,
				Results:      arg.Results,
			}, nil
		}).
		Times(1)

	req := handlers.CreateGloBECalculationRequest{
		Label: "Ireland FY2025",
		Input: globe.GloBEInput{
			Jurisdiction: "IE",
			FiscalYear:   "2025",
			Currency:     "EUR",
			FANI:         "1000000",
			CurrentTax:   "100000",
		},
	}

	w := doJSON(t, r, http.MethodPost, "/globe/calculations", req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp handlers.GloBECalculationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, calcID.String(), resp.ID)
	assert.Equal(t, "globe_calculation", resp.Object)
	assert.Equal(t, "LOW_TAXED", resp.Status)

	var stored globe.GloBEResult
	require.NoError(t, json.Unmarshal(resp.Results, &stored))
	assert.InDelta(t, 10.0, stored.ETR, 1e-9)
}

func TestGetGloBECalculation_InvalidID(t *testing.T) {
	r, _ := newGloBERouter(t)

	w := doJSON(t, r, http.MethodGet, "/globe/calculations/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGloBECalculation_NotFound(t *testing.T) {
	r, querier := newGloBERouter(t)

	calcID := uuid.New()
	querier.EXPECT().
		GetGlobeCalculation(gomock.Any(), calcID).
		Return(db.GlobeCalculation{}, pgx.ErrNoRows).
		Times(1)

	w := doJSON(t, r, http.MethodGet, "/globe/calculations/"+calcID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListGloBECalculations(t *testing.T) {
	r, querier := newGloBERouter(t)

	querier.EXPECT().
		ListGlobeCalculations(gomock.Any()).
		Return([]db.GlobeCalculation{
			{ID: uuid.New(), Label: "One", Jurisdiction: "IE", FiscalYear: "2025", Inputs: []byte("{}"), Results: []byte("{}")},
			{ID: uuid.New(), Label: "Two", Jurisdiction: "DE", FiscalYear: "2024", Inputs: []byte("{}"), Results: []byte("{}")},
		}, nil).
		Times(1)

	w := doJSON(t, r, http.MethodGet, "/globe/calculations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Object string                              `json:"object"`
		Data   []handlers.GloBECalculationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "list", resp.Object)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "One", resp.Data[0].Label)
}

func TestDeleteGloBECalculation(t *testing.T) {
	r, querier := newGloBERouter(t)

	calcID := uuid.New()
	querier.EXPECT().
		DeleteGlobeCalculation(gomock.Any(), calcID).
		Return(nil).
		Times(1)

	w := doJSON(t, r, http.MethodDelete, "/globe/calculations/"+calcID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Calculation deleted successfully", resp.Message)
}
