package handlers

import (
	"encoding/json"
	"net/http"

	"globe-api/internal/db"
	"globe-api/internal/globe"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GloBEHandler handles the single-jurisdiction top-up tax calculator
type GloBEHandler struct {
	common *CommonServices
}

// NewGloBEHandler creates a new GloBEHandler instance
func NewGloBEHandler(common *CommonServices) *GloBEHandler {
	return &GloBEHandler{common: common}
}

// GloBECalculationResponse represents a saved calculation with its full
// derivation chain
type GloBECalculationResponse struct {
	ID           string          `json:"id"`
	Object       string          `json:"object"`
	Label        string          `json:"label"`
	Jurisdiction string          `json:"jurisdiction"`
	FiscalYear   string          `json:"fiscal_year"`
	Currency     string          `json:"currency,omitempty"`
	Status       string          `json:"status,omitempty"`
	Inputs       json.RawMessage `json:"inputs" swaggertype:"object"`
	Results      json.RawMessage `json:"results" swaggertype:"object"`
	CreatedAt    int64           `json:"created_at"`
	UpdatedAt    int64           `json:"updated_at"`
}

// CreateGloBECalculationRequest represents the request body for saving a
// calculation
type CreateGloBECalculationRequest struct {
	Label string           `json:"label" binding:"required"`
	Input globe.GloBEInput `json:"input"`
}

// UpdateGloBECalculationRequest represents the request body for updating
// a saved calculation
type UpdateGloBECalculationRequest struct {
	Label string           `json:"label" binding:"required"`
	Input globe.GloBEInput `json:"input"`
}

// ComputeGloBE godoc
// @Summary Compute top-up tax for one jurisdiction
// @Description Runs the full GloBE derivation chain for a single jurisdiction and period without persisting anything
// @Tags globe
// @Accept json
// @Produce json
// @Param input body globe.GloBEInput true "Calculation input"
// @Success 200 {object} globe.GloBEResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /globe/compute [post]
func (h *GloBEHandler) ComputeGloBE(c *gin.Context) {
	var input globe.GloBEInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateGloBE(input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	sendSuccess(c, http.StatusOK, globe.ComputeGloBE(input))
}

// CreateGloBECalculation godoc
// @Summary Save a calculation
// @Description Computes and persists a labelled calculation so it can be revisited later
// @Tags globe
// @Accept json
// @Produce json
// @Param request body CreateGloBECalculationRequest true "Calculation to save"
// @Success 201 {object} GloBECalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /globe/calculations [post]
func (h *GloBEHandler) CreateGloBECalculation(c *gin.Context) {
	var req CreateGloBECalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateGloBE(req.Input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	result := globe.ComputeGloBE(req.Input)

	inputsJSON, err := json.Marshal(req.Input)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode calculation inputs", err)
		return
	}
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode calculation results", err)
		return
	}

	calc, err := h.common.db.CreateGlobeCalculation(c.Request.Context(), db.CreateGlobeCalculationParams{
		Label:        req.Label,
		Jurisdiction: req.Input.Jurisdiction,
		FiscalYear:   req.Input.FiscalYear,
		Currency:     textValue(req.Input.Currency),
		Status:       textValue(string(result.Status)),
		Inputs:       inputsJSON,
		Results:      resultsJSON,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to save calculation", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toGloBECalculationResponse(calc))
}

// GetGloBECalculation godoc
// @Summary Get a saved calculation
// @Description Get a saved calculation by ID
// @Tags globe
// @Produce json
// @Param calculation_id path string true "Calculation ID"
// @Success 200 {object} GloBECalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /globe/calculations/{calculation_id} [get]
func (h *GloBEHandler) GetGloBECalculation(c *gin.Context) {
	calculationID := c.Param("calculation_id")
	parsedUUID, err := uuid.Parse(calculationID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid calculation ID format", err)
		return
	}

	calc, err := h.common.db.GetGlobeCalculation(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Calculation not found")
		return
	}

	sendSuccess(c, http.StatusOK, toGloBECalculationResponse(calc))
}

// ListGloBECalculations godoc
// @Summary List saved calculations
// @Description List all saved calculations, most recently updated first
// @Tags globe
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /globe/calculations [get]
func (h *GloBEHandler) ListGloBECalculations(c *gin.Context) {
	calcs, err := h.common.db.ListGlobeCalculations(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list calculations", err)
		return
	}

	responses := make([]GloBECalculationResponse, len(calcs))
	for i, calc := range calcs {
		responses[i] = toGloBECalculationResponse(calc)
	}

	sendList(c, responses)
}

// UpdateGloBECalculation godoc
// @Summary Update a saved calculation
// @Description Recomputes and replaces a saved calculation
// @Tags globe
// @Accept json
// @Produce json
// @Param calculation_id path string true "Calculation ID"
// @Param request body UpdateGloBECalculationRequest true "Updated calculation"
// @Success 200 {object} GloBECalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /globe/calculations/{calculation_id} [put]
func (h *GloBEHandler) UpdateGloBECalculation(c *gin.Context) {
	calculationID := c.Param("calculation_id")
	parsedUUID, err := uuid.Parse(calculationID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid calculation ID format", err)
		return
	}

	var req UpdateGloBECalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateGloBE(req.Input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	result := globe.ComputeGloBE(req.Input)

	inputsJSON, err := json.Marshal(req.Input)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode calculation inputs", err)
		return
	}
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode calculation results", err)
		return
	}

	calc, err := h.common.db.UpdateGlobeCalculation(c.Request.Context(), db.UpdateGlobeCalculationParams{
		ID:           parsedUUID,
		Label:        req.Label,
		Jurisdiction: req.Input.Jurisdiction,
		FiscalYear:   req.Input.FiscalYear,
		Currency:     textValue(req.Input.Currency),
		Status:       textValue(string(result.Status)),
		Inputs:       inputsJSON,
		Results:      resultsJSON,
	})
	if err != nil {
		handleDBError(c, err, "Calculation not found")
		return
	}

	sendSuccess(c, http.StatusOK, toGloBECalculationResponse(calc))
}

// DeleteGloBECalculation godoc
// @Summary Delete a saved calculation
// @Description Delete a saved calculation by ID
// @Tags globe
// @Produce json
// @Param calculation_id path string true "Calculation ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /globe/calculations/{calculation_id} [delete]
func (h *GloBEHandler) DeleteGloBECalculation(c *gin.Context) {
	calculationID := c.Param("calculation_id")
	parsedUUID, err := uuid.Parse(calculationID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid calculation ID format", err)
		return
	}

	if err := h.common.db.DeleteGlobeCalculation(c.Request.Context(), parsedUUID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete calculation", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Calculation deleted successfully")
}

func toGloBECalculationResponse(calc db.GlobeCalculation) GloBECalculationResponse {
	return GloBECalculationResponse{
		ID:           calc.ID.String(),
		Object:       "globe_calculation",
		Label:        calc.Label,
		Jurisdiction: calc.Jurisdiction,
		FiscalYear:   calc.FiscalYear,
		Currency:     calc.Currency.String,
		Status:       calc.Status.String,
		Inputs:       json.RawMessage(calc.Inputs),
		Results:      json.RawMessage(calc.Results),
		CreatedAt:    unixOrZero(calc.CreatedAt),
		UpdatedAt:    unixOrZero(calc.UpdatedAt),
	}
}
