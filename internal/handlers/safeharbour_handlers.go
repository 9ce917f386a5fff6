package handlers

import (
	"encoding/json"
	"net/http"

	"globe-api/internal/db"
	"globe-api/internal/globe"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SafeHarbourHandler handles the transitional CbCR safe harbour
// qualifier
type SafeHarbourHandler struct {
	common *CommonServices
}

// NewSafeHarbourHandler creates a new SafeHarbourHandler instance
func NewSafeHarbourHandler(common *CommonServices) *SafeHarbourHandler {
	return &SafeHarbourHandler{common: common}
}

// SafeHarbourAssessmentResponse represents a saved safe harbour
// assessment
type SafeHarbourAssessmentResponse struct {
	ID             string          `json:"id"`
	Object         string          `json:"object"`
	Label          string          `json:"label"`
	Jurisdiction   string          `json:"jurisdiction"`
	FiscalYear     string          `json:"fiscal_year"`
	Qualifies      bool            `json:"qualifies"`
	QualifyingTest string          `json:"qualifying_test,omitempty"`
	Inputs         json.RawMessage `json:"inputs" swaggertype:"object"`
	Results        json.RawMessage `json:"results" swaggertype:"object"`
	CreatedAt      int64           `json:"created_at"`
	UpdatedAt      int64           `json:"updated_at"`
}

// CreateSafeHarbourAssessmentRequest represents the request body for
// saving an assessment
type CreateSafeHarbourAssessmentRequest struct {
	Label string                 `json:"label" binding:"required"`
	Input globe.SafeHarbourInput `json:"input"`
}

// UpdateSafeHarbourAssessmentRequest represents the request body for
// updating a saved assessment
type UpdateSafeHarbourAssessmentRequest struct {
	Label string                 `json:"label" binding:"required"`
	Input globe.SafeHarbourInput `json:"input"`
}

// EvaluateSafeHarbour godoc
// @Summary Evaluate the transitional safe harbour tests
// @Description Runs the de minimis, simplified ETR and routine profits tests for one jurisdiction without persisting anything
// @Tags safe-harbour
// @Accept json
// @Produce json
// @Param input body globe.SafeHarbourInput true "Assessment input"
// @Success 200 {object} globe.SafeHarbourResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /safe-harbour/evaluate [post]
func (h *SafeHarbourHandler) EvaluateSafeHarbour(c *gin.Context) {
	var input globe.SafeHarbourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateSafeHarbour(input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	sendSuccess(c, http.StatusOK, globe.EvaluateSafeHarbour(input))
}

// CreateSafeHarbourAssessment godoc
// @Summary Save an assessment
// @Description Evaluates and persists a labelled safe harbour assessment
// @Tags safe-harbour
// @Accept json
// @Produce json
// @Param request body CreateSafeHarbourAssessmentRequest true "Assessment to save"
// @Success 201 {object} SafeHarbourAssessmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /safe-harbour/assessments [post]
func (h *SafeHarbourHandler) CreateSafeHarbourAssessment(c *gin.Context) {
	var req CreateSafeHarbourAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateSafeHarbour(req.Input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	result := globe.EvaluateSafeHarbour(req.Input)

	inputsJSON, err := json.Marshal(req.Input)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode assessment inputs", err)
		return
	}
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode assessment results", err)
		return
	}

	assessment, err := h.common.db.CreateSafeHarbourAssessment(c.Request.Context(), db.CreateSafeHarbourAssessmentParams{
		Label:          req.Label,
		Jurisdiction:   req.Input.Jurisdiction,
		FiscalYear:     req.Input.FiscalYear,
		Qualifies:      result.Qualifies,
		QualifyingTest: textValue(result.QualifyingTest),
		Inputs:         inputsJSON,
		Results:        resultsJSON,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to save assessment", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toSafeHarbourAssessmentResponse(assessment))
}

// GetSafeHarbourAssessment godoc
// @Summary Get a saved assessment
// @Description Get a saved safe harbour assessment by ID
// @Tags safe-harbour
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Success 200 {object} SafeHarbourAssessmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /safe-harbour/assessments/{assessment_id} [get]
func (h *SafeHarbourHandler) GetSafeHarbourAssessment(c *gin.Context) {
	assessmentID := c.Param("assessment_id")
	parsedUUID, err := uuid.Parse(assessmentID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid assessment ID format", err)
		return
	}

	assessment, err := h.common.db.GetSafeHarbourAssessment(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Assessment not found")
		return
	}

	sendSuccess(c, http.StatusOK, toSafeHarbourAssessmentResponse(assessment))
}

// ListSafeHarbourAssessments godoc
// @Summary List saved assessments
// @Description List all saved safe harbour assessments, most recently updated first
// @Tags safe-harbour
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /safe-harbour/assessments [get]
func (h *SafeHarbourHandler) ListSafeHarbourAssessments(c *gin.Context) {
	assessments, err := h.common.db.ListSafeHarbourAssessments(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list assessments", err)
		return
	}

	responses := make([]SafeHarbourAssessmentResponse, len(assessments))
	for i, assessment := range assessments {
		responses[i] = toSafeHarbourAssessmentResponse(assessment)
	}

	sendList(c, responses)
}

// UpdateSafeHarbourAssessment godoc
// @Summary Update a saved assessment
// @Description Re-evaluates and replaces a saved safe harbour assessment
// @Tags safe-harbour
// @Accept json
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Param request body UpdateSafeHarbourAssessmentRequest true "Updated assessment"
// @Success 200 {object} SafeHarbourAssessmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /safe-harbour/assessments/{assessment_id} [put]
func (h *SafeHarbourHandler) UpdateSafeHarbourAssessment(c *gin.Context) {
	assessmentID := c.Param("assessment_id")
	parsedUUID, err := uuid.Parse(assessmentID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid assessment ID format", err)
		return
	}

	var req UpdateSafeHarbourAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateSafeHarbour(req.Input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	result := globe.EvaluateSafeHarbour(req.Input)

	inputsJSON, err := json.Marshal(req.Input)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode assessment inputs", err)
		return
	}
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode assessment results", err)
		return
	}

	assessment, err := h.common.db.UpdateSafeHarbourAssessment(c.Request.Context(), db.UpdateSafeHarbourAssessmentParams{
		ID:             parsedUUID,
		Label:          req.Label,
		Jurisdiction:   req.Input.Jurisdiction,
		FiscalYear:     req.Input.FiscalYear,
		Qualifies:      result.Qualifies,
		QualifyingTest: textValue(result.QualifyingTest),
		Inputs:         inputsJSON,
		Results:        resultsJSON,
	})
	if err != nil {
		handleDBError(c, err, "Assessment not found")
		return
	}

	sendSuccess(c, http.StatusOK, toSafeHarbourAssessmentResponse(assessment))
}

// DeleteSafeHarbourAssessment godoc
// @Summary Delete a saved assessment
// @Description Delete a saved safe harbour assessment by ID
// @Tags safe-harbour
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /safe-harbour/assessments/{assessment_id} [delete]
func (h *SafeHarbourHandler) DeleteSafeHarbourAssessment(c *gin.Context) {
	assessmentID := c.Param("assessment_id")
	parsedUUID, err := uuid.Parse(assessmentID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid assessment ID format", err)
		return
	}

	if err := h.common.db.DeleteSafeHarbourAssessment(c.Request.Context(), parsedUUID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete assessment", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Assessment deleted successfully")
}

func toSafeHarbourAssessmentResponse(assessment db.SafeHarbourAssessment) SafeHarbourAssessmentResponse {
	return SafeHarbourAssessmentResponse{
		ID:             assessment.ID.String(),
		Object:         "safe_harbour_assessment",
		Label:          assessment.Label,
		Jurisdiction:   assessment.Jurisdiction,
		FiscalYear:     assessment.FiscalYear,
		Qualifies:      assessment.Qualifies,
		QualifyingTest: assessment.QualifyingTest.String,
		Inputs:         json.RawMessage(assessment.Inputs),
		Results:        json.RawMessage(assessment.Results),
		CreatedAt:      unixOrZero(assessment.CreatedAt),
		UpdatedAt:      unixOrZero(assessment.UpdatedAt),
	}
}
