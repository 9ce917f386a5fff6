package handlers

import (
	"encoding/json"
	"net/http"

	"globe-api/internal/db"
	"globe-api/internal/globe"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GIRHandler handles multi-jurisdiction GIR practice sessions
type GIRHandler struct {
	common *CommonServices
}

// NewGIRHandler creates a new GIRHandler instance
func NewGIRHandler(common *CommonServices) *GIRHandler {
	return &GIRHandler{common: common}
}

// GIRPracticeSessionResponse represents a saved practice session
type GIRPracticeSessionResponse struct {
	ID                string          `json:"id"`
	Object            string          `json:"object"`
	MNEName           string          `json:"mne_name"`
	FiscalYear        string          `json:"fiscal_year"`
	JurisdictionCount int32           `json:"jurisdiction_count"`
	Inputs            json.RawMessage `json:"inputs" swaggertype:"object"`
	Results           json.RawMessage `json:"results" swaggertype:"object"`
	CreatedAt         int64           `json:"created_at"`
	UpdatedAt         int64           `json:"updated_at"`
}

// ComputeGIR godoc
// @Summary Compute a GIR practice session
// @Description Runs the per-jurisdiction GloBE computation over the whole practice grid and cross-checks the entity structure, without persisting anything
// @Tags gir
// @Accept json
// @Produce json
// @Param input body globe.GIRInput true "Practice session input"
// @Success 200 {object} globe.GIRResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /gir/compute [post]
func (h *GIRHandler) ComputeGIR(c *gin.Context) {
	var input globe.GIRInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateGIR(input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	sendSuccess(c, http.StatusOK, globe.ComputeGIR(input))
}

// CreateGIRPracticeSession godoc
// @Summary Save a practice session
// @Description Computes and persists a GIR practice session
// @Tags gir
// @Accept json
// @Produce json
// @Param input body globe.GIRInput true "Practice session to save"
// @Success 201 {object} GIRPracticeSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /gir/sessions [post]
func (h *GIRHandler) CreateGIRPracticeSession(c *gin.Context) {
	var input globe.GIRInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateGIR(input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	result := globe.ComputeGIR(input)

	inputsJSON, err := json.Marshal(input)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode session inputs", err)
		return
	}
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode session results", err)
		return
	}

	session, err := h.common.db.CreateGirPracticeSession(c.Request.Context(), db.CreateGirPracticeSessionParams{
		MneName:           input.MNEName,
		FiscalYear:        input.FiscalYear,
		JurisdictionCount: int32(len(result.Jurisdictions)),
		Inputs:            inputsJSON,
		Results:           resultsJSON,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to save practice session", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toGIRPracticeSessionResponse(session))
}

// GetGIRPracticeSession godoc
// @Summary Get a saved practice session
// @Description Get a saved practice session by ID
// @Tags gir
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} GIRPracticeSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /gir/sessions/{session_id} [get]
func (h *GIRHandler) GetGIRPracticeSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	parsedUUID, err := uuid.Parse(sessionID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid session ID format", err)
		return
	}

	session, err := h.common.db.GetGirPracticeSession(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Practice session not found")
		return
	}

	sendSuccess(c, http.StatusOK, toGIRPracticeSessionResponse(session))
}

// ListGIRPracticeSessions godoc
// @Summary List saved practice sessions
// @Description List all saved practice sessions, most recently updated first
// @Tags gir
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /gir/sessions [get]
func (h *GIRHandler) ListGIRPracticeSessions(c *gin.Context) {
	sessions, err := h.common.db.ListGirPracticeSessions(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list practice sessions", err)
		return
	}

	responses := make([]GIRPracticeSessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = toGIRPracticeSessionResponse(session)
	}

	sendList(c, responses)
}

// UpdateGIRPracticeSession godoc
// @Summary Update a saved practice session
// @Description Recomputes and replaces a saved practice session
// @Tags gir
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param input body globe.GIRInput true "Updated practice session"
// @Success 200 {object} GIRPracticeSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /gir/sessions/{session_id} [put]
func (h *GIRHandler) UpdateGIRPracticeSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	parsedUUID, err := uuid.Parse(sessionID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid session ID format", err)
		return
	}

	var input globe.GIRInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateGIR(input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	result := globe.ComputeGIR(input)

	inputsJSON, err := json.Marshal(input)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode session inputs", err)
		return
	}
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode session results", err)
		return
	}

	session, err := h.common.db.UpdateGirPracticeSession(c.Request.Context(), db.UpdateGirPracticeSessionParams{
		ID:                parsedUUID,
		MneName:           input.MNEName,
		FiscalYear:        input.FiscalYear,
		JurisdictionCount: int32(len(result.Jurisdictions)),
		Inputs:            inputsJSON,
		Results:           resultsJSON,
	})
	if err != nil {
		handleDBError(c, err, "Practice session not found")
		return
	}

	sendSuccess(c, http.StatusOK, toGIRPracticeSessionResponse(session))
}

// DeleteGIRPracticeSession godoc
// @Summary Delete a saved practice session
// @Description Delete a saved practice session by ID
// @Tags gir
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gir/sessions/{session_id} [delete]
func (h *GIRHandler) DeleteGIRPracticeSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	parsedUUID, err := uuid.Parse(sessionID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid session ID format", err)
		return
	}

	if err := h.common.db.DeleteGirPracticeSession(c.Request.Context(), parsedUUID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete practice session", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Practice session deleted successfully")
}

func toGIRPracticeSessionResponse(session db.GirPracticeSession) GIRPracticeSessionResponse {
	return GIRPracticeSessionResponse{
		ID:                session.ID.String(),
		Object:            "gir_practice_session",
		MNEName:           session.MneName,
		FiscalYear:        session.FiscalYear,
		JurisdictionCount: session.JurisdictionCount,
		Inputs:            json.RawMessage(session.Inputs),
		Results:           json.RawMessage(session.Results),
		CreatedAt:         unixOrZero(session.CreatedAt),
		UpdatedAt:         unixOrZero(session.UpdatedAt),
	}
}
