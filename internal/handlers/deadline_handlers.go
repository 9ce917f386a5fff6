package handlers

import (
	"encoding/json"
	"net/http"

	"globe-api/internal/db"
	"globe-api/internal/globe"
	"globe-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeadlineHandler handles the GIR filing deadline calculator
type DeadlineHandler struct {
	common    *CommonServices
	reminders *services.ReminderService
}

// NewDeadlineHandler creates a new DeadlineHandler instance
func NewDeadlineHandler(common *CommonServices, reminders *services.ReminderService) *DeadlineHandler {
	return &DeadlineHandler{common: common, reminders: reminders}
}

// DeadlineCalculationResponse represents a saved deadline calculation
type DeadlineCalculationResponse struct {
	ID                 string          `json:"id"`
	Object             string          `json:"object"`
	MNEName            string          `json:"mne_name"`
	FiscalYearEnd      string          `json:"fiscal_year_end"`
	IsFirstFiling      bool            `json:"is_first_filing"`
	ApplicableDeadline string          `json:"applicable_deadline"`
	Inputs             json.RawMessage `json:"inputs" swaggertype:"object"`
	Results            json.RawMessage `json:"results" swaggertype:"object"`
	CreatedAt          int64           `json:"created_at"`
	UpdatedAt          int64           `json:"updated_at"`
}

// SendReminderRequest represents the request body for sending a filing
// deadline reminder email
type SendReminderRequest struct {
	Email string `json:"email" binding:"required,email"`
}

const dateLayout = "2006-01-02"

// ComputeDeadline godoc
// @Summary Compute the GIR filing timeline
// @Description Computes statutory and transitional filing deadlines with preparation milestones, without persisting anything
// @Tags deadlines
// @Accept json
// @Produce json
// @Param input body globe.DeadlineInput true "Deadline input"
// @Success 200 {object} globe.DeadlineResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /deadlines/compute [post]
func (h *DeadlineHandler) ComputeDeadline(c *gin.Context) {
	var input globe.DeadlineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateDeadline(input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	sendSuccess(c, http.StatusOK, globe.ComputeDeadline(input))
}

// CreateDeadlineCalculation godoc
// @Summary Save a deadline calculation
// @Description Computes and persists a filing deadline timeline for an MNE group
// @Tags deadlines
// @Accept json
// @Produce json
// @Param input body globe.DeadlineInput true "Deadline input"
// @Success 201 {object} DeadlineCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /deadlines [post]
func (h *DeadlineHandler) CreateDeadlineCalculation(c *gin.Context) {
	var input globe.DeadlineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateDeadline(input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	result := globe.ComputeDeadline(input)

	inputsJSON, err := json.Marshal(input)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode deadline inputs", err)
		return
	}
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode deadline results", err)
		return
	}

	calc, err := h.common.db.CreateDeadlineCalculation(c.Request.Context(), db.CreateDeadlineCalculationParams{
		MneName:            input.MNEName,
		FiscalYearEnd:      dateValue(result.FiscalYearEnd),
		IsFirstFiling:      input.IsFirstFiling,
		ApplicableDeadline: dateValue(result.ApplicableDeadline),
		Inputs:             inputsJSON,
		Results:            resultsJSON,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to save deadline calculation", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toDeadlineCalculationResponse(calc))
}

// GetDeadlineCalculation godoc
// @Summary Get a saved deadline calculation
// @Description Get a saved deadline calculation by ID
// @Tags deadlines
// @Produce json
// @Param deadline_id path string true "Deadline calculation ID"
// @Success 200 {object} DeadlineCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /deadlines/{deadline_id} [get]
func (h *DeadlineHandler) GetDeadlineCalculation(c *gin.Context) {
	deadlineID := c.Param("deadline_id")
	parsedUUID, err := uuid.Parse(deadlineID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid deadline ID format", err)
		return
	}

	calc, err := h.common.db.GetDeadlineCalculation(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Deadline calculation not found")
		return
	}

	sendSuccess(c, http.StatusOK, toDeadlineCalculationResponse(calc))
}

// ListDeadlineCalculations godoc
// @Summary List saved deadline calculations
// @Description List all saved deadline calculations ordered by nearest deadline first
// @Tags deadlines
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /deadlines [get]
func (h *DeadlineHandler) ListDeadlineCalculations(c *gin.Context) {
	calcs, err := h.common.db.ListDeadlineCalculations(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list deadline calculations", err)
		return
	}

	responses := make([]DeadlineCalculationResponse, len(calcs))
	for i, calc := range calcs {
		responses[i] = toDeadlineCalculationResponse(calc)
	}

	sendList(c, responses)
}

// UpdateDeadlineCalculation godoc
// @Summary Update a saved deadline calculation
// @Description Recomputes and replaces a saved deadline calculation
// @Tags deadlines
// @Accept json
// @Produce json
// @Param deadline_id path string true "Deadline calculation ID"
// @Param input body globe.DeadlineInput true "Updated deadline input"
// @Success 200 {object} DeadlineCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /deadlines/{deadline_id} [put]
func (h *DeadlineHandler) UpdateDeadlineCalculation(c *gin.Context) {
	deadlineID := c.Param("deadline_id")
	parsedUUID, err := uuid.Parse(deadlineID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid deadline ID format", err)
		return
	}

	var input globe.DeadlineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := globe.ValidateDeadline(input); len(errs) > 0 {
		sendValidationErrors(c, errs)
		return
	}

	result := globe.ComputeDeadline(input)

	inputsJSON, err := json.Marshal(input)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode deadline inputs", err)
		return
	}
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode deadline results", err)
		return
	}

	calc, err := h.common.db.UpdateDeadlineCalculation(c.Request.Context(), db.UpdateDeadlineCalculationParams{
		ID:                 parsedUUID,
		MneName:            input.MNEName,
		FiscalYearEnd:      dateValue(result.FiscalYearEnd),
		IsFirstFiling:      input.IsFirstFiling,
		ApplicableDeadline: dateValue(result.ApplicableDeadline),
		Inputs:             inputsJSON,
		Results:            resultsJSON,
	})
	if err != nil {
		handleDBError(c, err, "Deadline calculation not found")
		return
	}

	sendSuccess(c, http.StatusOK, toDeadlineCalculationResponse(calc))
}

// DeleteDeadlineCalculation godoc
// @Summary Delete a saved deadline calculation
// @Description Delete a saved deadline calculation by ID
// @Tags deadlines
// @Produce json
// @Param deadline_id path string true "Deadline calculation ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /deadlines/{deadline_id} [delete]
func (h *DeadlineHandler) DeleteDeadlineCalculation(c *gin.Context) {
	deadlineID := c.Param("deadline_id")
	parsedUUID, err := uuid.Parse(deadlineID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid deadline ID format", err)
		return
	}

	if err := h.common.db.DeleteDeadlineCalculation(c.Request.Context(), parsedUUID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete deadline calculation", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Deadline calculation deleted successfully")
}

// SendDeadlineReminder godoc
// @Summary Email a filing deadline reminder
// @Description Recomputes the saved timeline as of today and emails the milestone summary to the given address
// @Tags deadlines
// @Accept json
// @Produce json
// @Param deadline_id path string true "Deadline calculation ID"
// @Param request body SendReminderRequest true "Recipient"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /deadlines/{deadline_id}/remind [post]
func (h *DeadlineHandler) SendDeadlineReminder(c *gin.Context) {
	deadlineID := c.Param("deadline_id")
	parsedUUID, err := uuid.Parse(deadlineID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid deadline ID format", err)
		return
	}

	var req SendReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	calc, err := h.common.db.GetDeadlineCalculation(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Deadline calculation not found")
		return
	}

	var input globe.DeadlineInput
	if err := json.Unmarshal(calc.Inputs, &input); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to decode saved deadline inputs", err)
		return
	}

	// Recompute so the day counts in the email are relative to today,
	// not the day the calculation was saved.
	result := globe.ComputeDeadline(input)

	if err := h.reminders.SendDeadlineReminder(req.Email, result); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to send reminder email", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Reminder sent successfully")
}

func toDeadlineCalculationResponse(calc db.DeadlineCalculation) DeadlineCalculationResponse {
	fiscalYearEnd := ""
	if calc.FiscalYearEnd.Valid {
		fiscalYearEnd = calc.FiscalYearEnd.Time.Format(dateLayout)
	}
	applicableDeadline := ""
	if calc.ApplicableDeadline.Valid {
		applicableDeadline = calc.ApplicableDeadline.Time.Format(dateLayout)
	}

	return DeadlineCalculationResponse{
		ID:                 calc.ID.String(),
		Object:             "deadline_calculation",
		MNEName:            calc.MneName,
		FiscalYearEnd:      fiscalYearEnd,
		IsFirstFiling:      calc.IsFirstFiling,
		ApplicableDeadline: applicableDeadline,
		Inputs:             json.RawMessage(calc.Inputs),
		Results:            json.RawMessage(calc.Results),
		CreatedAt:          unixOrZero(calc.CreatedAt),
		UpdatedAt:          unixOrZero(calc.UpdatedAt),
	}
}
