package handlers

import (
	"net/http"
	"strings"

	"globe-api/internal/globe"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the static reference data the calculators are
// built on: jurisdiction profiles and the published rate schedules.
type ReferenceHandler struct {
	common *CommonServices
}

// NewReferenceHandler creates a new ReferenceHandler instance
func NewReferenceHandler(common *CommonServices) *ReferenceHandler {
	return &ReferenceHandler{common: common}
}

// SBIEScheduleEntry is one year of the substance carve-out phase-down
type SBIEScheduleEntry struct {
	Year        int     `json:"year"`
	PayrollRate float64 `json:"payroll_rate"`
	AssetRate   float64 `json:"asset_rate"`
}

// TransitionRateEntry is one year of the safe harbour transition rate
// schedule
type TransitionRateEntry struct {
	Year int     `json:"year"`
	Rate float64 `json:"rate"`
}

// ListJurisdictions godoc
// @Summary List jurisdiction profiles
// @Description List the jurisdictions the calculators ship filing guidance for
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /jurisdictions [get]
func (h *ReferenceHandler) ListJurisdictions(c *gin.Context) {
	sendList(c, globe.Jurisdictions())
}

// GetJurisdiction godoc
// @Summary Get a jurisdiction profile
// @Description Get filing guidance for one jurisdiction by ISO code
// @Tags reference
// @Produce json
// @Param code path string true "Jurisdiction code"
// @Success 200 {object} globe.JurisdictionInfo
// @Failure 404 {object} ErrorResponse
// @Router /jurisdictions/{code} [get]
func (h *ReferenceHandler) GetJurisdiction(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	info, ok := globe.JurisdictionByCode(code)
	if !ok {
		sendError(c, http.StatusNotFound, "Jurisdiction not found", nil)
		return
	}

	sendSuccess(c, http.StatusOK, info)
}

// GetSBIESchedule godoc
// @Summary Get the substance carve-out rate schedule
// @Description Get the payroll and tangible asset carve-out rates for every year of the phase-down
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /rates/sbie [get]
func (h *ReferenceHandler) GetSBIESchedule(c *gin.Context) {
	years := globe.SBIEScheduleYears()
	entries := make([]SBIEScheduleEntry, len(years))
	for i, year := range years {
		rates := globe.SBIERates(year)
		entries[i] = SBIEScheduleEntry{
			Year:        year,
			PayrollRate: rates.Payroll,
			AssetRate:   rates.Asset,
		}
	}

	sendList(c, entries)
}

// GetTransitionRates godoc
// @Summary Get the safe harbour transition rates
// @Description Get the simplified ETR threshold for every year of the transitional safe harbour
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /rates/transition [get]
func (h *ReferenceHandler) GetTransitionRates(c *gin.Context) {
	years := globe.TransitionScheduleYears()
	entries := make([]TransitionRateEntry, len(years))
	for i, year := range years {
		entries[i] = TransitionRateEntry{
			Year: year,
			Rate: globe.TransitionRate(year),
		}
	}

	sendList(c, entries)
}
