package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"globe-api/internal/db"
	"globe-api/internal/globe"
	"globe-api/internal/handlers"
	"globe-api/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDeadlineRouter(t *testing.T) (*gin.Engine, *mocks.MockQuerier) {
	ctrl := gomock.NewController(t)
	querier := mocks.NewMockQuerier(ctrl)

	h := handlers.NewDeadlineHandler(handlers.NewCommonServices(querier), nil)

	r := gin.New()
	r.POST("/deadlines/compute", h.ComputeDeadline)
	r.POST("/deadlines", h.CreateDeadlineCalculation)
	r.GET("/deadlines", h.ListDeadlineCalculations)
	r.GET("/deadlines/:deadline_id", h.GetDeadlineCalculation)
	r.PUT("/deadlines/:deadline_id", h.UpdateDeadlineCalculation)
	r.DELETE("/deadlines/:deadline_id", h.DeleteDeadlineCalculation)
	r.POST("/deadlines/:deadline_id/remind", h.SendDeadlineReminder)
	return r, querier
}

func TestComputeDeadline(t *testing.T) {
	r, _ := newDeadlineRouter(t)

	input := globe.DeadlineInput{
		MNEName:       "Acme Group",
		FiscalYearEnd: "2024-12-31",
		IsFirstFiling: true,
	}

	w := doJSON(t, r, http.MethodPost, "/deadlines/compute", input)
	require.Equal(t, http.StatusOK, w.Code)

	var result globe.DeadlineResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Acme Group", result.MNEName)
	assert.Equal(t, time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC), result.ApplicableDeadline)
	assert.Len(t, result.Milestones, 4)
}

func TestComputeDeadline_ValidationFailure(t *testing.T) {
	r, _ := newDeadlineRouter(t)

	w := doJSON(t, r, http.MethodPost, "/deadlines/compute", globe.DeadlineInput{
		MNEName:       "Acme Group",
		FiscalYearEnd: "2022-12-31",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateDeadlineCalculation(t *testing.T) {
	r, querier := newDeadlineRouter(t)

	calcID := uuid.New()
	querier.EXPECT().
		CreateDeadlineCalculation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, arg db.CreateDeadlineCalculationParams) (db.DeadlineCalculation, error) {
			assert.Equal(t, "Acme Group", arg.MneName)
			assert.True(t, arg.IsFirstFiling)
			assert.Equal(t, time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC), arg.ApplicableDeadline.Time)
			return db.DeadlineCalculation{
				ID:                 calcID,
				MneName:            arg.MneName,
				FiscalYearEnd:      arg.FiscalYearEnd,
				IsFirstFiling:      arg.IsFirstFiling,
				ApplicableDeadline: arg.ApplicableDeadline,
				Inputs:             arg.Inputs,
				Results:            arg.Results,
			}, nil
		}).
		Times(1)

	w := doJSON(t, r, http.MethodPost, "/deadlines", globe.DeadlineInput{
		MNEName:       "Acme Group",
		FiscalYearEnd: "2024-12-31",
		IsFirstFiling: true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp handlers.DeadlineCalculationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, calcID.String(), resp.ID)
	assert.Equal(t, "deadline_calculation", resp.Object)
	assert.Equal(t, "2026-06-30", resp.ApplicableDeadline)
	assert.Equal(t, "2024-12-31", resp.FiscalYearEnd)
}

func TestGetDeadlineCalculation_NotFound(t *testing.T) {
	r, querier := newDeadlineRouter(t)

	calcID := uuid.New()
	querier.EXPECT().
		GetDeadlineCalculation(gomock.Any(), calcID).
		Return(db.DeadlineCalculation{}, pgx.ErrNoRows).
		Times(1)

	w := doJSON(t, r, http.MethodGet, "/deadlines/"+calcID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendDeadlineReminder_InvalidID(t *testing.T) {
	r, _ := newDeadlineRouter(t)

	w := doJSON(t, r, http.MethodPost, "/deadlines/nope/remind", handlers.SendReminderRequest{Email: "cfo@acme.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendDeadlineReminder_InvalidEmail(t *testing.T) {
	r, _ := newDeadlineRouter(t)

	w := doJSON(t, r, http.MethodPost, "/deadlines/"+uuid.New().String()+"/remind", handlers.SendReminderRequest{Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendDeadlineReminder_NotFound(t *testing.T) {
	r, querier := newDeadlineRouter(t)

	calcID := uuid.New()
	querier.EXPECT().
		GetDeadlineCalculation(gomock.Any(), calcID).
		Return(db.DeadlineCalculation{}, pgx.ErrNoRows).
		Times(1)

	w := doJSON(t, r, http.MethodPost, "/deadlines/"+calcID.String()+"/remind", handlers.SendReminderRequest{Email: "cfo@acme.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListDeadlineCalculations(t *testing.T) {
	r, querier := newDeadlineRouter(t)

	querier.EXPECT().
		ListDeadlineCalculations(gomock.Any()).
		Return([]db.DeadlineCalculation{
			{
				ID:                 uuid.New(),
				MneName:            "Acme Group",
				FiscalYearEnd:      pgtype.Date{Time: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), Valid: true},
				ApplicableDeadline: pgtype.Date{Time: time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC), Valid: true},
				Inputs:             []byte("{}"),
				Results:            []byte("{}"),
			},
		}, nil).
		Times(1)

	w := doJSON(t, r, http.MethodGet, "/deadlines", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []handlers.DeadlineCalculationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "2026-06-30", resp.Data[0].ApplicableDeadline)
}
