package services

import (
	"errors"
	"testing"
	"time"

	"globe-api/internal/globe"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSender struct {
	lastParams *resend.SendEmailRequest
	err        error
}

func (s *stubSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	s.lastParams = params
	if s.err != nil {
		return nil, s.err
	}
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func testResult() globe.DeadlineResult {
	fye := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	return globe.DeadlineResult{
		MNEName:            "Acme Group",
		FiscalYearEnd:      fye,
		IsFirstFiling:      true,
		StandardDeadline:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		ApplicableDeadline: deadline,
		DaysRemaining:      120,
		Milestones: []globe.Milestone{
			{Name: "Data collection", Description: "Begin gathering entity data", Date: deadline.AddDate(0, -6, 0), DaysAway: -60},
			{Name: "Filing deadline", Description: "Submit the return", Date: deadline, DaysAway: 120, IsDeadline: true},
		},
	}
}

func TestSendDeadlineReminder(t *testing.T) {
	sender := &stubSender{}
	svc := &ReminderService{
		emails:    sender,
		logger:    zap.NewNop(),
		fromEmail: "reminders@example.com",
		fromName:  "GloBE Reminders",
	}

	err := svc.SendDeadlineReminder("cfo@acme.com", testResult())
	require.NoError(t, err)

	require.NotNil(t, sender.lastParams)
	assert.Equal(t, []string{"cfo@acme.com"}, sender.lastParams.To)
	assert.Equal(t, "GloBE Reminders <reminders@example.com>", sender.lastParams.From)
	assert.Contains(t, sender.lastParams.Subject, "Acme Group")
	assert.Contains(t, sender.lastParams.Subject, "30 June 2026")
	assert.Contains(t, sender.lastParams.Html, "Acme Group")
	assert.Contains(t, sender.lastParams.Html, "120 day(s) from today")
	assert.Contains(t, sender.lastParams.Html, "Data collection")
	assert.Contains(t, sender.lastParams.Html, "passed")
}

func TestSendDeadlineReminder_Overdue(t *testing.T) {
	sender := &stubSender{}
	svc := &ReminderService{
		emails:    sender,
		logger:    zap.NewNop(),
		fromEmail: "reminders@example.com",
		fromName:  "GloBE Reminders",
	}

	result := testResult()
	result.DaysRemaining = -5

	err := svc.SendDeadlineReminder("cfo@acme.com", result)
	require.NoError(t, err)
	assert.Contains(t, sender.lastParams.Html, "has passed")
	assert.Contains(t, sender.lastParams.Html, "5 day(s) overdue")
}

func TestSendDeadlineReminder_SendFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("rate limited")}
	svc := &ReminderService{
		emails:    sender,
		logger:    zap.NewNop(),
		fromEmail: "reminders@example.com",
		fromName:  "GloBE Reminders",
	}

	err := svc.SendDeadlineReminder("cfo@acme.com", testResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}
