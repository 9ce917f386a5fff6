package services

import (
	"bytes"
	"fmt"
	"html/template"

	"globe-api/internal/globe"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// emailSender is the slice of the resend client the reminder service
// uses. Narrowed so tests can substitute a stub.
type emailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ReminderService sends filing deadline reminder emails.
type ReminderService struct {
	emails    emailSender
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

// NewReminderService creates a ReminderService backed by the Resend API.
func NewReminderService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *ReminderService {
	client := resend.NewClient(apiKey)

	return &ReminderService{
		emails:    client.Emails,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// reminderData feeds the reminder email template.
type reminderData struct {
	MNEName            string
	FiscalYearEnd      string
	ApplicableDeadline string
	DaysRemaining      int
	Overdue            bool
	Milestones         []milestoneRow
}

type milestoneRow struct {
	Name        string
	Description string
	Date        string
	DaysAway    int
	Passed      bool
}

var reminderTemplate = template.Must(template.New("deadline_reminder").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #1a1a2e;">
	<h2>GIR filing reminder: {{.MNEName}}</h2>
	{{if .Overdue}}
	<p><strong>The filing deadline of {{.ApplicableDeadline}} has passed.</strong> The return for the fiscal year ended {{.FiscalYearEnd}} is {{.DaysRemaining}} day(s) overdue.</p>
	{{else}}
	<p>The GloBE Information Return for the fiscal year ended {{.FiscalYearEnd}} is due on <strong>{{.ApplicableDeadline}}</strong> &mdash; {{.DaysRemaining}} day(s) from today.</p>
	{{end}}
	<h3>Preparation timeline</h3>
	<table cellpadding="6" cellspacing="0" border="0">
		{{range .Milestones}}
		<tr>
			<td><strong>{{.Name}}</strong></td>
			<td>{{.Date}}</td>
			<td>{{if .Passed}}passed{{else}}in {{.DaysAway}} day(s){{end}}</td>
			<td>{{.Description}}</td>
		</tr>
		{{end}}
	</table>
</body>
</html>`))

const reminderDateLayout = "2 January 2006"

// SendDeadlineReminder renders the milestone timeline for a computed
// deadline result and emails it to the given address.
func (s *ReminderService) SendDeadlineReminder(toEmail string, result globe.DeadlineResult) error {
	data := reminderData{
		MNEName:            result.MNEName,
		FiscalYearEnd:      result.FiscalYearEnd.Format(reminderDateLayout),
		ApplicableDeadline: result.ApplicableDeadline.Format(reminderDateLayout),
		DaysRemaining:      result.DaysRemaining,
		Overdue:            result.DaysRemaining < 0,
	}
	if data.Overdue {
		data.DaysRemaining = -data.DaysRemaining
	}

	for _, m := range result.Milestones {
		data.Milestones = append(data.Milestones, milestoneRow{
			Name:        m.Name,
			Description: m.Description,
			Date:        m.Date.Format(reminderDateLayout),
			DaysAway:    m.DaysAway,
			Passed:      m.DaysAway < 0,
		})
	}

	var html bytes.Buffer
	if err := reminderTemplate.Execute(&html, data); err != nil {
		return errors.Wrap(err, "failed to render reminder email")
	}

	subject := fmt.Sprintf("GIR filing deadline for %s: %s", result.MNEName, data.ApplicableDeadline)
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{toEmail},
		Subject: subject,
		Html:    html.String(),
		Tags: []resend.Tag{
			{Name: "category", Value: "deadline_reminder"},
		},
	}

	sent, err := s.emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send deadline reminder",
			zap.Error(err),
			zap.String("to", toEmail),
			zap.String("mne_name", result.MNEName))
		return errors.Wrap(err, "failed to send email")
	}

	s.logger.Info("deadline reminder sent",
		zap.String("email_id", sent.Id),
		zap.String("to", toEmail),
		zap.String("mne_name", result.MNEName))

	return nil
}
