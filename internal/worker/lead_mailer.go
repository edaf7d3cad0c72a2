package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/perf-studios/waitlist-backend/internal/config"
	emailProvider "github.com/perf-studios/waitlist-backend/pkg/email"
)

// NewLead is the notification payload for one accepted signup.
type NewLead struct {
	SignupID         string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	MarketingConsent bool
	CreatedAt        time.Time
}

type leadMailer struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newLeadMailer(sender emailProvider.Sender, config config.EmailConfig) *leadMailer {
	return &leadMailer{
		sender: sender,
		config: config,
	}
}

const submittedAtLayout = "January 02, 2006 at 3:04 PM"

// SendNewLeadEmail delivers the plain-text lead summary to every
// configured admin recipient. A failure for one recipient does not
// stop delivery to the rest; the last failure is returned.
func (m *leadMailer) SendNewLeadEmail(ctx context.Context, lead NewLead) error {
	if !m.config.Enabled {
		return nil
	}

	subject := fmt.Sprintf("🎯 New Lead: %s %s", lead.FirstName, lead.LastName)
	body := m.composeBody(lead)

	var lastErr error
	for _, recipient := range m.config.AdminRecipients {
		sendInput := emailProvider.SendEmailInput{
			To:      recipient,
			Subject: subject,
			Body:    body,
		}
		if err := m.sender.Send(sendInput); err != nil {
			lastErr = fmt.Errorf("send new lead email to %s failed: %w", recipient, err)
		}
	}

	return lastErr
}

func (m *leadMailer) composeBody(lead NewLead) string {
	consent := "No"
	if lead.MarketingConsent {
		consent = "Yes"
	}

	return fmt.Sprintf(`New signup received from the 247 Performance Studios website!

Contact Details:
Name: %s %s
Email: %s
Phone: %s
Marketing Consent: %s
Submitted: %s

View in admin panel:
%s/admin/signups/%s
`,
		lead.FirstName, lead.LastName,
		lead.Email,
		lead.Phone,
		consent,
		lead.CreatedAt.Format(submittedAtLayout),
		m.config.AdminBaseURL, lead.SignupID,
	)
}
