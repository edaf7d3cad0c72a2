package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/perf-studios/waitlist-backend/internal/config"
	"github.com/perf-studios/waitlist-backend/pkg/email"
	mock_email "github.com/perf-studios/waitlist-backend/pkg/email/mock"
)

func testLead() NewLead {
	return NewLead{
		SignupID:         "0192aaf0-5a52-7a7e-b7cb-0cf2f64cbd2a",
		FirstName:        "John",
		LastName:         "Doe",
		Email:            "john@example.com",
		Phone:            "123-456-7890",
		MarketingConsent: true,
		CreatedAt:        time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC),
	}
}

func testEmailConfig() config.EmailConfig {
	return config.EmailConfig{
		Enabled:         true,
		AdminRecipients: []string{"owner@example.com", "manager@example.com"},
		AdminBaseURL:    "https://example.com",
	}
}

func TestSendNewLeadEmail(t *testing.T) {
	sender := new(mock_email.EmailSender)
	sender.On("Send", mock.AnythingOfType("email.SendEmailInput")).Return(nil)

	mailer := newLeadMailer(sender, testEmailConfig())

	require.NoError(t, mailer.SendNewLeadEmail(context.Background(), testLead()))
	sender.AssertNumberOfCalls(t, "Send", 2)

	sent := sender.Calls[0].Arguments.Get(0).(email.SendEmailInput)
	assert.Equal(t, "owner@example.com", sent.To)
	assert.Equal(t, "🎯 New Lead: John Doe", sent.Subject)
	assert.Contains(t, sent.Body, "Name: John Doe")
	assert.Contains(t, sent.Body, "Email: john@example.com")
	assert.Contains(t, sent.Body, "Phone: 123-456-7890")
	assert.Contains(t, sent.Body, "Marketing Consent: Yes")
	assert.Contains(t, sent.Body, "Submitted: March 05, 2026 at 2:30 PM")
	assert.Contains(t, sent.Body, "https://example.com/admin/signups/"+testLead().SignupID)
}

func TestSendNewLeadEmail_ConsentNo(t *testing.T) {
	sender := new(mock_email.EmailSender)
	sender.On("Send", mock.Anything).Return(nil)

	mailer := newLeadMailer(sender, testEmailConfig())

	lead := testLead()
	lead.MarketingConsent = false
	require.NoError(t, mailer.SendNewLeadEmail(context.Background(), lead))

	sent := sender.Calls[0].Arguments.Get(0).(email.SendEmailInput)
	assert.Contains(t, sent.Body, "Marketing Consent: No")
}

func TestSendNewLeadEmail_Disabled(t *testing.T) {
	sender := new(mock_email.EmailSender)

	cfg := testEmailConfig()
	cfg.Enabled = false
	mailer := newLeadMailer(sender, cfg)

	require.NoError(t, mailer.SendNewLeadEmail(context.Background(), testLead()))
	sender.AssertNotCalled(t, "Send", mock.Anything)
}

func TestSendNewLeadEmail_PartialFailureStillDeliversRest(t *testing.T) {
	sender := new(mock_email.EmailSender)
	sender.On("Send", mock.MatchedBy(func(inp email.SendEmailInput) bool {
		return inp.To == "owner@example.com"
	})).Return(errors.New("mailbox full"))
	sender.On("Send", mock.MatchedBy(func(inp email.SendEmailInput) bool {
		return inp.To == "manager@example.com"
	})).Return(nil)

	mailer := newLeadMailer(sender, testEmailConfig())

	err := mailer.SendNewLeadEmail(context.Background(), testLead())
	require.Error(t, err)
	sender.AssertNumberOfCalls(t, "Send", 2)
}
