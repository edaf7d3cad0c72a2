package worker

import (
	"context"

	"github.com/perf-studios/waitlist-backend/internal/config"
	emailProvider "github.com/perf-studios/waitlist-backend/pkg/email"
)

type Workers struct {
	LeadMailer LeadMailer
}

type Deps struct {
	EmailSender emailProvider.Sender
	Config      *config.Config
}

type LeadMailer interface {
	SendNewLeadEmail(ctx context.Context, lead NewLead) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		LeadMailer: newLeadMailer(deps.EmailSender, deps.Config.Email),
	}
}
