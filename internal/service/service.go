package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/perf-studios/waitlist-backend/internal/config"
	"github.com/perf-studios/waitlist-backend/internal/domain"
	"github.com/perf-studios/waitlist-backend/internal/repository"
)

type Services struct {
	Signups Signups
}

type Deps struct {
	Config     *config.Config
	Repos      *repository.Repositories
	Notifier   LeadNotifier
	CountCache CountCache
}

func NewServices(deps Deps) *Services {
	return &Services{
		Signups: newSignupService(deps.Repos.Signups, deps.Notifier, deps.CountCache),
	}
}

type Signups interface {
	Create(ctx context.Context, input SignupInput) (*domain.EmailSignup, error)
	Count(ctx context.Context) (int64, error)
	GenerateVerificationToken(ctx context.Context, id uuid.UUID) (string, error)
	VerifyEmail(ctx context.Context, token string) error
}

// LeadNotifier dispatches the admin notification for an accepted
// signup off the request path.
type LeadNotifier interface {
	NotifyNewLead(ctx context.Context, signup *domain.EmailSignup) error
}

// CountCache is the display-counter cache; implementations are best
// effort and may always miss.
type CountCache interface {
	Get(ctx context.Context) (int64, bool)
	Set(ctx context.Context, count int64)
	Invalidate(ctx context.Context)
}
