package repository

import (
	"context"

	"github.com/perf-studios/waitlist-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Signups Signups
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Signups: newSignupRepository(db),
	}
}

type Signups interface {
	Create(ctx context.Context, signup *domain.EmailSignup) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.EmailSignup, error)
	Count(ctx context.Context) (int64, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	PairExists(ctx context.Context, email, phone string) (bool, error)
	UpdateVerificationToken(ctx context.Context, id uuid.UUID, token string) error
	MarkVerifiedByToken(ctx context.Context, token string) error
}
