package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/perf-studios/waitlist-backend/internal/domain"
)

type Signups struct {
	mock.Mock
}

func (m *Signups) Create(ctx context.Context, signup *domain.EmailSignup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}

func (m *Signups) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.EmailSignup, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.EmailSignup), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Signups) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Signups) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *Signups) PhoneExists(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *Signups) PairExists(ctx context.Context, email, phone string) (bool, error) {
	args := m.Called(ctx, email, phone)
	return args.Bool(0), args.Error(1)
}

func (m *Signups) UpdateVerificationToken(ctx context.Context, id uuid.UUID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *Signups) MarkVerifiedByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Fresh returns a repository where nothing exists yet; inserts are
// left for the test to stub.
func Fresh() *Signups {
	repo := new(Signups)
	repo.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("PhoneExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("PairExists", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	return repo
}
