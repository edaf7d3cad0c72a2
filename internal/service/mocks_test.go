package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/perf-studios/waitlist-backend/internal/domain"
	"github.com/perf-studios/waitlist-backend/internal/repository/mocks"
)

type signupsRepoMock = mocks.Signups

func newFreshRepoMock() *signupsRepoMock {
	return mocks.Fresh()
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) NotifyNewLead(ctx context.Context, signup *domain.EmailSignup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}

func validInput() SignupInput {
	return SignupInput{
		FirstName:        "John",
		LastName:         "Doe",
		Email:            "JOHN@Example.com",
		Phone:            "123-456-7890",
		MarketingConsent: true,
	}
}
