package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/perf-studios/waitlist-backend/internal/domain"
	"github.com/perf-studios/waitlist-backend/internal/repository"
	"github.com/perf-studios/waitlist-backend/pkg/logger"
)

// SignupInput carries the raw submitted form values. Website is the
// honeypot: hidden from real users, any value means a bot filled it.
type SignupInput struct {
	FirstName        string `json:"first_name" validate:"required,max=50"`
	LastName         string `json:"last_name" validate:"required,max=50"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	MarketingConsent bool   `json:"marketing_consent"`
	Website          string `json:"website"`
}

type signupService struct {
	signupRepository repository.Signups
	notifier         LeadNotifier
	countCache       CountCache
}

func newSignupService(signupRepository repository.Signups, notifier LeadNotifier, countCache CountCache) *signupService {
	return &signupService{
		signupRepository: signupRepository,
		notifier:         notifier,
		countCache:       countCache,
	}
}

// Create validates the submission, persists it and dispatches the
// admin notification. A duplicate lost at insert time (the existence
// checks raced a concurrent submission) surfaces as the same
// "already registered" violation a validator-detected duplicate would.
func (s *signupService) Create(ctx context.Context, input SignupInput) (*domain.EmailSignup, error) {
	draft, violations, err := s.validateSignup(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("signup validation failed: %w", err)
	}
	if !violations.Empty() {
		return nil, domain.NewValidationError(violations)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate signup id failed: %w", err)
	}
	draft.ID = id
	draft.CreatedAt = time.Now()

	if err := s.signupRepository.Create(ctx, draft); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			violations = make(domain.FieldViolations)
			violations.Add("email", msgEmailRegistered)
			return nil, domain.NewValidationError(violations)
		}
		return nil, fmt.Errorf("create signup failed: %w", err)
	}

	if s.countCache != nil {
		s.countCache.Invalidate(ctx)
	}

	// Best effort: the signup is committed, a lost notification must
	// never fail the request.
	if err := s.notifier.NotifyNewLead(ctx, draft); err != nil {
		logger.Error("new lead notification dispatch failed",
			zap.String("signup_id", draft.ID.String()), zap.Error(err))
	}

	return draft, nil
}

func (s *signupService) Count(ctx context.Context) (int64, error) {
	if s.countCache != nil {
		if count, ok := s.countCache.Get(ctx); ok {
			return count, nil
		}
	}

	count, err := s.signupRepository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count signups failed: %w", err)
	}

	if s.countCache != nil {
		s.countCache.Set(ctx, count)
	}

	return count, nil
}

// GenerateVerificationToken overwrites any previous token with a fresh
// one; every call yields a new value.
func (s *signupService) GenerateVerificationToken(ctx context.Context, id uuid.UUID) (string, error) {
	token := uuid.NewString()

	if err := s.signupRepository.UpdateVerificationToken(ctx, id, token); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrSignupNotFound
		}
		return "", fmt.Errorf("update verification token failed: %w", err)
	}

	return token, nil
}

func (s *signupService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return ErrSignupNotFound
	}

	if err := s.signupRepository.MarkVerifiedByToken(ctx, token); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrSignupNotFound
		}
		return fmt.Errorf("mark verified failed: %w", err)
	}

	return nil
}
