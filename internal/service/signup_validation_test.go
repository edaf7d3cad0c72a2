package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/perf-studios/waitlist-backend/internal/domain"
)

func TestValidateSignup_Valid(t *testing.T) {
	repo := newFreshRepoMock()
	svc := newSignupService(repo, nil, nil)

	draft, violations, err := svc.validateSignup(context.Background(), validInput())

	require.NoError(t, err)
	require.True(t, violations.Empty())
	require.NotNil(t, draft)
	assert.Equal(t, "john@example.com", draft.Email)
	assert.Equal(t, "123-456-7890", draft.Phone)
	assert.True(t, draft.MarketingConsent)
	assert.False(t, draft.EmailVerified)
	assert.Empty(t, draft.VerificationToken)
}

func TestValidateSignup_HoneypotShortCircuits(t *testing.T) {
	// Even with every other field invalid, a filled honeypot must
	// yield only the generic bot violation.
	repo := new(signupsRepoMock)
	svc := newSignupService(repo, nil, nil)

	input := SignupInput{Website: "http://spam.example"}
	draft, violations, err := svc.validateSignup(context.Background(), input)

	require.NoError(t, err)
	assert.Nil(t, draft)
	require.Len(t, violations, 1)
	assert.Equal(t, []string{"Bot detected. Please try again."}, violations[domain.NonFieldKey])
	repo.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
}

func TestValidateSignup_RequiredFields(t *testing.T) {
	repo := newFreshRepoMock()
	svc := newSignupService(repo, nil, nil)

	draft, violations, err := svc.validateSignup(context.Background(), SignupInput{})

	require.NoError(t, err)
	assert.Nil(t, draft)
	for _, field := range []string{"first_name", "last_name", "email", "phone"} {
		assert.Contains(t, violations, field)
	}
}

func TestValidateSignup_NameTooLong(t *testing.T) {
	repo := newFreshRepoMock()
	svc := newSignupService(repo, nil, nil)

	input := validInput()
	input.FirstName = strings.Repeat("a", 51)
	_, violations, err := svc.validateSignup(context.Background(), input)

	require.NoError(t, err)
	assert.Contains(t, violations, "first_name")
	assert.NotContains(t, violations, "last_name")
}

func TestValidateSignup_EmailSyntax(t *testing.T) {
	repo := newFreshRepoMock()
	svc := newSignupService(repo, nil, nil)

	input := validInput()
	input.Email = "not-an-email"
	_, violations, err := svc.validateSignup(context.Background(), input)

	require.NoError(t, err)
	require.Contains(t, violations, "email")
	repo.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
}

func TestValidateSignup_DisposableDomain(t *testing.T) {
	repo := newFreshRepoMock()
	svc := newSignupService(repo, nil, nil)

	for _, email := range []string{"test@mailinator.com", "Test@MAILINATOR.com", "a@yopmail.com"} {
		input := validInput()
		input.Email = email
		_, violations, err := svc.validateSignup(context.Background(), input)

		require.NoError(t, err)
		require.Contains(t, violations, "email", email)
		assert.Contains(t, violations["email"][0], "permanent email address")
	}
}

func TestValidateSignup_PhoneNormalization(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		want     string
		rejected bool
	}{
		{name: "formatted", phone: "(123) 456-7890", want: "123-456-7890"},
		{name: "dashes", phone: "123-456-7890", want: "123-456-7890"},
		{name: "bare digits", phone: "1234567890", want: "123-456-7890"},
		{name: "too short", phone: "12345", rejected: true},
		{name: "too long", phone: "1234567890123", rejected: true},
		{name: "letters only", phone: "call me", rejected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFreshRepoMock()
			svc := newSignupService(repo, nil, nil)

			input := validInput()
			input.Phone = tt.phone
			draft, violations, err := svc.validateSignup(context.Background(), input)

			require.NoError(t, err)
			if tt.rejected {
				require.Contains(t, violations, "phone")
				assert.Contains(t, violations["phone"][0], "exactly 10 digits")
				return
			}
			require.True(t, violations.Empty())
			assert.Equal(t, tt.want, draft.Phone)
		})
	}
}

func TestValidateSignup_DuplicateEmail(t *testing.T) {
	repo := new(signupsRepoMock)
	repo.On("EmailExists", mock.Anything, "john@example.com").Return(true, nil)
	repo.On("PhoneExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("PairExists", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	svc := newSignupService(repo, nil, nil)

	_, violations, err := svc.validateSignup(context.Background(), validInput())

	require.NoError(t, err)
	require.Contains(t, violations, "email")
	assert.Contains(t, violations["email"][0], "already registered")
}

func TestValidateSignup_DuplicatePair(t *testing.T) {
	repo := new(signupsRepoMock)
	repo.On("EmailExists", mock.Anything, mock.Anything).Return(true, nil)
	repo.On("PhoneExists", mock.Anything, mock.Anything).Return(true, nil)
	repo.On("PairExists", mock.Anything, "john@example.com", "123-456-7890").Return(true, nil)
	svc := newSignupService(repo, nil, nil)

	_, violations, err := svc.validateSignup(context.Background(), validInput())

	require.NoError(t, err)
	// All three duplicate rules report together.
	assert.Contains(t, violations, "email")
	assert.Contains(t, violations, "phone")
	require.Contains(t, violations, domain.NonFieldKey)
	assert.Contains(t, violations[domain.NonFieldKey][0], "already signed up with this email and phone number")
}

func TestValidateSignup_RejectionIsIdempotent(t *testing.T) {
	repo := newFreshRepoMock()
	svc := newSignupService(repo, nil, nil)

	input := validInput()
	input.Email = "test@tempmail.com"
	input.Phone = "12345"

	_, first, err := svc.validateSignup(context.Background(), input)
	require.NoError(t, err)
	_, second, err := svc.validateSignup(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestValidateSignup_MarketingConsentDefaultsFalse(t *testing.T) {
	repo := newFreshRepoMock()
	svc := newSignupService(repo, nil, nil)

	input := validInput()
	input.MarketingConsent = false
	draft, violations, err := svc.validateSignup(context.Background(), input)

	require.NoError(t, err)
	require.True(t, violations.Empty())
	assert.False(t, draft.MarketingConsent)
}
