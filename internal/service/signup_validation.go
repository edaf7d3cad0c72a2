package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/perf-studios/waitlist-backend/internal/domain"
	pkgvalidator "github.com/perf-studios/waitlist-backend/pkg/validator"
)

// Known disposable/temporary email providers. Signups from these
// domains are rejected so the waitlist holds reachable addresses.
var disposableEmailDomains = map[string]struct{}{
	"tempmail.com":      {},
	"10minutemail.com":  {},
	"guerrillamail.com": {},
	"mailinator.com":    {},
	"throwaway.email":   {},
	"temp-mail.org":     {},
	"fakeinbox.com":     {},
	"trashmail.com":     {},
	"yopmail.com":       {},
	"emailondeck.com":   {},
	"getnada.com":       {},
	"maildrop.cc":       {},
}

const (
	msgBotDetected     = "Bot detected. Please try again."
	msgInvalidEmail    = "Invalid email format"
	msgDisposableEmail = "Please use a permanent email address, not a temporary/disposable one."
	msgEmailRegistered = "This email is already registered on our waitlist."
	msgPhoneInvalid    = "Phone number must be exactly 10 digits (format: 555-123-4567)"
	msgPhoneRegistered = "This phone number is already registered on our waitlist."
	msgPairRegistered  = "You have already signed up with this email and phone number."
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	pkgvalidator.RegisterJSONTagNames(v)
	return v
}

// validateSignup applies every rule and aggregates the violations so a
// rejected submitter sees all of them at once. The one exception is
// the honeypot: a filled honeypot rejects immediately with a single
// form-level violation so bots learn nothing about the other fields.
// The returned error is a system failure (e.g. the store), distinct
// from violations.
func (s *signupService) validateSignup(ctx context.Context, input SignupInput) (*domain.EmailSignup, domain.FieldViolations, error) {
	violations := make(domain.FieldViolations)

	if input.Website != "" {
		violations.Add(domain.NonFieldKey, msgBotDetected)
		return nil, violations, nil
	}

	if err := validate.Struct(input); err != nil {
		verr, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, nil, fmt.Errorf("validate signup input: %w", err)
		}
		for _, ferr := range verr {
			violations.Add(ferr.Field(), msgForTag(ferr.Tag(), ferr.Param()))
		}
	}

	email, emailOK := s.validateEmail(ctx, input.Email, violations)
	phone, phoneOK := validatePhone(input.Phone, violations)

	if emailOK {
		exists, err := s.signupRepository.EmailExists(ctx, email)
		if err != nil {
			return nil, nil, fmt.Errorf("email exists check failed: %w", err)
		}
		if exists {
			violations.Add("email", msgEmailRegistered)
		}
	}

	if phoneOK {
		exists, err := s.signupRepository.PhoneExists(ctx, phone)
		if err != nil {
			return nil, nil, fmt.Errorf("phone exists check failed: %w", err)
		}
		if exists {
			violations.Add("phone", msgPhoneRegistered)
		}
	}

	// Redundant with the single-field checks above, but kept so the
	// pair rule survives any future relaxation of either unique key.
	if emailOK && phoneOK {
		exists, err := s.signupRepository.PairExists(ctx, email, phone)
		if err != nil {
			return nil, nil, fmt.Errorf("pair exists check failed: %w", err)
		}
		if exists {
			violations.Add(domain.NonFieldKey, msgPairRegistered)
		}
	}

	if !violations.Empty() {
		return nil, violations, nil
	}

	return &domain.EmailSignup{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            email,
		Phone:            phone,
		MarketingConsent: input.MarketingConsent,
	}, nil, nil
}

// validateEmail lowercases the address and checks its domain against
// the disposable denylist. Splits on the last "@" so a quoted
// local-part cannot smuggle a denylisted domain past the check.
func (s *signupService) validateEmail(_ context.Context, raw string, violations domain.FieldViolations) (string, bool) {
	if violations["email"] != nil {
		return "", false
	}

	email := strings.ToLower(strings.TrimSpace(raw))

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		violations.Add("email", msgInvalidEmail)
		return "", false
	}

	if _, blocked := disposableEmailDomains[email[at+1:]]; blocked {
		violations.Add("email", msgDisposableEmail)
		return "", false
	}

	return email, true
}

// validatePhone strips every non-digit, requires exactly 10 remaining
// and reformats as ddd-ddd-dddd.
func validatePhone(raw string, violations domain.FieldViolations) (string, bool) {
	if violations["phone"] != nil {
		return "", false
	}

	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) != 10 {
		violations.Add("phone", msgPhoneInvalid)
		return "", false
	}

	return d[:3] + "-" + d[3:6] + "-" + d[6:], true
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return msgInvalidEmail
	case "max":
		return fmt.Sprintf("Ensure this field has at most %v characters.", value)
	}
	return tag
}
