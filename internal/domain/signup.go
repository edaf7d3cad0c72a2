package domain

import (
	"time"

	"github.com/google/uuid"
)

type EmailSignup struct {
	ID                uuid.UUID `json:"id" db:"id"`
	FirstName         string    `json:"first_name" db:"first_name"`
	LastName          string    `json:"last_name" db:"last_name"`
	Email             string    `json:"email" db:"email"`
	Phone             string    `json:"phone" db:"phone"`
	MarketingConsent  bool      `json:"marketing_consent" db:"marketing_consent"`
	EmailVerified     bool      `json:"email_verified" db:"email_verified"`
	VerificationToken string    `json:"-" db:"verification_token"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

func (s *EmailSignup) FullName() string {
	return s.FirstName + " " + s.LastName
}
