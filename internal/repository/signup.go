package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/perf-studios/waitlist-backend/internal/db"
	"github.com/perf-studios/waitlist-backend/internal/domain"
)

type signupRepository struct {
	db *sqlx.DB
}

func newSignupRepository(db *sqlx.DB) *signupRepository {
	return &signupRepository{
		db: db,
	}
}

// Create inserts the signup. Unique keys on email and phone are the
// authoritative duplicate guard: a losing racer gets
// domain.ErrDuplicateEntry even if the existence checks passed earlier.
func (r *signupRepository) Create(ctx context.Context, signup *domain.EmailSignup) error {
	const op = "repository.signup.Create"

	const query = `
    INSERT INTO email_signup (id, first_name, last_name, email, phone, marketing_consent, email_verified, verification_token, created_at)
    VALUES (uuid_to_bin(:id), :first_name, :last_name, :email, :phone, :marketing_consent, :email_verified, :verification_token, :created_at)
    `

	res, err := r.db.NamedExecContext(ctx, query, signup)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("%s: insert signup failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows != 1 {
		return fmt.Errorf("%s: expected 1 row affected, got %d", op, rows)
	}

	return nil
}

func (r *signupRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.EmailSignup, error) {
	const op = "repository.signup.GetOneByID"

	const query = `
    SELECT id, first_name, last_name, email, phone, marketing_consent, email_verified, verification_token, created_at
    FROM email_signup
    WHERE id = uuid_to_bin(?)
    `

	var signup domain.EmailSignup
	if err := r.db.GetContext(ctx, &signup, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select signup failed: %w", op, err)
	}

	return &signup, nil
}

func (r *signupRepository) Count(ctx context.Context) (int64, error) {
	const op = "repository.signup.Count"

	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM email_signup"); err != nil {
		return 0, fmt.Errorf("%s: count signups failed: %w", op, err)
	}

	return count, nil
}

// EmailExists matches case-insensitively; the email column uses a
// case-insensitive collation so a plain equality compare suffices.
func (r *signupRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const op = "repository.signup.EmailExists"

	var exists bool
	const query = "SELECT EXISTS (SELECT 1 FROM email_signup WHERE email = ?)"
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("%s: select exists failed: %w", op, err)
	}

	return exists, nil
}

func (r *signupRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	const op = "repository.signup.PhoneExists"

	var exists bool
	const query = "SELECT EXISTS (SELECT 1 FROM email_signup WHERE phone = ?)"
	if err := r.db.GetContext(ctx, &exists, query, phone); err != nil {
		return false, fmt.Errorf("%s: select exists failed: %w", op, err)
	}

	return exists, nil
}

func (r *signupRepository) PairExists(ctx context.Context, email, phone string) (bool, error) {
	const op = "repository.signup.PairExists"

	var exists bool
	const query = "SELECT EXISTS (SELECT 1 FROM email_signup WHERE email = ? AND phone = ?)"
	if err := r.db.GetContext(ctx, &exists, query, email, phone); err != nil {
		return false, fmt.Errorf("%s: select exists failed: %w", op, err)
	}

	return exists, nil
}

func (r *signupRepository) UpdateVerificationToken(ctx context.Context, id uuid.UUID, token string) error {
	const op = "repository.signup.UpdateVerificationToken"

	const query = "UPDATE email_signup SET verification_token = ? WHERE id = uuid_to_bin(?)"
	res, err := r.db.ExecContext(ctx, query, token, id)
	if err != nil {
		return fmt.Errorf("%s: update verification token failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *signupRepository) MarkVerifiedByToken(ctx context.Context, token string) error {
	const op = "repository.signup.MarkVerifiedByToken"

	const query = "UPDATE email_signup SET email_verified = ? WHERE verification_token = ? AND verification_token <> ''"
	res, err := r.db.ExecContext(ctx, query, true, token)
	if err != nil {
		return fmt.Errorf("%s: update email verified failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}
