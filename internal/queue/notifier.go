package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/perf-studios/waitlist-backend/internal/domain"
	"github.com/perf-studios/waitlist-backend/internal/queue/client"
	"github.com/perf-studios/waitlist-backend/internal/queue/task"
)

// LeadNotifier dispatches new-lead notifications by enqueueing a task
// for the asynq server. Enqueueing returns as soon as redis accepts
// the task, so delivery never sits on the request path.
type LeadNotifier struct{}

func NewLeadNotifier() *LeadNotifier {
	return &LeadNotifier{}
}

func (n *LeadNotifier) NotifyNewLead(ctx context.Context, signup *domain.EmailSignup) error {
	t, err := task.NewNotifyLeadTask(task.NotifyLead{
		SignupID:         signup.ID.String(),
		FirstName:        signup.FirstName,
		LastName:         signup.LastName,
		Email:            signup.Email,
		Phone:            signup.Phone,
		MarketingConsent: signup.MarketingConsent,
		CreatedAt:        signup.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("build notify lead task failed: %w", err)
	}

	c := client.GetClient(ctx)
	if c == nil {
		return errors.New("asynq client is not configured")
	}

	if _, err := c.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue notify lead task failed: %w", err)
	}

	return nil
}
