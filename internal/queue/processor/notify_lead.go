package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/perf-studios/waitlist-backend/internal/queue/task"
	"github.com/perf-studios/waitlist-backend/internal/worker"

	"github.com/hibiken/asynq"
)

type notifyLeadProcessor struct {
	workers *worker.Workers
}

func NewNotifyLeadProcessor(workers *worker.Workers) *notifyLeadProcessor {
	return &notifyLeadProcessor{
		workers: workers,
	}
}

func (p *notifyLeadProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.NotifyLead
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process notify lead task json unmarshal failed: %w", err)
	}

	lead := worker.NewLead{
		SignupID:         data.SignupID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		Phone:            data.Phone,
		MarketingConsent: data.MarketingConsent,
		CreatedAt:        data.CreatedAt,
	}

	if err = p.workers.LeadMailer.SendNewLeadEmail(ctx, lead); err != nil {
		return fmt.Errorf("send new lead email failed: %w", err)
	}

	return nil
}
