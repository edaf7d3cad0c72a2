package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	NotifyLeadTaskName  = "notifyLeadTask"
	NotifyLeadQueueName = "notifyLeadQueue"
)

type NotifyLead struct {
	SignupID         string    `json:"signup_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	MarketingConsent bool      `json:"marketing_consent"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewNotifyLeadTask builds the admin-notification task. Notification
// delivery is best effort, so the task is not retried on failure.
func NewNotifyLeadTask(data NotifyLead) (*asynq.Task, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		NotifyLeadTaskName,
		payload,
		asynq.MaxRetry(0),
		asynq.Queue(NotifyLeadQueueName),
	), nil
}
