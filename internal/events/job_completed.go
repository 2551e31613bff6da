package events

import "time"

const JobCompletedTopic = "ops.job.lifecycle.v1"

type JobCompletedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	JobID      string    `json:"job_id"`
	Client     string    `json:"client"`
	Amount     int64     `json:"amount"`
	Workers    []string  `json:"workers"`
	OccurredAt time.Time `json:"occurred_at"`
}
