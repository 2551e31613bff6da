package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusOpen      = "OPEN"
	StatusDone      = "DONE"
	StatusCancelled = "CANCELLED"
)

// Job is a work order. Worker holds a comma-separated list of staff names
// jointly responsible; the first name is the team lead for reporting, but
// the settlement split treats all listed workers as equals.
type Job struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Client string    `gorm:"column:client;type:varchar(200);not null"`
	Worker string    `gorm:"column:worker;type:varchar(300);not null"`

	// Money in the smallest whole currency unit.
	Amount int64 `gorm:"column:amount;type:bigint;not null;default:0"`
	Fee    int64 `gorm:"column:fee;type:bigint;not null;default:0"`

	Parts  PartsField `gorm:"column:parts;type:text"`
	Status string     `gorm:"column:status;type:varchar(20);not null;default:'OPEN';index"`
	Date   time.Time  `gorm:"column:date;type:date;not null;index"`
	Note   string     `gorm:"column:note;type:text"`

	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	CompletedAt *time.Time     `gorm:"column:completed_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Job) TableName() string {
	return "jobs"
}

// WorkerNames splits the worker list. Always returns at least one element:
// an empty worker string yields one empty token, which downstream treats as
// an unmatched name rather than dividing by zero.
func (j Job) WorkerNames() []string {
	parts := strings.Split(j.Worker, ",")
	names := make([]string, len(parts))
	for i, part := range parts {
		names[i] = strings.TrimSpace(part)
	}
	return names
}

// TeamLead is the first-listed worker, used for reporting groupings only.
func (j Job) TeamLead() string {
	return j.WorkerNames()[0]
}
