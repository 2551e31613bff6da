package inventory

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReasonUsedOnJob  = "used_on_job"
	ReasonAdjustment = "adjustment"
	ReasonReturn     = "return"
)

// OutboundPart records parts physically issued from stock. When issued
// against a job (reason used_on_job), TotalAmount is the authoritative part
// cost for that job in the settlement, overriding whatever the job's own
// parts field declares.
type OutboundPart struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TaskID      uuid.UUID `gorm:"column:task_id;type:uuid;not null;index"`
	Name        string    `gorm:"column:name;type:varchar(120);not null"`
	Quantity    int64     `gorm:"column:quantity;type:bigint;not null;default:1"`
	TotalAmount int64     `gorm:"column:total_amount;type:bigint;not null;default:0"`
	Reason      string    `gorm:"column:reason;type:varchar(20);not null;default:'used_on_job';index"`
	IssuedAt    time.Time `gorm:"column:issued_at;type:date;not null;index"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (OutboundPart) TableName() string {
	return "outbound_parts"
}
