package staff

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeExecutive      = "executive"
	TypeContractWorker = "contract_worker"
)

// Staff is a member of the shop roster. Name doubles as the join key against
// Job.Worker, so it carries a unique index; jobs reference workers by display
// name, not by id.
type Staff struct {
	ID   uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uq_staff_name"`
	Type string    `gorm:"column:type;type:varchar(20);not null;default:'contract_worker'"`

	// Ratio weights executive profit shares; AllowanceRate is the contractor
	// commission percentage. Each is meaningful only for its staff type.
	Ratio         float64 `gorm:"column:ratio;type:numeric(6,2);not null;default:0"`
	AllowanceRate float64 `gorm:"column:allowance_rate;type:numeric(5,2);not null;default:0"`

	Active    bool           `gorm:"column:active;not null;default:true;index"`
	Phone     string         `gorm:"column:phone;type:varchar(30)"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Staff) TableName() string {
	return "staff"
}

func (s Staff) IsExecutive() bool {
	return s.Type == TypeExecutive
}

func (s Staff) IsContractWorker() bool {
	return s.Type == TypeContractWorker
}
