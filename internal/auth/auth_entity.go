package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

type Account struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"column:name;type:varchar(255)"`
	Role      string         `gorm:"column:role;type:varchar(50);default:STAFF"`
	Email     string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	Password  string         `gorm:"column:password;type:text;not null"`
	IsActive  bool           `gorm:"column:is_active;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Account) TableName() string {
	return "accounts"
}
