package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel represents the users table. One record type covers every role;
// role-specific fields live in the user_profile JSONB column.
type UserModel struct {
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`
	UserName     string         `json:"user_name" gorm:"size:100;not null;column:user_name"`
	UserEmail    string         `json:"user_email" gorm:"size:255;uniqueIndex;not null;column:user_email"`
	UserPassword string         `json:"-" gorm:"not null;column:user_password"`
	UserRole     string         `json:"user_role" gorm:"type:varchar(20);not null;default:'student';column:user_role"`
	UserProfile  datatypes.JSON `json:"user_profile" gorm:"type:jsonb;not null;default:'{}';column:user_profile"`
	UserIsActive bool           `json:"user_is_active" gorm:"not null;default:true;column:user_is_active"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }
