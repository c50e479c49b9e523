package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Registration statuses.
const (
	RegistrationStatusPending   = "PENDING"
	RegistrationStatusApproved  = "APPROVED"
	RegistrationStatusRejected  = "REJECTED"
	RegistrationStatusCancelled = "CANCELLED"
)

// Field length bounds enforced by the service.
const (
	MaxResearchTitleLen = 200
	MaxAbstractLen      = 1000
)

// RegistrationModel represents the registrations table.
type RegistrationModel struct {
	RegistrationID        uuid.UUID  `json:"registration_id" gorm:"type:uuid;primaryKey;column:registration_id;default:gen_random_uuid()"`
	RegistrationStudentID uuid.UUID  `json:"registration_student_id" gorm:"type:uuid;not null;index;column:registration_student_id"`
	RegistrationSessionID *uuid.UUID `json:"registration_session_id,omitempty" gorm:"type:uuid;index;column:registration_session_id"`

	RegistrationResearchTitle  string `json:"registration_research_title" gorm:"type:varchar(200);not null;column:registration_research_title"`
	RegistrationAbstract       string `json:"registration_abstract" gorm:"type:text;not null;column:registration_abstract"`
	RegistrationSupervisorName string `json:"registration_supervisor_name" gorm:"type:text;not null;column:registration_supervisor_name"`

	RegistrationPresentationType string `json:"registration_presentation_type" gorm:"type:varchar(10);not null;column:registration_presentation_type"`
	RegistrationStatus           string `json:"registration_status" gorm:"type:varchar(20);not null;default:'PENDING';column:registration_status"`

	RegistrationFilePath *string        `json:"registration_file_path,omitempty" gorm:"type:text;column:registration_file_path"`
	RegistrationBoardID  *string        `json:"registration_board_id,omitempty" gorm:"type:varchar(20);column:registration_board_id"`
	RegistrationKeywords pq.StringArray `json:"registration_keywords" gorm:"type:text[];column:registration_keywords"`

	RegistrationCreatedAt time.Time      `json:"registration_created_at" gorm:"column:registration_created_at;autoCreateTime"`
	RegistrationUpdatedAt time.Time      `json:"registration_updated_at" gorm:"column:registration_updated_at;autoUpdateTime"`
	RegistrationDeletedAt gorm.DeletedAt `json:"registration_deleted_at,omitempty" gorm:"column:registration_deleted_at;index"`
}

func (RegistrationModel) TableName() string { return "registrations" }

func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved,
		RegistrationStatusRejected, RegistrationStatusCancelled:
		return true
	}
	return false
}
