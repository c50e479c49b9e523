package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Presentation session types.
const (
	SessionTypeOral   = "ORAL"
	SessionTypePoster = "POSTER"
)

// Session statuses. FULL is engine-maintained; coordinators may only force
// CLOSED or REQUIRES_APPROVAL by hand.
const (
	SessionStatusOpen             = "OPEN"
	SessionStatusFull             = "FULL"
	SessionStatusClosed           = "CLOSED"
	SessionStatusRequiresApproval = "REQUIRES_APPROVAL"
)

// PresentationSessionModel represents the presentation_sessions table.
type PresentationSessionModel struct {
	PresentationSessionID uuid.UUID `json:"presentation_session_id" gorm:"type:uuid;primaryKey;column:presentation_session_id;default:gen_random_uuid()"`

	PresentationSessionDate      string `json:"presentation_session_date" gorm:"type:date;not null;column:presentation_session_date"`
	PresentationSessionStartTime string `json:"presentation_session_start_time" gorm:"type:varchar(5);not null;column:presentation_session_start_time"`
	PresentationSessionEndTime   string `json:"presentation_session_end_time" gorm:"type:varchar(5);not null;column:presentation_session_end_time"`
	PresentationSessionVenue     string `json:"presentation_session_venue" gorm:"type:text;not null;column:presentation_session_venue"`

	PresentationSessionType     string `json:"presentation_session_type" gorm:"type:varchar(10);not null;column:presentation_session_type"`
	PresentationSessionCapacity int    `json:"presentation_session_capacity" gorm:"not null;column:presentation_session_capacity"`

	// Registered and status always move together; only the service mutates them.
	PresentationSessionRegistered int    `json:"presentation_session_registered" gorm:"not null;default:0;column:presentation_session_registered"`
	PresentationSessionStatus     string `json:"presentation_session_status" gorm:"type:varchar(20);not null;default:'OPEN';column:presentation_session_status"`

	PresentationSessionDescription *string `json:"presentation_session_description,omitempty" gorm:"type:text;column:presentation_session_description"`

	PresentationSessionCreatedAt time.Time      `json:"presentation_session_created_at" gorm:"column:presentation_session_created_at;autoCreateTime"`
	PresentationSessionUpdatedAt time.Time      `json:"presentation_session_updated_at" gorm:"column:presentation_session_updated_at;autoUpdateTime"`
	PresentationSessionDeletedAt gorm.DeletedAt `json:"presentation_session_deleted_at,omitempty" gorm:"column:presentation_session_deleted_at;index"`
}

func (PresentationSessionModel) TableName() string { return "presentation_sessions" }

// HasAvailableSlots reports whether a registration can still reserve a slot.
func (m *PresentationSessionModel) HasAvailableSlots() bool {
	return m.PresentationSessionRegistered < m.PresentationSessionCapacity &&
		m.PresentationSessionStatus == SessionStatusOpen
}

func ValidSessionType(t string) bool {
	return t == SessionTypeOral || t == SessionTypePoster
}

func ValidSessionStatus(s string) bool {
	switch s {
	case SessionStatusOpen, SessionStatusFull, SessionStatusClosed, SessionStatusRequiresApproval:
		return true
	}
	return false
}
