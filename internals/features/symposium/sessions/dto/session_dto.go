package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"symposium_backend/internals/features/symposium/sessions/model"
)

type CreateSessionRequest struct {
	Date        string  `json:"presentation_session_date" validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"presentation_session_start_time" validate:"required,datetime=15:04"`
	EndTime     string  `json:"presentation_session_end_time" validate:"required,datetime=15:04"`
	Venue       string  `json:"presentation_session_venue" validate:"required,max=200"`
	Type        string  `json:"presentation_session_type" validate:"required,oneof=ORAL POSTER"`
	Capacity    int     `json:"presentation_session_capacity" validate:"required,min=1"`
	Description *string `json:"presentation_session_description,omitempty" validate:"omitempty,max=1000"`
}

func (r *CreateSessionRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
	r.Venue = strings.TrimSpace(r.Venue)
	r.Type = strings.ToUpper(strings.TrimSpace(r.Type))
}

func (r *CreateSessionRequest) ToModel() *model.PresentationSessionModel {
	return &model.PresentationSessionModel{
		PresentationSessionDate:        r.Date,
		PresentationSessionStartTime:   r.StartTime,
		PresentationSessionEndTime:     r.EndTime,
		PresentationSessionVenue:       r.Venue,
		PresentationSessionType:        r.Type,
		PresentationSessionCapacity:    r.Capacity,
		PresentationSessionStatus:      model.SessionStatusOpen,
		PresentationSessionDescription: r.Description,
	}
}

type UpdateSessionRequest struct {
	Date        *string `json:"presentation_session_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"presentation_session_start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"presentation_session_end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Venue       *string `json:"presentation_session_venue,omitempty" validate:"omitempty,max=200"`
	Capacity    *int    `json:"presentation_session_capacity,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"presentation_session_description,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdateSessionRequest) Apply(m *model.PresentationSessionModel) {
	if r.Date != nil {
		m.PresentationSessionDate = strings.TrimSpace(*r.Date)
	}
	if r.StartTime != nil {
		m.PresentationSessionStartTime = strings.TrimSpace(*r.StartTime)
	}
	if r.EndTime != nil {
		m.PresentationSessionEndTime = strings.TrimSpace(*r.EndTime)
	}
	if r.Venue != nil {
		m.PresentationSessionVenue = strings.TrimSpace(*r.Venue)
	}
	if r.Capacity != nil {
		m.PresentationSessionCapacity = *r.Capacity
	}
	if r.Description != nil {
		m.PresentationSessionDescription = r.Description
	}
}

type ChangeSessionStatusRequest struct {
	Status string `json:"presentation_session_status" validate:"required,oneof=OPEN CLOSED REQUIRES_APPROVAL"`
}

type ListSessionsQuery struct {
	Date          string `query:"date"`
	Type          string `query:"type"`
	Status        string `query:"status"`
	AvailableOnly bool   `query:"available_only"`
}

func (q *ListSessionsQuery) Normalize() {
	q.Date = strings.TrimSpace(q.Date)
	q.Type = strings.ToUpper(strings.TrimSpace(q.Type))
	q.Status = strings.ToUpper(strings.TrimSpace(q.Status))
}

type SessionResponse struct {
	ID          uuid.UUID `json:"presentation_session_id"`
	Date        string    `json:"presentation_session_date"`
	StartTime   string    `json:"presentation_session_start_time"`
	EndTime     string    `json:"presentation_session_end_time"`
	Venue       string    `json:"presentation_session_venue"`
	Type        string    `json:"presentation_session_type"`
	Capacity    int       `json:"presentation_session_capacity"`
	Registered  int       `json:"presentation_session_registered"`
	Status      string    `json:"presentation_session_status"`
	Description *string   `json:"presentation_session_description,omitempty"`
	CreatedAt   time.Time `json:"presentation_session_created_at"`
}

func NewSessionResponse(m *model.PresentationSessionModel) SessionResponse {
	return SessionResponse{
		ID:          m.PresentationSessionID,
		Date:        m.PresentationSessionDate,
		StartTime:   m.PresentationSessionStartTime,
		EndTime:     m.PresentationSessionEndTime,
		Venue:       m.PresentationSessionVenue,
		Type:        m.PresentationSessionType,
		Capacity:    m.PresentationSessionCapacity,
		Registered:  m.PresentationSessionRegistered,
		Status:      m.PresentationSessionStatus,
		Description: m.PresentationSessionDescription,
		CreatedAt:   m.PresentationSessionCreatedAt,
	}
}
