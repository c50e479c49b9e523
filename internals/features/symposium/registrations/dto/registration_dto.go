package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"symposium_backend/internals/features/symposium/registrations/model"
)

type CreateRegistrationRequest struct {
	ResearchTitle    string   `json:"registration_research_title" validate:"required"`
	Abstract         string   `json:"registration_abstract" validate:"required"`
	SupervisorName   string   `json:"registration_supervisor_name" validate:"required,max=200"`
	PresentationType string   `json:"registration_presentation_type" validate:"required,oneof=ORAL POSTER"`
	Keywords         []string `json:"registration_keywords,omitempty" validate:"omitempty,max=10,dive,max=50"`
}

func (r *CreateRegistrationRequest) Normalize() {
	r.ResearchTitle = strings.TrimSpace(r.ResearchTitle)
	r.Abstract = strings.TrimSpace(r.Abstract)
	r.SupervisorName = strings.TrimSpace(r.SupervisorName)
	r.PresentationType = strings.ToUpper(strings.TrimSpace(r.PresentationType))
}

func (r *CreateRegistrationRequest) ToModel(studentID uuid.UUID) *model.RegistrationModel {
	return &model.RegistrationModel{
		RegistrationStudentID:        studentID,
		RegistrationResearchTitle:    r.ResearchTitle,
		RegistrationAbstract:         r.Abstract,
		RegistrationSupervisorName:   r.SupervisorName,
		RegistrationPresentationType: r.PresentationType,
		RegistrationKeywords:         pq.StringArray(r.Keywords),
	}
}

type UpdateRegistrationRequest struct {
	ResearchTitle    *string  `json:"registration_research_title,omitempty"`
	Abstract         *string  `json:"registration_abstract,omitempty"`
	SupervisorName   *string  `json:"registration_supervisor_name,omitempty" validate:"omitempty,max=200"`
	PresentationType *string  `json:"registration_presentation_type,omitempty" validate:"omitempty,oneof=ORAL POSTER"`
	Keywords         []string `json:"registration_keywords,omitempty" validate:"omitempty,max=10,dive,max=50"`
}

func (r *UpdateRegistrationRequest) Apply(m *model.RegistrationModel) {
	if r.ResearchTitle != nil {
		m.RegistrationResearchTitle = strings.TrimSpace(*r.ResearchTitle)
	}
	if r.Abstract != nil {
		m.RegistrationAbstract = strings.TrimSpace(*r.Abstract)
	}
	if r.SupervisorName != nil {
		m.RegistrationSupervisorName = strings.TrimSpace(*r.SupervisorName)
	}
	if r.PresentationType != nil {
		m.RegistrationPresentationType = strings.ToUpper(strings.TrimSpace(*r.PresentationType))
	}
	if r.Keywords != nil {
		m.RegistrationKeywords = pq.StringArray(r.Keywords)
	}
}

type AssignSessionRequest struct {
	SessionID uuid.UUID `json:"presentation_session_id" validate:"required"`
}

type UpdateFilePathRequest struct {
	FilePath string `json:"registration_file_path"`
}

type UpdateBoardRequest struct {
	BoardID string `json:"registration_board_id"`
}

type ListRegistrationsQuery struct {
	StudentID string `query:"student_id"`
	SessionID string `query:"session_id"`
	Status    string `query:"status"`
	Type      string `query:"type"`
}

type RegistrationResponse struct {
	ID               uuid.UUID  `json:"registration_id"`
	StudentID        uuid.UUID  `json:"registration_student_id"`
	SessionID        *uuid.UUID `json:"registration_session_id,omitempty"`
	ResearchTitle    string     `json:"registration_research_title"`
	Abstract         string     `json:"registration_abstract"`
	SupervisorName   string     `json:"registration_supervisor_name"`
	PresentationType string     `json:"registration_presentation_type"`
	Status           string     `json:"registration_status"`
	FilePath         *string    `json:"registration_file_path,omitempty"`
	BoardID          *string    `json:"registration_board_id,omitempty"`
	Keywords         []string   `json:"registration_keywords"`
	FileType         int        `json:"registration_file_type"`
	CreatedAt        time.Time  `json:"registration_created_at"`
}

func NewRegistrationResponse(m *model.RegistrationModel, fileType int) RegistrationResponse {
	return RegistrationResponse{
		ID:               m.RegistrationID,
		StudentID:        m.RegistrationStudentID,
		SessionID:        m.RegistrationSessionID,
		ResearchTitle:    m.RegistrationResearchTitle,
		Abstract:         m.RegistrationAbstract,
		SupervisorName:   m.RegistrationSupervisorName,
		PresentationType: m.RegistrationPresentationType,
		Status:           m.RegistrationStatus,
		FilePath:         m.RegistrationFilePath,
		BoardID:          m.RegistrationBoardID,
		Keywords:         m.RegistrationKeywords,
		FileType:         fileType,
		CreatedAt:        m.RegistrationCreatedAt,
	}
}
