package dto

import (
	"time"

	"github.com/google/uuid"

	"symposium_backend/internals/features/symposium/evaluations/model"
)

type AssignEvaluatorRequest struct {
	EvaluatorID    uuid.UUID `json:"evaluation_evaluator_id" validate:"required"`
	RegistrationID uuid.UUID `json:"evaluation_registration_id" validate:"required"`
}

type SaveEvaluationRequest struct {
	ProblemClarity      int    `json:"evaluation_problem_clarity"`
	Methodology         int    `json:"evaluation_methodology"`
	Results             int    `json:"evaluation_results"`
	PresentationQuality int    `json:"evaluation_presentation_quality"`
	Comments            string `json:"evaluation_comments" validate:"omitempty,max=2000"`
}

func (r *SaveEvaluationRequest) ToModel(id uuid.UUID) *model.EvaluationModel {
	return &model.EvaluationModel{
		EvaluationID:                  id,
		EvaluationProblemClarity:      r.ProblemClarity,
		EvaluationMethodology:         r.Methodology,
		EvaluationResults:             r.Results,
		EvaluationPresentationQuality: r.PresentationQuality,
		EvaluationComments:            r.Comments,
	}
}

type EvaluationResponse struct {
	ID                  uuid.UUID  `json:"evaluation_id"`
	EvaluatorID         uuid.UUID  `json:"evaluation_evaluator_id"`
	RegistrationID      uuid.UUID  `json:"evaluation_registration_id"`
	ProblemClarity      int        `json:"evaluation_problem_clarity"`
	Methodology         int        `json:"evaluation_methodology"`
	Results             int        `json:"evaluation_results"`
	PresentationQuality int        `json:"evaluation_presentation_quality"`
	TotalScore          int        `json:"evaluation_total_score"`
	Comments            string     `json:"evaluation_comments"`
	Submitted           bool       `json:"evaluation_submitted"`
	SubmittedAt         *time.Time `json:"evaluation_submitted_at,omitempty"`
}

func NewEvaluationResponse(m *model.EvaluationModel) EvaluationResponse {
	return EvaluationResponse{
		ID:                  m.EvaluationID,
		EvaluatorID:         m.EvaluationEvaluatorID,
		RegistrationID:      m.EvaluationRegistrationID,
		ProblemClarity:      m.EvaluationProblemClarity,
		Methodology:         m.EvaluationMethodology,
		Results:             m.EvaluationResults,
		PresentationQuality: m.EvaluationPresentationQuality,
		TotalScore:          m.TotalScore(),
		Comments:            m.EvaluationComments,
		Submitted:           m.EvaluationSubmitted,
		SubmittedAt:         m.EvaluationSubmittedAt,
	}
}

type AverageScoreResponse struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	AverageScore   float64   `json:"average_score"`
	SubmittedCount int       `json:"submitted_count"`
}
