package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Criterion score bounds. Four criteria at 0..25 keep the total in 0..100.
const (
	MinCriterionScore = 0
	MaxCriterionScore = 25
)

// EvaluationModel represents the evaluations table. At most one record exists
// per (evaluator, registration) pair, enforced by the composite unique index
// and the service-level check.
type EvaluationModel struct {
	EvaluationID             uuid.UUID `json:"evaluation_id" gorm:"type:uuid;primaryKey;column:evaluation_id;default:gen_random_uuid()"`
	EvaluationEvaluatorID    uuid.UUID `json:"evaluation_evaluator_id" gorm:"type:uuid;not null;uniqueIndex:idx_evaluations_pair;column:evaluation_evaluator_id"`
	EvaluationRegistrationID uuid.UUID `json:"evaluation_registration_id" gorm:"type:uuid;not null;uniqueIndex:idx_evaluations_pair;index;column:evaluation_registration_id"`

	EvaluationProblemClarity      int `json:"evaluation_problem_clarity" gorm:"not null;default:0;column:evaluation_problem_clarity"`
	EvaluationMethodology         int `json:"evaluation_methodology" gorm:"not null;default:0;column:evaluation_methodology"`
	EvaluationResults             int `json:"evaluation_results" gorm:"not null;default:0;column:evaluation_results"`
	EvaluationPresentationQuality int `json:"evaluation_presentation_quality" gorm:"not null;default:0;column:evaluation_presentation_quality"`

	EvaluationComments string `json:"evaluation_comments" gorm:"type:text;not null;default:'';column:evaluation_comments"`

	EvaluationSubmitted   bool       `json:"evaluation_submitted" gorm:"not null;default:false;column:evaluation_submitted"`
	EvaluationSubmittedAt *time.Time `json:"evaluation_submitted_at,omitempty" gorm:"column:evaluation_submitted_at"`

	EvaluationCreatedAt time.Time      `json:"evaluation_created_at" gorm:"column:evaluation_created_at;autoCreateTime"`
	EvaluationUpdatedAt time.Time      `json:"evaluation_updated_at" gorm:"column:evaluation_updated_at;autoUpdateTime"`
	EvaluationDeletedAt gorm.DeletedAt `json:"evaluation_deleted_at,omitempty" gorm:"column:evaluation_deleted_at;index"`
}

func (EvaluationModel) TableName() string { return "evaluations" }

// TotalScore is the sum of the four criteria, always within 0..100 when the
// criteria are valid.
func (m *EvaluationModel) TotalScore() int {
	return m.EvaluationProblemClarity +
		m.EvaluationMethodology +
		m.EvaluationResults +
		m.EvaluationPresentationQuality
}
