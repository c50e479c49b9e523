package service

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"symposium_backend/internals/errs"
	"symposium_backend/internals/features/symposium/evaluations/model"
)

// Repository is the store surface the evaluation service needs.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.EvaluationModel, error)
	FindByPair(ctx context.Context, evaluatorID, registrationID uuid.UUID) (*model.EvaluationModel, error)
	FindByRegistration(ctx context.Context, registrationID uuid.UUID) ([]model.EvaluationModel, error)
	FindByEvaluator(ctx context.Context, evaluatorID uuid.UUID) ([]model.EvaluationModel, error)
	FindSubmittedByRegistration(ctx context.Context, registrationID uuid.UUID) ([]model.EvaluationModel, error)
	RegistrationExists(ctx context.Context, registrationID uuid.UUID) (bool, error)
	Create(ctx context.Context, m *model.EvaluationModel) error
	Save(ctx context.Context, m *model.EvaluationModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EvaluationService owns evaluator assignment and scoring lifecycle.
type EvaluationService struct {
	repo  Repository
	clock func() time.Time

	// assignMu makes the exists-check plus insert one atomic unit; the unique
	// index on (evaluator, registration) is the DB-side backstop.
	assignMu sync.Mutex
}

func NewEvaluationService(repo Repository) *EvaluationService {
	return &EvaluationService{repo: repo, clock: time.Now}
}

// AssignEvaluator creates the zeroed draft evaluation for the pair. A pair
// may only ever hold one evaluation.
func (s *EvaluationService) AssignEvaluator(ctx context.Context, evaluatorID, registrationID uuid.UUID) (*model.EvaluationModel, error) {
	if evaluatorID == uuid.Nil {
		return nil, errs.Validation("evaluation_evaluator_id", "evaluator is required")
	}
	if registrationID == uuid.Nil {
		return nil, errs.Validation("evaluation_registration_id", "registration is required")
	}

	exists, err := s.repo.RegistrationExists(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NotFound("registration", registrationID.String())
	}

	s.assignMu.Lock()
	defer s.assignMu.Unlock()

	if _, err := s.repo.FindByPair(ctx, evaluatorID, registrationID); err == nil {
		return nil, errs.DuplicateAssignment("evaluator is already assigned to this registration")
	}

	m := &model.EvaluationModel{
		EvaluationEvaluatorID:    evaluatorID,
		EvaluationRegistrationID: registrationID,
		EvaluationSubmitted:      false,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// RemoveAssignment drops an unsubmitted evaluation. A submitted one is part
// of the scoring record and stays.
func (s *EvaluationService) RemoveAssignment(ctx context.Context, evaluatorID, registrationID uuid.UUID) error {
	m, err := s.repo.FindByPair(ctx, evaluatorID, registrationID)
	if err != nil {
		return errs.NotFound("evaluation", evaluatorID.String()+"/"+registrationID.String())
	}
	if m.EvaluationSubmitted {
		return errs.ImmutableRecord("a submitted evaluation cannot be removed")
	}
	return s.repo.Delete(ctx, m.EvaluationID)
}

// validateScores checks each criterion in a fixed order, lower bound first.
func validateScores(m *model.EvaluationModel) error {
	checks := []struct {
		field string
		value int
	}{
		{"evaluation_problem_clarity", m.EvaluationProblemClarity},
		{"evaluation_methodology", m.EvaluationMethodology},
		{"evaluation_results", m.EvaluationResults},
		{"evaluation_presentation_quality", m.EvaluationPresentationQuality},
	}
	for _, c := range checks {
		if c.value < model.MinCriterionScore {
			return errs.Validation(c.field, "score must be at least 0")
		}
		if c.value > model.MaxCriterionScore {
			return errs.Validation(c.field, "score must be at most 25")
		}
	}
	return nil
}

// SaveEvaluation persists a draft's scores and comments. Submitted records
// are immutable; drafts never carry a submitted timestamp.
func (s *EvaluationService) SaveEvaluation(ctx context.Context, m *model.EvaluationModel) (*model.EvaluationModel, error) {
	stored, err := s.repo.FindByID(ctx, m.EvaluationID)
	if err != nil {
		return nil, errs.NotFound("evaluation", m.EvaluationID.String())
	}
	if stored.EvaluationSubmitted {
		return nil, errs.ImmutableRecord("evaluation has already been submitted")
	}
	if err := validateScores(m); err != nil {
		return nil, err
	}

	stored.EvaluationProblemClarity = m.EvaluationProblemClarity
	stored.EvaluationMethodology = m.EvaluationMethodology
	stored.EvaluationResults = m.EvaluationResults
	stored.EvaluationPresentationQuality = m.EvaluationPresentationQuality
	stored.EvaluationComments = strings.TrimSpace(m.EvaluationComments)
	stored.EvaluationSubmitted = false
	stored.EvaluationSubmittedAt = nil

	if err := s.repo.Save(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// SubmitEvaluation finalizes an evaluation. One-way: there is no unsubmit.
func (s *EvaluationService) SubmitEvaluation(ctx context.Context, id uuid.UUID) (*model.EvaluationModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("evaluation", id.String())
	}
	if m.EvaluationSubmitted {
		return nil, errs.AlreadySubmitted("evaluation has already been submitted")
	}
	if err := validateScores(m); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	m.EvaluationSubmitted = true
	m.EvaluationSubmittedAt = &now

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *EvaluationService) Get(ctx context.Context, id uuid.UUID) (*model.EvaluationModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("evaluation", id.String())
	}
	return m, nil
}

func (s *EvaluationService) ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]model.EvaluationModel, error) {
	return s.repo.FindByRegistration(ctx, registrationID)
}

func (s *EvaluationService) ListByEvaluator(ctx context.Context, evaluatorID uuid.UUID) ([]model.EvaluationModel, error) {
	return s.repo.FindByEvaluator(ctx, evaluatorID)
}

// AverageScore returns the mean total over submitted evaluations plus the
// submitted count, so "no data yet" is distinguishable from a real zero.
func (s *EvaluationService) AverageScore(ctx context.Context, registrationID uuid.UUID) (float64, int, error) {
	submitted, err := s.repo.FindSubmittedByRegistration(ctx, registrationID)
	if err != nil {
		return 0, 0, err
	}
	if len(submitted) == 0 {
		return 0, 0, nil
	}

	sum := 0
	for i := range submitted {
		sum += submitted[i].TotalScore()
	}
	return float64(sum) / float64(len(submitted)), len(submitted), nil
}

// RoundScore fixes averages to 2 decimal places so equality comparisons on
// them stay deterministic.
func RoundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
