package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"symposium_backend/internals/errs"
	"symposium_backend/internals/features/symposium/evaluations/model"
)

type fakeEvaluationRepo struct {
	evals         map[uuid.UUID]model.EvaluationModel
	registrations map[uuid.UUID]bool
}

func newFakeEvaluationRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{
		evals:         make(map[uuid.UUID]model.EvaluationModel),
		registrations: make(map[uuid.UUID]bool),
	}
}

func (r *fakeEvaluationRepo) FindByID(_ context.Context, id uuid.UUID) (*model.EvaluationModel, error) {
	m, ok := r.evals[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	out := m
	return &out, nil
}

func (r *fakeEvaluationRepo) FindByPair(_ context.Context, evaluatorID, registrationID uuid.UUID) (*model.EvaluationModel, error) {
	for _, m := range r.evals {
		if m.EvaluationEvaluatorID == evaluatorID && m.EvaluationRegistrationID == registrationID {
			out := m
			return &out, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeEvaluationRepo) FindByRegistration(_ context.Context, registrationID uuid.UUID) ([]model.EvaluationModel, error) {
	var out []model.EvaluationModel
	for _, m := range r.evals {
		if m.EvaluationRegistrationID == registrationID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeEvaluationRepo) FindByEvaluator(_ context.Context, evaluatorID uuid.UUID) ([]model.EvaluationModel, error) {
	var out []model.EvaluationModel
	for _, m := range r.evals {
		if m.EvaluationEvaluatorID == evaluatorID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeEvaluationRepo) FindSubmittedByRegistration(_ context.Context, registrationID uuid.UUID) ([]model.EvaluationModel, error) {
	var out []model.EvaluationModel
	for _, m := range r.evals {
		if m.EvaluationRegistrationID == registrationID && m.EvaluationSubmitted {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeEvaluationRepo) RegistrationExists(_ context.Context, registrationID uuid.UUID) (bool, error) {
	return r.registrations[registrationID], nil
}

func (r *fakeEvaluationRepo) Create(_ context.Context, m *model.EvaluationModel) error {
	if m.EvaluationID == uuid.Nil {
		m.EvaluationID = uuid.New()
	}
	r.evals[m.EvaluationID] = *m
	return nil
}

func (r *fakeEvaluationRepo) Save(_ context.Context, m *model.EvaluationModel) error {
	r.evals[m.EvaluationID] = *m
	return nil
}

func (r *fakeEvaluationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.evals, id)
	return nil
}

func newEvalFixture() (*fakeEvaluationRepo, *EvaluationService, uuid.UUID) {
	repo := newFakeEvaluationRepo()
	svc := NewEvaluationService(repo)
	registrationID := uuid.New()
	repo.registrations[registrationID] = true
	return repo, svc, registrationID
}

func TestAssignEvaluator(t *testing.T) {
	_, svc, registrationID := newEvalFixture()
	evaluatorID := uuid.New()

	m, err := svc.AssignEvaluator(context.Background(), evaluatorID, registrationID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if m.EvaluationSubmitted {
		t.Fatal("fresh assignment must be an unsubmitted draft")
	}
	if m.TotalScore() != 0 {
		t.Fatalf("fresh assignment must start at zero, got %d", m.TotalScore())
	}

	// Same pair again.
	if _, err := svc.AssignEvaluator(context.Background(), evaluatorID, registrationID); !errors.Is(err, errs.ErrDuplicateAssignment) {
		t.Fatalf("want duplicate assignment, got %v", err)
	}

	// Another evaluator on the same registration is fine.
	if _, err := svc.AssignEvaluator(context.Background(), uuid.New(), registrationID); err != nil {
		t.Fatalf("second evaluator: %v", err)
	}
}

func TestAssignEvaluatorUnknownRegistration(t *testing.T) {
	_, svc, _ := newEvalFixture()

	if _, err := svc.AssignEvaluator(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestAssignEvaluatorRequiresIDs(t *testing.T) {
	_, svc, registrationID := newEvalFixture()

	if _, err := svc.AssignEvaluator(context.Background(), uuid.Nil, registrationID); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation for nil evaluator, got %v", err)
	}
	if _, err := svc.AssignEvaluator(context.Background(), uuid.New(), uuid.Nil); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation for nil registration, got %v", err)
	}
}

func TestScoreValidation(t *testing.T) {
	_, svc, registrationID := newEvalFixture()
	assigned, err := svc.AssignEvaluator(context.Background(), uuid.New(), registrationID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(*model.EvaluationModel)
		wantField string
		wantMsg   string
	}{
		{"clarity low", func(m *model.EvaluationModel) { m.EvaluationProblemClarity = -1 }, "evaluation_problem_clarity", "score must be at least 0"},
		{"clarity high", func(m *model.EvaluationModel) { m.EvaluationProblemClarity = 26 }, "evaluation_problem_clarity", "score must be at most 25"},
		{"methodology high", func(m *model.EvaluationModel) { m.EvaluationMethodology = 30 }, "evaluation_methodology", "score must be at most 25"},
		{"results low", func(m *model.EvaluationModel) { m.EvaluationResults = -5 }, "evaluation_results", "score must be at least 0"},
		{"presentation high", func(m *model.EvaluationModel) { m.EvaluationPresentationQuality = 100 }, "evaluation_presentation_quality", "score must be at most 25"},
		// Both bounds broken on one field: the lower bound wins.
		{"first field wins", func(m *model.EvaluationModel) {
			m.EvaluationProblemClarity = -1
			m.EvaluationMethodology = 26
		}, "evaluation_problem_clarity", "score must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := *assigned
			tt.mutate(&draft)
			_, err := svc.SaveEvaluation(context.Background(), &draft)
			if !errors.Is(err, errs.ErrValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
			var e *errs.Error
			errors.As(err, &e)
			if e.Field != tt.wantField || e.Message != tt.wantMsg {
				t.Fatalf("want %s/%q, got %s/%q", tt.wantField, tt.wantMsg, e.Field, e.Message)
			}
		})
	}
}

func TestSaveEvaluationKeepsDraftState(t *testing.T) {
	_, svc, registrationID := newEvalFixture()
	assigned, _ := svc.AssignEvaluator(context.Background(), uuid.New(), registrationID)

	draft := *assigned
	draft.EvaluationProblemClarity = 20
	draft.EvaluationMethodology = 18
	draft.EvaluationResults = 22
	draft.EvaluationPresentationQuality = 25
	draft.EvaluationComments = "  solid methodology  "
	draft.EvaluationSubmitted = true // client lies; must be ignored

	saved, err := svc.SaveEvaluation(context.Background(), &draft)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.EvaluationSubmitted || saved.EvaluationSubmittedAt != nil {
		t.Fatal("saving a draft must not submit it")
	}
	if saved.EvaluationComments != "solid methodology" {
		t.Fatalf("comments not trimmed: %q", saved.EvaluationComments)
	}
	if saved.TotalScore() != 85 {
		t.Fatalf("want total 85, got %d", saved.TotalScore())
	}
}

func TestSubmitIsOneWay(t *testing.T) {
	_, svc, registrationID := newEvalFixture()
	assigned, _ := svc.AssignEvaluator(context.Background(), uuid.New(), registrationID)

	fixed := time.Date(2026, 10, 13, 9, 30, 0, 0, time.UTC)
	svc.clock = func() time.Time { return fixed }

	m, err := svc.SubmitEvaluation(context.Background(), assigned.EvaluationID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !m.EvaluationSubmitted || m.EvaluationSubmittedAt == nil || !m.EvaluationSubmittedAt.Equal(fixed) {
		t.Fatalf("submit state wrong: %v/%v", m.EvaluationSubmitted, m.EvaluationSubmittedAt)
	}

	if _, err := svc.SubmitEvaluation(context.Background(), assigned.EvaluationID); !errors.Is(err, errs.ErrAlreadySubmitted) {
		t.Fatalf("want already submitted, got %v", err)
	}
	if _, err := svc.SaveEvaluation(context.Background(), m); !errors.Is(err, errs.ErrImmutableRecord) {
		t.Fatalf("want immutable record on save after submit, got %v", err)
	}
	if err := svc.RemoveAssignment(context.Background(), m.EvaluationEvaluatorID, m.EvaluationRegistrationID); !errors.Is(err, errs.ErrImmutableRecord) {
		t.Fatalf("want immutable record on remove after submit, got %v", err)
	}
}

func TestRemoveAssignmentDropsDraft(t *testing.T) {
	repo, svc, registrationID := newEvalFixture()
	assigned, _ := svc.AssignEvaluator(context.Background(), uuid.New(), registrationID)

	if err := svc.RemoveAssignment(context.Background(), assigned.EvaluationEvaluatorID, registrationID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(repo.evals) != 0 {
		t.Fatal("draft not removed")
	}
}

func TestAverageScore(t *testing.T) {
	_, svc, registrationID := newEvalFixture()

	// No evaluations at all.
	avg, count, err := svc.AverageScore(context.Background(), registrationID)
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if avg != 0 || count != 0 {
		t.Fatalf("want 0/0 with no data, got %v/%d", avg, count)
	}

	submit := func(scores [4]int) {
		m, err := svc.AssignEvaluator(context.Background(), uuid.New(), registrationID)
		if err != nil {
			t.Fatalf("assign: %v", err)
		}
		draft := *m
		draft.EvaluationProblemClarity = scores[0]
		draft.EvaluationMethodology = scores[1]
		draft.EvaluationResults = scores[2]
		draft.EvaluationPresentationQuality = scores[3]
		if _, err := svc.SaveEvaluation(context.Background(), &draft); err != nil {
			t.Fatalf("save: %v", err)
		}
		if _, err := svc.SubmitEvaluation(context.Background(), m.EvaluationID); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	submit([4]int{20, 20, 20, 20}) // 80
	submit([4]int{25, 25, 25, 15}) // 90

	// A lingering draft must not count.
	if _, err := svc.AssignEvaluator(context.Background(), uuid.New(), registrationID); err != nil {
		t.Fatalf("draft assign: %v", err)
	}

	avg, count, err = svc.AverageScore(context.Background(), registrationID)
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if count != 2 {
		t.Fatalf("want 2 submitted, got %d", count)
	}
	if math.Abs(avg-85.0) > 1e-9 {
		t.Fatalf("want average 85, got %v", avg)
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{85, 85},
		{260.0 / 3.0, 86.67},
		{86.664999, 86.66},
		{0.005, 0.01},
	}
	for _, tt := range tests {
		if got := RoundScore(tt.in); got != tt.want {
			t.Fatalf("RoundScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
