package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"symposium_backend/internals/features/symposium/awards/model"
	regModel "symposium_backend/internals/features/symposium/registrations/model"
	sessionModel "symposium_backend/internals/features/symposium/sessions/model"
)

type fakeAwardRepo struct {
	approved []regModel.RegistrationModel
	stored   []model.AwardModel
}

func (r *fakeAwardRepo) FindApprovedRegistrations(_ context.Context) ([]regModel.RegistrationModel, error) {
	return r.approved, nil
}

func (r *fakeAwardRepo) FindAll(_ context.Context) ([]model.AwardModel, error) {
	return r.stored, nil
}

func (r *fakeAwardRepo) FindByType(_ context.Context, awardType string) ([]model.AwardModel, error) {
	var out []model.AwardModel
	for _, a := range r.stored {
		if a.AwardType == awardType {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAwardRepo) ReplaceAll(_ context.Context, awards []model.AwardModel) error {
	r.stored = awards
	return nil
}

type scoreEntry struct {
	avg   float64
	count int
}

type fakeScores struct {
	byRegistration map[uuid.UUID]scoreEntry
}

func (s *fakeScores) AverageScore(_ context.Context, registrationID uuid.UUID) (float64, int, error) {
	e := s.byRegistration[registrationID]
	return e.avg, e.count, nil
}

type awardFixture struct {
	repo   *fakeAwardRepo
	scores *fakeScores
	svc    *AwardService
}

func newAwardFixture() *awardFixture {
	repo := &fakeAwardRepo{}
	scores := &fakeScores{byRegistration: make(map[uuid.UUID]scoreEntry)}
	svc := NewAwardService(repo, scores)
	svc.clock = func() time.Time {
		return time.Date(2026, 10, 15, 17, 0, 0, 0, time.UTC)
	}
	return &awardFixture{repo: repo, scores: scores, svc: svc}
}

func (f *awardFixture) addApproved(presentationType string, avg float64, submitted int) uuid.UUID {
	id := uuid.New()
	f.repo.approved = append(f.repo.approved, regModel.RegistrationModel{
		RegistrationID:               id,
		RegistrationStatus:           regModel.RegistrationStatusApproved,
		RegistrationPresentationType: presentationType,
	})
	f.scores.byRegistration[id] = scoreEntry{avg: avg, count: submitted}
	return id
}

func byType(awards []model.AwardModel, awardType string) []model.AwardModel {
	var out []model.AwardModel
	for _, a := range awards {
		if a.AwardType == awardType {
			out = append(out, a)
		}
	}
	return out
}

func hasWinner(awards []model.AwardModel, id uuid.UUID) bool {
	for _, a := range awards {
		if a.AwardRegistrationID == id {
			return true
		}
	}
	return false
}

func TestCalculateAwardsTiesShareTheAward(t *testing.T) {
	f := newAwardFixture()
	first := f.addApproved(sessionModel.SessionTypeOral, 90, 3)
	second := f.addApproved(sessionModel.SessionTypeOral, 90, 2)
	f.addApproved(sessionModel.SessionTypeOral, 85, 3)

	awards, err := f.svc.CalculateAwards(context.Background())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	oral := byType(awards, model.AwardTypeBestOral)
	if len(oral) != 2 {
		t.Fatalf("want 2 co-winners, got %d", len(oral))
	}
	if !hasWinner(oral, first) || !hasWinner(oral, second) {
		t.Fatal("tie did not include both top registrations")
	}
	for _, a := range oral {
		if a.AwardScore != 90 {
			t.Fatalf("co-winner score %v, want 90", a.AwardScore)
		}
	}
}

func TestCalculateAwardsRoundedAveragesTie(t *testing.T) {
	f := newAwardFixture()
	// 260/3 and 86.67 round to the same 2-decimal score.
	a := f.addApproved(sessionModel.SessionTypeOral, 260.0/3.0, 3)
	b := f.addApproved(sessionModel.SessionTypeOral, 86.67, 1)

	awards, err := f.svc.CalculateAwards(context.Background())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	oral := byType(awards, model.AwardTypeBestOral)
	if len(oral) != 2 || !hasWinner(oral, a) || !hasWinner(oral, b) {
		t.Fatalf("rounded averages must tie, got %d winners", len(oral))
	}
}

func TestCalculateAwardsFiltersByPresentationType(t *testing.T) {
	f := newAwardFixture()
	oralTop := f.addApproved(sessionModel.SessionTypeOral, 80, 2)
	posterTop := f.addApproved(sessionModel.SessionTypePoster, 95, 2)

	awards, err := f.svc.CalculateAwards(context.Background())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	oral := byType(awards, model.AwardTypeBestOral)
	if len(oral) != 1 || !hasWinner(oral, oralTop) {
		t.Fatal("best oral must only consider oral registrations")
	}
	poster := byType(awards, model.AwardTypeBestPoster)
	if len(poster) != 1 || !hasWinner(poster, posterTop) {
		t.Fatal("best poster must only consider poster registrations")
	}
	// PEOPLES_CHOICE spans both types; the poster talk leads overall.
	choice := byType(awards, model.AwardTypePeoplesChoice)
	if len(choice) != 1 || !hasWinner(choice, posterTop) {
		t.Fatal("peoples choice must rank across presentation types")
	}
}

func TestCalculateAwardsSkipsUnevaluated(t *testing.T) {
	f := newAwardFixture()
	evaluated := f.addApproved(sessionModel.SessionTypeOral, 10, 1)
	f.addApproved(sessionModel.SessionTypeOral, 0, 0) // never evaluated

	awards, err := f.svc.CalculateAwards(context.Background())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	oral := byType(awards, model.AwardTypeBestOral)
	if len(oral) != 1 || !hasWinner(oral, evaluated) {
		t.Fatal("unevaluated registration must not compete, even against a low score")
	}
}

func TestCalculateAwardsEmptyCategories(t *testing.T) {
	f := newAwardFixture()
	// Only posters, and none evaluated: nothing anywhere.
	f.addApproved(sessionModel.SessionTypePoster, 0, 0)

	awards, err := f.svc.CalculateAwards(context.Background())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(awards) != 0 {
		t.Fatalf("want no awards, got %d", len(awards))
	}
	if len(f.repo.stored) != 0 {
		t.Fatal("stored set not cleared")
	}
}

func TestCalculateAwardsReplacesPreviousSet(t *testing.T) {
	f := newAwardFixture()
	f.repo.stored = []model.AwardModel{{
		AwardID:             uuid.New(),
		AwardType:           model.AwardTypeBestOral,
		AwardRegistrationID: uuid.New(),
		AwardScore:          50,
	}}
	winner := f.addApproved(sessionModel.SessionTypeOral, 70, 1)

	if _, err := f.svc.CalculateAwards(context.Background()); err != nil {
		t.Fatalf("calculate: %v", err)
	}
	oral := byType(f.repo.stored, model.AwardTypeBestOral)
	if len(oral) != 1 || !hasWinner(oral, winner) {
		t.Fatal("recalculation must discard the previous set")
	}
}
