package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"symposium_backend/internals/features/symposium/awards/model"
	evalService "symposium_backend/internals/features/symposium/evaluations/service"
	regModel "symposium_backend/internals/features/symposium/registrations/model"
	sessionModel "symposium_backend/internals/features/symposium/sessions/model"
)

// Repository is the store surface the award service needs: the award set
// itself plus read access to the approved registrations it ranks.
type Repository interface {
	FindApprovedRegistrations(ctx context.Context) ([]regModel.RegistrationModel, error)
	FindAll(ctx context.Context) ([]model.AwardModel, error)
	FindByType(ctx context.Context, awardType string) ([]model.AwardModel, error)
	ReplaceAll(ctx context.Context, awards []model.AwardModel) error
}

// Scores is the slice of the evaluation service the award service reads.
type Scores interface {
	AverageScore(ctx context.Context, registrationID uuid.UUID) (float64, int, error)
}

var _ Scores = (*evalService.EvaluationService)(nil)

// AwardService recomputes the award set from aggregated scores.
type AwardService struct {
	repo   Repository
	scores Scores
	clock  func() time.Time
}

func NewAwardService(repo Repository, scores Scores) *AwardService {
	return &AwardService{repo: repo, scores: scores, clock: time.Now}
}

type candidate struct {
	registrationID uuid.UUID
	score          float64
}

// CalculateAwards recomputes every category from scratch and replaces the
// stored award set wholesale. Per category: approved registrations (filtered
// by presentation type for BEST_ORAL/BEST_POSTER, unfiltered for
// PEOPLES_CHOICE) are ranked by their submitted-score average; every
// candidate matching the top average becomes a co-winner. Registrations with
// no submitted evaluations never compete — an unevaluated talk is not a
// zero-scored one.
func (s *AwardService) CalculateAwards(ctx context.Context) ([]model.AwardModel, error) {
	regs, err := s.repo.FindApprovedRegistrations(ctx)
	if err != nil {
		return nil, err
	}

	// Averages are shared across categories; compute once per registration.
	scored := make([]struct {
		reg   regModel.RegistrationModel
		score float64
		count int
	}, 0, len(regs))
	for i := range regs {
		avg, count, err := s.scores.AverageScore(ctx, regs[i].RegistrationID)
		if err != nil {
			return nil, err
		}
		scored = append(scored, struct {
			reg   regModel.RegistrationModel
			score float64
			count int
		}{regs[i], evalService.RoundScore(avg), count})
	}

	now := s.clock().UTC()
	awards := make([]model.AwardModel, 0)

	for _, awardType := range model.AwardTypes {
		pool := make([]candidate, 0, len(scored))
		for _, sc := range scored {
			if sc.count == 0 {
				continue
			}
			switch awardType {
			case model.AwardTypeBestOral:
				if sc.reg.RegistrationPresentationType != sessionModel.SessionTypeOral {
					continue
				}
			case model.AwardTypeBestPoster:
				if sc.reg.RegistrationPresentationType != sessionModel.SessionTypePoster {
					continue
				}
			}
			pool = append(pool, candidate{sc.reg.RegistrationID, sc.score})
		}

		if len(pool) == 0 {
			continue
		}

		sort.Slice(pool, func(i, j int) bool { return pool[i].score > pool[j].score })

		top := pool[0].score
		for _, cand := range pool {
			if cand.score != top {
				break
			}
			awards = append(awards, model.AwardModel{
				AwardType:           awardType,
				AwardRegistrationID: cand.registrationID,
				AwardScore:          cand.score,
				AwardAwardedAt:      now,
			})
		}
	}

	if err := s.repo.ReplaceAll(ctx, awards); err != nil {
		return nil, err
	}
	return awards, nil
}

func (s *AwardService) ListAwards(ctx context.Context) ([]model.AwardModel, error) {
	return s.repo.FindAll(ctx)
}

func (s *AwardService) ListByType(ctx context.Context, awardType string) ([]model.AwardModel, error) {
	return s.repo.FindByType(ctx, awardType)
}
