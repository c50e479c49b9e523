package dto

import (
	"time"

	"github.com/google/uuid"

	"symposium_backend/internals/features/symposium/awards/model"
)

type AwardResponse struct {
	ID             uuid.UUID `json:"award_id"`
	Type           string    `json:"award_type"`
	RegistrationID uuid.UUID `json:"award_registration_id"`
	Score          float64   `json:"award_score"`
	AwardedAt      time.Time `json:"award_awarded_at"`
}

func NewAwardResponse(m *model.AwardModel) AwardResponse {
	return AwardResponse{
		ID:             m.AwardID,
		Type:           m.AwardType,
		RegistrationID: m.AwardRegistrationID,
		Score:          m.AwardScore,
		AwardedAt:      m.AwardAwardedAt,
	}
}

func NewAwardResponses(awards []model.AwardModel) []AwardResponse {
	out := make([]AwardResponse, 0, len(awards))
	for i := range awards {
		out = append(out, NewAwardResponse(&awards[i]))
	}
	return out
}
