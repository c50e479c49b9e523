package model

import (
	"time"

	"github.com/google/uuid"
)

// Award categories.
const (
	AwardTypeBestOral      = "BEST_ORAL"
	AwardTypeBestPoster    = "BEST_POSTER"
	AwardTypePeoplesChoice = "PEOPLES_CHOICE"
)

// AwardTypes lists every category in calculation order.
var AwardTypes = []string{AwardTypeBestOral, AwardTypeBestPoster, AwardTypePeoplesChoice}

// AwardModel represents the awards table. Awards are a recomputed set, not a
// single winner: a tie stores one row per co-winner.
type AwardModel struct {
	AwardID             uuid.UUID `json:"award_id" gorm:"type:uuid;primaryKey;column:award_id;default:gen_random_uuid()"`
	AwardType           string    `json:"award_type" gorm:"type:varchar(20);not null;index;column:award_type"`
	AwardRegistrationID uuid.UUID `json:"award_registration_id" gorm:"type:uuid;not null;column:award_registration_id"`
	AwardScore          float64   `json:"award_score" gorm:"not null;column:award_score"`
	AwardAwardedAt      time.Time `json:"award_awarded_at" gorm:"not null;column:award_awarded_at"`
}

func (AwardModel) TableName() string { return "awards" }

func ValidAwardType(t string) bool {
	switch t {
	case AwardTypeBestOral, AwardTypeBestPoster, AwardTypePeoplesChoice:
		return true
	}
	return false
}
