package dto

import "github.com/google/uuid"

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// RegistrationSummary breaks the registration pool down by workflow status
// and presentation type.
type RegistrationSummary struct {
	Total    int64         `json:"total"`
	ByStatus []StatusCount `json:"by_status"`
	ByType   []TypeCount   `json:"by_type"`
}

// SessionOccupancy is one row of the session fill report.
type SessionOccupancy struct {
	SessionID  uuid.UUID `json:"session_id"`
	Date       string    `json:"date"`
	Venue      string    `json:"venue"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	Capacity   int       `json:"capacity"`
	Registered int       `json:"registered"`
	FillRate   float64   `json:"fill_rate"`
}

// ScoreSummary aggregates the submitted evaluations of one registration.
type ScoreSummary struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	ResearchTitle  string    `json:"research_title"`
	SubmittedCount int       `json:"submitted_count"`
	AverageScore   float64   `json:"average_score"`
}
