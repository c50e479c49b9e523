package repository

import (
	"context"

	"gorm.io/gorm"

	evalModel "symposium_backend/internals/features/symposium/evaluations/model"
	"symposium_backend/internals/features/symposium/reports/dto"
	regModel "symposium_backend/internals/features/symposium/registrations/model"
	sessionModel "symposium_backend/internals/features/symposium/sessions/model"
)

// ReportRepository runs the aggregate queries behind the coordinator reports.
// It is read-only; every write still goes through the feature services.
type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) RegistrationSummary(ctx context.Context) (*dto.RegistrationSummary, error) {
	out := &dto.RegistrationSummary{
		ByStatus: []dto.StatusCount{},
		ByType:   []dto.TypeCount{},
	}

	base := func() *gorm.DB {
		return r.DB.WithContext(ctx).Model(&regModel.RegistrationModel{})
	}

	if err := base().Count(&out.Total).Error; err != nil {
		return nil, err
	}
	if err := base().
		Select("registration_status AS status, COUNT(*) AS count").
		Group("registration_status").
		Order("registration_status ASC").
		Scan(&out.ByStatus).Error; err != nil {
		return nil, err
	}
	if err := base().
		Select("registration_presentation_type AS type, COUNT(*) AS count").
		Group("registration_presentation_type").
		Order("registration_presentation_type ASC").
		Scan(&out.ByType).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReportRepository) SessionOccupancy(ctx context.Context) ([]dto.SessionOccupancy, error) {
	var sessions []sessionModel.PresentationSessionModel
	if err := r.DB.WithContext(ctx).
		Order("presentation_session_date ASC, presentation_session_start_time ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	rows := make([]dto.SessionOccupancy, 0, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		fill := 0.0
		if s.PresentationSessionCapacity > 0 {
			fill = float64(s.PresentationSessionRegistered) / float64(s.PresentationSessionCapacity)
		}
		rows = append(rows, dto.SessionOccupancy{
			SessionID:  s.PresentationSessionID,
			Date:       s.PresentationSessionDate,
			Venue:      s.PresentationSessionVenue,
			Type:       s.PresentationSessionType,
			Status:     s.PresentationSessionStatus,
			Capacity:   s.PresentationSessionCapacity,
			Registered: s.PresentationSessionRegistered,
			FillRate:   fill,
		})
	}
	return rows, nil
}

// ScoreSummaries averages the submitted evaluations per registration.
// Registrations without a submitted evaluation are omitted, not zeroed.
func (r *ReportRepository) ScoreSummaries(ctx context.Context) ([]dto.ScoreSummary, error) {
	rows := []dto.ScoreSummary{}
	err := r.DB.WithContext(ctx).
		Model(&evalModel.EvaluationModel{}).
		Select(`evaluations.evaluation_registration_id AS registration_id,
			registrations.registration_research_title AS research_title,
			COUNT(*) AS submitted_count,
			ROUND(AVG(evaluations.evaluation_problem_clarity
				+ evaluations.evaluation_methodology
				+ evaluations.evaluation_results
				+ evaluations.evaluation_presentation_quality)::numeric, 2) AS average_score`).
		Joins("JOIN registrations ON registrations.registration_id = evaluations.evaluation_registration_id").
		Where("evaluations.evaluation_submitted = TRUE").
		Where("registrations.registration_deleted_at IS NULL").
		Group("evaluations.evaluation_registration_id, registrations.registration_research_title").
		Order("average_score DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
