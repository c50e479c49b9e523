package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"symposium_backend/internals/features/symposium/sessions/model"
	"symposium_backend/internals/features/symposium/sessions/service"
)

// SessionRepository is the GORM-backed store for presentation sessions.
type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

var _ service.Repository = (*SessionRepository)(nil)

func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PresentationSessionModel, error) {
	var m model.PresentationSessionModel
	if err := r.DB.WithContext(ctx).
		First(&m, "presentation_session_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *SessionRepository) Search(ctx context.Context, f service.Filter) ([]model.PresentationSessionModel, error) {
	db := r.DB.WithContext(ctx).Model(&model.PresentationSessionModel{})

	if f.Date != "" {
		db = db.Where("presentation_session_date = ?", f.Date)
	}
	if f.Type != "" {
		db = db.Where("presentation_session_type = ?", f.Type)
	}
	if f.Status != "" {
		db = db.Where("presentation_session_status = ?", f.Status)
	}
	if f.AvailableOnly {
		db = db.Where("presentation_session_status = ?", model.SessionStatusOpen).
			Where("presentation_session_registered < presentation_session_capacity")
	}

	var sessions []model.PresentationSessionModel
	if err := db.Order("presentation_session_date ASC, presentation_session_start_time ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) Create(ctx context.Context, m *model.PresentationSessionModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *SessionRepository) Save(ctx context.Context, m *model.PresentationSessionModel) error {
	return r.DB.WithContext(ctx).Save(m).Error
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Delete(&model.PresentationSessionModel{}, "presentation_session_id = ?", id).Error
}

func (r *SessionRepository) CountRegistrationsBySession(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("registrations").
		Where("registration_session_id = ? AND registration_deleted_at IS NULL", id).
		Count(&count).Error
	return count, err
}
