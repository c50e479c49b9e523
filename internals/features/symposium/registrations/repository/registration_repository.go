package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"symposium_backend/internals/features/symposium/registrations/model"
	"symposium_backend/internals/features/symposium/registrations/service"
)

// RegistrationRepository is the GORM-backed store for registrations.
type RegistrationRepository struct {
	DB *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{DB: db}
}

var _ service.Repository = (*RegistrationRepository)(nil)

func (r *RegistrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RegistrationModel, error) {
	var m model.RegistrationModel
	if err := r.DB.WithContext(ctx).
		First(&m, "registration_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *RegistrationRepository) applyFilter(ctx context.Context, f service.Filter) *gorm.DB {
	db := r.DB.WithContext(ctx).Model(&model.RegistrationModel{})

	if f.StudentID != nil {
		db = db.Where("registration_student_id = ?", *f.StudentID)
	}
	if f.SessionID != nil {
		db = db.Where("registration_session_id = ?", *f.SessionID)
	}
	if f.Status != "" {
		db = db.Where("registration_status = ?", f.Status)
	}
	if f.Type != "" {
		db = db.Where("registration_presentation_type = ?", f.Type)
	}
	return db
}

func (r *RegistrationRepository) Search(ctx context.Context, f service.Filter) ([]model.RegistrationModel, error) {
	db := r.applyFilter(ctx, f)
	if f.Limit > 0 {
		db = db.Limit(f.Limit).Offset(f.Offset)
	}

	var regs []model.RegistrationModel
	if err := db.Order("registration_created_at DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *RegistrationRepository) Count(ctx context.Context, f service.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(ctx, f).Count(&count).Error
	return count, err
}

func (r *RegistrationRepository) Create(ctx context.Context, m *model.RegistrationModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *RegistrationRepository) Save(ctx context.Context, m *model.RegistrationModel) error {
	return r.DB.WithContext(ctx).Save(m).Error
}

func (r *RegistrationRepository) BoardTaken(ctx context.Context, sessionID uuid.UUID, boardID string, exceptID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.RegistrationModel{}).
		Where("registration_session_id = ? AND registration_board_id = ? AND registration_id <> ?",
			sessionID, boardID, exceptID).
		Count(&count).Error
	return count > 0, err
}
