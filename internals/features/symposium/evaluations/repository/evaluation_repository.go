package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"symposium_backend/internals/features/symposium/evaluations/model"
	"symposium_backend/internals/features/symposium/evaluations/service"
)

// EvaluationRepository is the GORM-backed store for evaluations.
type EvaluationRepository struct {
	DB *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{DB: db}
}

var _ service.Repository = (*EvaluationRepository)(nil)

func (r *EvaluationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.EvaluationModel, error) {
	var m model.EvaluationModel
	if err := r.DB.WithContext(ctx).
		First(&m, "evaluation_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *EvaluationRepository) FindByPair(ctx context.Context, evaluatorID, registrationID uuid.UUID) (*model.EvaluationModel, error) {
	var m model.EvaluationModel
	if err := r.DB.WithContext(ctx).
		Where("evaluation_evaluator_id = ? AND evaluation_registration_id = ?", evaluatorID, registrationID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *EvaluationRepository) FindByRegistration(ctx context.Context, registrationID uuid.UUID) ([]model.EvaluationModel, error) {
	var evals []model.EvaluationModel
	if err := r.DB.WithContext(ctx).
		Where("evaluation_registration_id = ?", registrationID).
		Order("evaluation_created_at ASC").
		Find(&evals).Error; err != nil {
		return nil, err
	}
	return evals, nil
}

func (r *EvaluationRepository) FindByEvaluator(ctx context.Context, evaluatorID uuid.UUID) ([]model.EvaluationModel, error) {
	var evals []model.EvaluationModel
	if err := r.DB.WithContext(ctx).
		Where("evaluation_evaluator_id = ?", evaluatorID).
		Order("evaluation_created_at ASC").
		Find(&evals).Error; err != nil {
		return nil, err
	}
	return evals, nil
}

func (r *EvaluationRepository) FindSubmittedByRegistration(ctx context.Context, registrationID uuid.UUID) ([]model.EvaluationModel, error) {
	var evals []model.EvaluationModel
	if err := r.DB.WithContext(ctx).
		Where("evaluation_registration_id = ? AND evaluation_submitted = true", registrationID).
		Find(&evals).Error; err != nil {
		return nil, err
	}
	return evals, nil
}

func (r *EvaluationRepository) RegistrationExists(ctx context.Context, registrationID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("registrations").
		Where("registration_id = ? AND registration_deleted_at IS NULL", registrationID).
		Count(&count).Error
	return count > 0, err
}

func (r *EvaluationRepository) Create(ctx context.Context, m *model.EvaluationModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *EvaluationRepository) Save(ctx context.Context, m *model.EvaluationModel) error {
	return r.DB.WithContext(ctx).Save(m).Error
}

func (r *EvaluationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Delete(&model.EvaluationModel{}, "evaluation_id = ?", id).Error
}
