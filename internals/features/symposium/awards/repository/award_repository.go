package repository

import (
	"context"

	"gorm.io/gorm"

	"symposium_backend/internals/features/symposium/awards/model"
	"symposium_backend/internals/features/symposium/awards/service"
	regModel "symposium_backend/internals/features/symposium/registrations/model"
)

// AwardRepository is the GORM-backed store for the award set.
type AwardRepository struct {
	DB *gorm.DB
}

func NewAwardRepository(db *gorm.DB) *AwardRepository {
	return &AwardRepository{DB: db}
}

var _ service.Repository = (*AwardRepository)(nil)

func (r *AwardRepository) FindApprovedRegistrations(ctx context.Context) ([]regModel.RegistrationModel, error) {
	var regs []regModel.RegistrationModel
	if err := r.DB.WithContext(ctx).
		Where("registration_status = ?", regModel.RegistrationStatusApproved).
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *AwardRepository) FindAll(ctx context.Context) ([]model.AwardModel, error) {
	var awards []model.AwardModel
	if err := r.DB.WithContext(ctx).
		Order("award_type ASC, award_score DESC").
		Find(&awards).Error; err != nil {
		return nil, err
	}
	return awards, nil
}

func (r *AwardRepository) FindByType(ctx context.Context, awardType string) ([]model.AwardModel, error) {
	var awards []model.AwardModel
	if err := r.DB.WithContext(ctx).
		Where("award_type = ?", awardType).
		Order("award_score DESC").
		Find(&awards).Error; err != nil {
		return nil, err
	}
	return awards, nil
}

// ReplaceAll swaps the whole award set in one transaction: the previous
// computation is discarded, never patched.
func (r *AwardRepository) ReplaceAll(ctx context.Context, awards []model.AwardModel) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.AwardModel{}).Error; err != nil {
			return err
		}
		if len(awards) == 0 {
			return nil
		}
		return tx.Create(&awards).Error
	})
}
