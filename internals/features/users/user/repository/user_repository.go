package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"symposium_backend/internals/features/users/user/model"
)

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUsersByRole(db *gorm.DB, role string) ([]model.UserModel, error) {
	var users []model.UserModel
	if err := db.Where("user_role = ?", role).
		Order("user_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func CreateUser(db *gorm.DB, user *model.UserModel) error {
	return db.Create(user).Error
}

func UpdateUser(db *gorm.DB, user *model.UserModel) error {
	return db.Save(user).Error
}

func SetUserActive(db *gorm.DB, userID uuid.UUID, active bool) error {
	return db.Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_is_active", active).Error
}
