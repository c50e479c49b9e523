package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"symposium_backend/internals/features/users/user/model"
)

type UserResponse struct {
	UserID       uuid.UUID      `json:"user_id"`
	UserName     string         `json:"user_name"`
	UserEmail    string         `json:"user_email"`
	UserRole     string         `json:"user_role"`
	UserProfile  datatypes.JSON `json:"user_profile"`
	UserIsActive bool           `json:"user_is_active"`
	CreatedAt    time.Time      `json:"created_at"`
}

func NewUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserProfile:  m.UserProfile,
		UserIsActive: m.UserIsActive,
		CreatedAt:    m.UserCreatedAt,
	}
}

type UpdateUserRequest struct {
	UserName    *string         `json:"user_name,omitempty" validate:"omitempty,min=3,max=100"`
	UserProfile *datatypes.JSON `json:"user_profile,omitempty"`
}
