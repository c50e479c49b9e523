package dto

import "gorm.io/datatypes"

type RegisterRequest struct {
	UserName    string         `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail   string         `json:"user_email" validate:"required,email"`
	Password    string         `json:"password" validate:"required,min=8"`
	UserRole    string         `json:"user_role" validate:"required,oneof=student evaluator coordinator admin"`
	UserProfile datatypes.JSON `json:"user_profile" validate:"omitempty"`
}

type LoginRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
