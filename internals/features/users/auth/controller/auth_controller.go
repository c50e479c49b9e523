package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"symposium_backend/internals/features/users/auth/dto"
	authService "symposium_backend/internals/features/users/auth/service"
	userModel "symposium_backend/internals/features/users/user/model"
	userRepo "symposium_backend/internals/features/users/user/repository"
	helper "symposium_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &AuthController{DB: db, Validate: v}
}

// Register creates an account with the requested role.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := userRepo.FindUserByEmail(ctl.DB, req.UserEmail); err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Database error")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: hashed,
		UserRole:     req.UserRole,
		UserIsActive: true,
	}
	if len(req.UserProfile) > 0 {
		user.UserProfile = req.UserProfile
	}

	if err := userRepo.CreateUser(ctl.DB, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered", fiber.Map{
		"user_id": user.UserID,
	})
}

// Login verifies credentials and issues the token pair.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := userRepo.FindUserByEmail(ctl.DB, req.UserEmail)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if !authService.CheckPassword(user.UserPassword, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, refresh, err := authService.GenerateTokens(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.Success(c, "Login successful", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}
