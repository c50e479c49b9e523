package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"symposium_backend/internals/constants"
	"symposium_backend/internals/features/users/user/dto"
	"symposium_backend/internals/features/users/user/repository"
	helper "symposium_backend/internals/helpers"
	authMiddleware "symposium_backend/internals/middlewares/auth"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &UserController{DB: db, Validate: v}
}

// Me returns the authenticated user's own record.
func (ctl *UserController) Me(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := repository.FindUserByID(ctl.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return helper.Success(c, "OK", dto.NewUserResponse(user))
}

// UpdateMe lets a user change their display name and profile blob. Role and
// email stay fixed.
func (ctl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := repository.FindUserByID(ctl.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	if req.UserName != nil {
		user.UserName = strings.TrimSpace(*req.UserName)
	}
	if req.UserProfile != nil {
		user.UserProfile = *req.UserProfile
	}
	if err := repository.UpdateUser(ctl.DB, user); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.Success(c, "User updated", dto.NewUserResponse(user))
}

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}
	user, err := repository.FindUserByID(ctl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return helper.Success(c, "OK", dto.NewUserResponse(user))
}

// ListByRole lists users for one role, e.g. the evaluator roster the
// coordinator assigns from.
func (ctl *UserController) ListByRole(c *fiber.Ctx) error {
	role := strings.ToLower(strings.TrimSpace(c.Query("role")))
	if !constants.ValidRole(role) {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown role")
	}
	users, err := repository.FindUsersByRole(ctl.DB, role)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list users")
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return helper.Success(c, "OK", out)
}

// SetActive toggles the account flag the auth middleware checks on every
// request. Deactivation takes effect on the user's next call.
func (ctl *UserController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}
	active := c.Query("active", "true") == "true"
	if _, err := repository.FindUserByID(ctl.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	if err := repository.SetUserActive(ctl.DB, id, active); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	if active {
		return helper.Success(c, "User activated", fiber.Map{"user_id": id})
	}
	return helper.Success(c, "User deactivated", fiber.Map{"user_id": id})
}
