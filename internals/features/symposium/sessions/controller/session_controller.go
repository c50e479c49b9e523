package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"symposium_backend/internals/features/symposium/sessions/dto"
	"symposium_backend/internals/features/symposium/sessions/repository"
	"symposium_backend/internals/features/symposium/sessions/service"
	helper "symposium_backend/internals/helpers"
)

type SessionController struct {
	Service  *service.SessionService
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB, v *validator.Validate) *SessionController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &SessionController{
		Service:  service.NewSessionService(repository.NewSessionRepository(db)),
		Validate: v,
	}
}

func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), m); err != nil {
		return helper.DomainError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Session created", dto.NewSessionResponse(m))
}

func (ctl *SessionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	req.Apply(m)

	if err := ctl.Service.Update(c.UserContext(), m); err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Session updated", dto.NewSessionResponse(m))
}

func (ctl *SessionController) ChangeStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var req dto.ChangeSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.ChangeStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Session status changed", dto.NewSessionResponse(m))
}

// Delete removes a session. Sessions still holding registrations are only
// removed with ?confirmed=true.
func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid session id")
	}

	confirmed := c.QueryBool("confirmed", false)
	deleted, err := ctl.Service.Delete(c.UserContext(), id, confirmed)
	if err != nil {
		return helper.DomainError(c, err)
	}
	if !deleted {
		return helper.Error(c, fiber.StatusConflict,
			"Session still has registrations; repeat with confirmed=true to force delete")
	}
	return helper.Success(c, "Session deleted", fiber.Map{"presentation_session_id": id})
}

func (ctl *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid session id")
	}

	m, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "OK", dto.NewSessionResponse(m))
}

func (ctl *SessionController) List(c *fiber.Ctx) error {
	var q dto.ListSessionsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Normalize()

	sessions, err := ctl.Service.Search(c.UserContext(), service.Filter{
		Date:          q.Date,
		Type:          q.Type,
		Status:        q.Status,
		AvailableOnly: q.AvailableOnly,
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list sessions")
	}

	out := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, dto.NewSessionResponse(&sessions[i]))
	}
	return helper.Success(c, "OK", out)
}
