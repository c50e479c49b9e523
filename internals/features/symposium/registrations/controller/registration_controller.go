package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"symposium_backend/internals/constants"
	"symposium_backend/internals/features/symposium/registrations/dto"
	"symposium_backend/internals/features/symposium/registrations/model"
	"symposium_backend/internals/features/symposium/registrations/repository"
	"symposium_backend/internals/features/symposium/registrations/service"
	sessionRepo "symposium_backend/internals/features/symposium/sessions/repository"
	sessionService "symposium_backend/internals/features/symposium/sessions/service"
	helper "symposium_backend/internals/helpers"
	authmw "symposium_backend/internals/middlewares/auth"
)

type RegistrationController struct {
	Service  *service.RegistrationService
	Validate *validator.Validate
}

func NewRegistrationController(db *gorm.DB, sessions *sessionService.SessionService, v *validator.Validate) *RegistrationController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	if sessions == nil {
		sessions = sessionService.NewSessionService(sessionRepo.NewSessionRepository(db))
	}
	return &RegistrationController{
		Service:  service.NewRegistrationService(repository.NewRegistrationRepository(db), sessions),
		Validate: v,
	}
}

func fileTypeOf(m *model.RegistrationModel) int {
	if m.RegistrationFilePath == nil {
		return constants.FileTypeUnknown
	}
	return constants.DetectFileTypeFromExt(*m.RegistrationFilePath)
}

// canTouch allows coordinators/admins always, students on their own record.
func (ctl *RegistrationController) canTouch(c *fiber.Ctx, m *model.RegistrationModel) bool {
	role := authmw.GetUserRole(c)
	if role == constants.RoleCoordinator || role == constants.RoleAdmin {
		return true
	}
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return false
	}
	return m.RegistrationStudentID == userID
}

// Create registers the authenticated student's presentation.
func (ctl *RegistrationController) Create(c *fiber.Ctx) error {
	studentID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Missing user identity")
	}

	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(studentID)
	if err := ctl.Service.Register(c.UserContext(), m); err != nil {
		return helper.DomainError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration submitted",
		dto.NewRegistrationResponse(m, fileTypeOf(m)))
}

// Update edits a registration. Students may only edit their own.
func (ctl *RegistrationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	var req dto.UpdateRegistrationRequest
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
	if !ctl.canTouch(c, m) {
		return helper.Error(c, fiber.StatusForbidden, "You may only modify your own registration")
	}

	req.Apply(m)
	if err := ctl.Service.Update(c.UserContext(), m); err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Registration updated", dto.NewRegistrationResponse(m, fileTypeOf(m)))
}

func (ctl *RegistrationController) Approve(c *fiber.Ctx) error {
	return ctl.statusAction(c, ctl.Service.Approve, "Registration approved")
}

func (ctl *RegistrationController) Reject(c *fiber.Ctx) error {
	return ctl.statusAction(c, ctl.Service.Reject, "Registration rejected")
}

func (ctl *RegistrationController) statusAction(
	c *fiber.Ctx,
	fn func(ctx context.Context, id uuid.UUID) (*model.RegistrationModel, error),
	message string,
) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	m, err := fn(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, message, dto.NewRegistrationResponse(m, fileTypeOf(m)))
}

// Cancel releases the held slot (if any) and marks the registration
// CANCELLED. Owner or coordinator only.
func (ctl *RegistrationController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	m, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	if !ctl.canTouch(c, m) {
		return helper.Error(c, fiber.StatusForbidden, "You may only cancel your own registration")
	}

	m, err = ctl.Service.Cancel(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Registration cancelled", dto.NewRegistrationResponse(m, fileTypeOf(m)))
}

func (ctl *RegistrationController) AssignToSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	var req dto.AssignSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.AssignToSession(c.UserContext(), id, req.SessionID)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Registration assigned to session", dto.NewRegistrationResponse(m, fileTypeOf(m)))
}

func (ctl *RegistrationController) UnassignFromSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	m, err := ctl.Service.UnassignFromSession(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Registration unassigned from session", dto.NewRegistrationResponse(m, fileTypeOf(m)))
}

func (ctl *RegistrationController) UpdateFilePath(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	var req dto.UpdateFilePathRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	if !ctl.canTouch(c, m) {
		return helper.Error(c, fiber.StatusForbidden, "You may only modify your own registration")
	}

	m, err = ctl.Service.UpdateFilePath(c.UserContext(), id, req.FilePath)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "File path updated", dto.NewRegistrationResponse(m, fileTypeOf(m)))
}

func (ctl *RegistrationController) UpdateBoard(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	var req dto.UpdateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := ctl.Service.UpdateBoardID(c.UserContext(), id, req.BoardID)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Board allocated", dto.NewRegistrationResponse(m, fileTypeOf(m)))
}

func (ctl *RegistrationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	m, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "OK", dto.NewRegistrationResponse(m, fileTypeOf(m)))
}

func (ctl *RegistrationController) List(c *fiber.Ctx) error {
	var q dto.ListRegistrationsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}

	var f service.Filter
	if q.StudentID != "" {
		id, err := uuid.Parse(q.StudentID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		f.StudentID = &id
	}
	if q.SessionID != "" {
		id, err := uuid.Parse(q.SessionID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid session_id")
		}
		f.SessionID = &id
	}
	f.Status = q.Status
	f.Type = q.Type

	p := helper.ParsePage(c, "registration_created_at", "desc", helper.DefaultOpts)
	f.Limit = p.PerPage
	f.Offset = p.Offset()

	total, err := ctl.Service.Count(c.UserContext(), f)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list registrations")
	}
	regs, err := ctl.Service.Search(c.UserContext(), f)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list registrations")
	}

	out := make([]dto.RegistrationResponse, 0, len(regs))
	for i := range regs {
		out = append(out, dto.NewRegistrationResponse(&regs[i], fileTypeOf(&regs[i])))
	}
	return helper.Success(c, "OK", fiber.Map{
		"registrations": out,
		"pagination":    helper.PageMeta(p, total),
	})
}

// Mine lists the authenticated student's own registrations.
func (ctl *RegistrationController) Mine(c *fiber.Ctx) error {
	studentID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Missing user identity")
	}

	regs, err := ctl.Service.Search(c.UserContext(), service.Filter{StudentID: &studentID})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list registrations")
	}

	out := make([]dto.RegistrationResponse, 0, len(regs))
	for i := range regs {
		out = append(out, dto.NewRegistrationResponse(&regs[i], fileTypeOf(&regs[i])))
	}
	return helper.Success(c, "OK", out)
}
