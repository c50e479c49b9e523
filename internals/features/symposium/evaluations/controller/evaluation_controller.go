package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"symposium_backend/internals/constants"
	"symposium_backend/internals/features/symposium/evaluations/dto"
	"symposium_backend/internals/features/symposium/evaluations/model"
	"symposium_backend/internals/features/symposium/evaluations/repository"
	"symposium_backend/internals/features/symposium/evaluations/service"
	helper "symposium_backend/internals/helpers"
	authmw "symposium_backend/internals/middlewares/auth"
)

type EvaluationController struct {
	Service  *service.EvaluationService
	Validate *validator.Validate
}

func NewEvaluationController(db *gorm.DB, v *validator.Validate) *EvaluationController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &EvaluationController{
		Service:  service.NewEvaluationService(repository.NewEvaluationRepository(db)),
		Validate: v,
	}
}

// ownEvaluation allows coordinators/admins always, evaluators on their own
// record.
func ownEvaluation(c *fiber.Ctx, m *model.EvaluationModel) bool {
	role := authmw.GetUserRole(c)
	if role == constants.RoleCoordinator || role == constants.RoleAdmin {
		return true
	}
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return false
	}
	return m.EvaluationEvaluatorID == userID
}

// Assign creates the draft evaluation for an (evaluator, registration) pair.
func (ctl *EvaluationController) Assign(c *fiber.Ctx) error {
	var req dto.AssignEvaluatorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.AssignEvaluator(c.UserContext(), req.EvaluatorID, req.RegistrationID)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Evaluator assigned", dto.NewEvaluationResponse(m))
}

func (ctl *EvaluationController) Remove(c *fiber.Ctx) error {
	var req dto.AssignEvaluatorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.RemoveAssignment(c.UserContext(), req.EvaluatorID, req.RegistrationID); err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Assignment removed", nil)
}

// SaveDraft stores scores and comments without finalizing.
func (ctl *EvaluationController) SaveDraft(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid evaluation id")
	}

	var req dto.SaveEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	stored, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	if !ownEvaluation(c, stored) {
		return helper.Error(c, fiber.StatusForbidden, "You may only edit your own evaluation")
	}

	m, err := ctl.Service.SaveEvaluation(c.UserContext(), req.ToModel(id))
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Evaluation saved", dto.NewEvaluationResponse(m))
}

// Submit finalizes an evaluation; there is no way back.
func (ctl *EvaluationController) Submit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid evaluation id")
	}

	stored, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	if !ownEvaluation(c, stored) {
		return helper.Error(c, fiber.StatusForbidden, "You may only submit your own evaluation")
	}

	m, err := ctl.Service.SubmitEvaluation(c.UserContext(), id)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Evaluation submitted", dto.NewEvaluationResponse(m))
}

func (ctl *EvaluationController) ListByRegistration(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("registrationId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	evals, err := ctl.Service.ListByRegistration(c.UserContext(), registrationID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list evaluations")
	}

	out := make([]dto.EvaluationResponse, 0, len(evals))
	for i := range evals {
		out = append(out, dto.NewEvaluationResponse(&evals[i]))
	}
	return helper.Success(c, "OK", out)
}

// Mine lists the authenticated evaluator's assignments.
func (ctl *EvaluationController) Mine(c *fiber.Ctx) error {
	evaluatorID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Missing user identity")
	}

	evals, err := ctl.Service.ListByEvaluator(c.UserContext(), evaluatorID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list evaluations")
	}

	out := make([]dto.EvaluationResponse, 0, len(evals))
	for i := range evals {
		out = append(out, dto.NewEvaluationResponse(&evals[i]))
	}
	return helper.Success(c, "OK", out)
}

// Average reports the submitted-score mean and count for a registration.
func (ctl *EvaluationController) Average(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("registrationId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	avg, count, err := ctl.Service.AverageScore(c.UserContext(), registrationID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute average")
	}
	return helper.Success(c, "OK", dto.AverageScoreResponse{
		RegistrationID: registrationID,
		AverageScore:   service.RoundScore(avg),
		SubmittedCount: count,
	})
}
