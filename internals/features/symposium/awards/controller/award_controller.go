package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"symposium_backend/internals/features/symposium/awards/dto"
	"symposium_backend/internals/features/symposium/awards/model"
	"symposium_backend/internals/features/symposium/awards/repository"
	"symposium_backend/internals/features/symposium/awards/service"
	evalRepo "symposium_backend/internals/features/symposium/evaluations/repository"
	evalService "symposium_backend/internals/features/symposium/evaluations/service"
	helper "symposium_backend/internals/helpers"
)

type AwardController struct {
	Service *service.AwardService
}

func NewAwardController(db *gorm.DB, scores *evalService.EvaluationService) *AwardController {
	if scores == nil {
		scores = evalService.NewEvaluationService(evalRepo.NewEvaluationRepository(db))
	}
	return &AwardController{
		Service: service.NewAwardService(repository.NewAwardRepository(db), scores),
	}
}

// Calculate recomputes the whole award set.
func (ctl *AwardController) Calculate(c *fiber.Ctx) error {
	awards, err := ctl.Service.CalculateAwards(c.UserContext())
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Awards calculated", dto.NewAwardResponses(awards))
}

func (ctl *AwardController) List(c *fiber.Ctx) error {
	awardType := strings.ToUpper(strings.TrimSpace(c.Query("type")))
	if awardType != "" {
		if !model.ValidAwardType(awardType) {
			return helper.Error(c, fiber.StatusBadRequest, "Unknown award type")
		}
		awards, err := ctl.Service.ListByType(c.UserContext(), awardType)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to list awards")
		}
		return helper.Success(c, "OK", dto.NewAwardResponses(awards))
	}

	awards, err := ctl.Service.ListAwards(c.UserContext())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list awards")
	}
	return helper.Success(c, "OK", dto.NewAwardResponses(awards))
}
