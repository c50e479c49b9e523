package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"symposium_backend/internals/features/symposium/reports/repository"
	helper "symposium_backend/internals/helpers"
)

type ReportController struct {
	Repo *repository.ReportRepository
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Repo: repository.NewReportRepository(db)}
}

func (ctl *ReportController) Registrations(c *fiber.Ctx) error {
	summary, err := ctl.Repo.RegistrationSummary(c.UserContext())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build registration report")
	}
	return helper.Success(c, "OK", summary)
}

func (ctl *ReportController) Sessions(c *fiber.Ctx) error {
	rows, err := ctl.Repo.SessionOccupancy(c.UserContext())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build session report")
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *ReportController) Scores(c *fiber.Ctx) error {
	rows, err := ctl.Repo.ScoreSummaries(c.UserContext())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build score report")
	}
	return helper.Success(c, "OK", rows)
}
