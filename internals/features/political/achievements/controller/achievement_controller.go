package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "civicdata_backend/internals/helpers"

	"civicdata_backend/internals/features/political/achievements/dto"
	"civicdata_backend/internals/features/political/achievements/service"
)

type AchievementController struct {
	svc *service.AchievementService
}

func NewAchievementController(db *gorm.DB) *AchievementController {
	return &AchievementController{svc: service.NewAchievementService(db)}
}

// GET /political-figures/achievements/get/list/?figure_id=&category=
func (ac *AchievementController) GetList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var figureID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("figure_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid figure_id filter")
		}
		figureID = &id
	}

	items, total, err := ac.svc.List(figureID, c.Query("category"), paging)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Success", dto.FromModelAchievements(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /political-figures/achievements/get/detail/:id/
func (ac *AchievementController) GetDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid achievement id")
	}
	m, err := ac.svc.GetByID(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Success", dto.FromModelAchievement(m))
}

// POST /political-figures/achievements/create/
func (ac *AchievementController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.AchievementCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := ac.svc.Create(&req, actorID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Achievement created", dto.FromModelAchievement(m))
}

// PATCH /political-figures/achievements/update/:id/
func (ac *AchievementController) Update(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid achievement id")
	}
	var req dto.AchievementUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := ac.svc.Update(id, &req, actorID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Achievement updated", dto.FromModelAchievement(m))
}

// DELETE /political-figures/achievements/delete/:id/
func (ac *AchievementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid achievement id")
	}
	if err := ac.svc.Delete(id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Achievement deleted", fiber.Map{"achievement_id": id})
}
