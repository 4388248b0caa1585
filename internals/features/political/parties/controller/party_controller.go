package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "civicdata_backend/internals/helpers"

	"civicdata_backend/internals/features/political/parties/dto"
	"civicdata_backend/internals/features/political/parties/service"
)

type PartyController struct {
	svc *service.PartyService
}

func NewPartyController(db *gorm.DB) *PartyController {
	return &PartyController{svc: service.NewPartyService(db)}
}

// GET /political-parties/get/list/
func (pc *PartyController) GetList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	parties, total, err := pc.svc.List(c.Query("search"), paging)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Success", dto.FromModelParties(parties),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /political-parties/get/detail/:id/
func (pc *PartyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid political party id")
	}
	m, err := pc.svc.GetByID(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Success", dto.FromModelParty(m))
}

// GET /political-parties/get/slug/:slug/
func (pc *PartyController) GetBySlug(c *fiber.Ctx) error {
	m, err := pc.svc.GetBySlug(c.Params("slug"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Success", dto.FromModelParty(m))
}

// POST /political-parties/create/
func (pc *PartyController) Create(c *fiber.Ctx) error {
	var req dto.PartyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := pc.svc.Create(&req, actorID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Political party created", dto.FromModelParty(m))
}

// PATCH /political-parties/update/:id/
func (pc *PartyController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid political party id")
	}
	var req dto.PartyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := pc.svc.Update(id, &req, actorID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Political party updated", dto.FromModelParty(m))
}

// DELETE /political-parties/delete/:id/
func (pc *PartyController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid political party id")
	}
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := pc.svc.Delete(id, actorID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Political party deleted", fiber.Map{"political_party_id": id})
}
