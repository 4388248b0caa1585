package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "civicdata_backend/internals/helpers"

	"civicdata_backend/internals/features/users/user/dto"
	"civicdata_backend/internals/features/users/user/service"
)

type UserController struct {
	svc *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{svc: service.NewUserService(db)}
}

// GET /users/list/ (admin and above)
func (uc *UserController) GetList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	users, total, err := uc.svc.List(c.Query("search"), c.Query("role"), paging)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Success", dto.FromModelUsers(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /users/get/detail/:id/ (admin and above)
func (uc *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	m, err := uc.svc.GetByID(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Success", dto.FromModelUser(m))
}

// POST /users/create/ (super only)
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := uc.svc.Create(&req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "User created", dto.FromModelUser(m))
}

// PATCH /users/update/:id/ (super only)
func (uc *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := uc.svc.Update(id, &req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "User updated", dto.FromModelUser(m))
}

// DELETE /users/delete/:id/ (super only)
func (uc *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if err := uc.svc.Delete(id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"user_id": id})
}

// GET /users/profile/
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := uc.svc.GetByID(userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Success", dto.FromModelUser(m))
}

// PATCH /users/profile/
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := uc.svc.UpdateProfile(userID, &req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Profile updated", dto.FromModelUser(m))
}

// POST /users/change-password/
func (uc *UserController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := uc.svc.ChangePassword(userID, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Password changed", nil)
}
