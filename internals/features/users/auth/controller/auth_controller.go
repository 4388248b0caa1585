package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "civicdata_backend/internals/helpers"

	"civicdata_backend/internals/features/users/auth/dto"
	"civicdata_backend/internals/features/users/auth/service"
	userDTO "civicdata_backend/internals/features/users/user/dto"
)

type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{svc: service.NewAuthService(db)}
}

// POST /users/register/
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	user, err := ac.svc.Register(&req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Account created", userDTO.FromModelUser(user))
}

// POST /users/tokens/generate/
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	tokens, err := ac.svc.Login(&req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Login successful", tokens)
}

// POST /users/tokens/refresh/
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	tokens, err := ac.svc.Refresh(&req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Token refreshed", tokens)
}

// POST /users/tokens/google/
func (ac *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	tokens, err := ac.svc.GoogleLogin(&req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Login successful", tokens)
}
