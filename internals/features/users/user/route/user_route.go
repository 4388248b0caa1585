package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"civicdata_backend/internals/constants"
	"civicdata_backend/internals/features/users/user/controller"
	"civicdata_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	self := api.Group("/users", auth.AuthMiddleware(db))
	self.Get("/profile/", ctrl.GetProfile)
	self.Patch("/profile/", ctrl.UpdateProfile)
	self.Post("/change-password/", ctrl.ChangePassword)

	admin := api.Group("/users",
		auth.AuthMiddleware(db),
		auth.RequireAtLeast(constants.RoleAdmin),
	)
	admin.Get("/list/", ctrl.GetList)
	admin.Get("/get/detail/:id/", ctrl.GetByID)

	super := api.Group("/users",
		auth.AuthMiddleware(db),
		auth.RequireRoles(constants.RoleSuper),
	)
	super.Post("/create/", ctrl.Create)
	super.Patch("/update/:id/", ctrl.Update)
	super.Delete("/delete/:id/", ctrl.Delete)
}
