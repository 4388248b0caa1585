package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"civicdata_backend/internals/constants"
	"civicdata_backend/internals/features/political/parties/controller"
	"civicdata_backend/internals/middlewares/auth"
)

func PartyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPartyController(db)

	public := api.Group("/political-parties")
	public.Get("/get/list/", ctrl.GetList)
	public.Get("/get/slug/:slug/", ctrl.GetBySlug)
	public.Get("/get/detail/:id/", ctrl.GetByID)

	protected := api.Group("/political-parties",
		auth.AuthMiddleware(db),
		auth.RequireAtLeast(constants.RoleAdmin),
	)
	protected.Post("/create/", ctrl.Create)
	protected.Patch("/update/:id/", ctrl.Update)
	protected.Delete("/delete/:id/", ctrl.Delete)
}
