package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"civicdata_backend/internals/constants"
	"civicdata_backend/internals/features/political/figures/controller"
	helperOSS "civicdata_backend/internals/helpers/oss"
	"civicdata_backend/internals/middlewares/auth"
)

func FigureRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewFigureController(db, blob)

	public := api.Group("/political-figures")
	public.Get("/get/list/", ctrl.GetList)
	public.Get("/get/slug/:slug/", ctrl.GetBySlug)
	public.Get("/get/detail/:id/", ctrl.GetDetail)

	protected := api.Group("/political-figures",
		auth.AuthMiddleware(db),
		auth.RequireAtLeast(constants.RoleAdmin),
	)
	protected.Post("/create/", ctrl.Create)
	protected.Patch("/update/:id/", ctrl.Update)
	protected.Delete("/delete/:id/", ctrl.Delete)
}
