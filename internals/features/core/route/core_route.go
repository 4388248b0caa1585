package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"civicdata_backend/internals/features/core/controller"
)

func CoreRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCountryController()

	core := api.Group("/core")
	core.Get("/countries/get/list/", ctrl.GetCountryList)
}
