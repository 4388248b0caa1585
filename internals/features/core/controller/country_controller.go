package controller

import (
	"github.com/gofiber/fiber/v2"

	"civicdata_backend/internals/constants"
	helper "civicdata_backend/internals/helpers"
)

type CountryController struct{}

func NewCountryController() *CountryController {
	return &CountryController{}
}

// GET /core/countries/get/list/
func (cc *CountryController) GetCountryList(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Success", constants.Countries)
}
