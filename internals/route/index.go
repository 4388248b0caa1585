package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coreRoute "civicdata_backend/internals/features/core/route"
	achievementRoute "civicdata_backend/internals/features/political/achievements/route"
	figureRoute "civicdata_backend/internals/features/political/figures/route"
	partyRoute "civicdata_backend/internals/features/political/parties/route"
	authRoute "civicdata_backend/internals/features/users/auth/route"
	userRoute "civicdata_backend/internals/features/users/user/route"
	helperOSS "civicdata_backend/internals/helpers/oss"
)

// SetupRoutes mounts every feature under /api/v1.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	var blob helperOSS.BlobService
	if svc, err := helperOSS.NewOSSBlobServiceFromEnv("civicdata"); err != nil {
		// photo upload endpoints will reject uploads, everything else works
		log.Printf("[WARN] OSS not configured, photo uploads disabled: %v", err)
	} else {
		blob = svc
	}

	api := app.Group("/api/v1")

	coreRoute.CoreRoutes(api, db)
	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)
	partyRoute.PartyRoutes(api, db)
	figureRoute.FigureRoutes(api, db, blob)
	achievementRoute.AchievementRoutes(api, db)
}
