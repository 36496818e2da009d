package routes

import (
	"attendance-verify-backend/internal/handler"
	"attendance-verify-backend/internal/middleware"
	"attendance-verify-backend/internal/qrtoken"
	"attendance-verify-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTokenRoutes(app *fiber.App, db *gorm.DB, signer *qrtoken.Signer) {
	officeRepo := repository.NewOfficeRepository(db)
	hdl := handler.NewTokenHandler(signer, officeRepo)

	api := app.Group("/api/token", middleware.Auth)

	api.Post("/qr", hdl.IssueQR)
}
