package routes

import (
	"attendance-verify-backend/internal/face"
	"attendance-verify-backend/internal/handler"
	"attendance-verify-backend/internal/middleware"
	"attendance-verify-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFaceRoutes(app *fiber.App, db *gorm.DB, oracle face.Oracle) {
	employeeRepo := repository.NewEmployeeRepository(db)
	hdl := handler.NewFaceHandler(oracle, employeeRepo)

	api := app.Group("/api/face", middleware.Auth)

	api.Post("/enroll", hdl.Enroll)
}
