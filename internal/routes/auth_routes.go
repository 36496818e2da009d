package routes

import (
	"attendance-verify-backend/internal/handler"
	"attendance-verify-backend/internal/repository"
	"attendance-verify-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	uc := usecase.NewEmployeeUsecase(employeeRepo)
	hdl := handler.NewAuthHandler(uc)

	api := app.Group("/api/auth")

	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
}
