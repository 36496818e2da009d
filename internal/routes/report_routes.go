package routes

import (
	"attendance-verify-backend/internal/handler"
	"attendance-verify-backend/internal/middleware"
	"attendance-verify-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	hdl := handler.NewReportHandler(attendanceRepo)

	api := app.Group("/api/report", middleware.Auth)

	api.Get("/events", hdl.GetByDateRange)
}
