package routes

import (
	"attendance-verify-backend/internal/handler"
	"attendance-verify-backend/internal/middleware"
	"attendance-verify-backend/internal/repository"
	"attendance-verify-backend/internal/verification"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, recorder *verification.Recorder) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	officeRepo := repository.NewOfficeRepository(db)
	hdl := handler.NewAttendanceHandler(recorder, attendanceRepo, employeeRepo, officeRepo)

	// Grouping route khusus kehadiran
	api := app.Group("/api/attendance", middleware.Auth)

	api.Post("/checkin", hdl.CheckIn)
	api.Post("/checkout", hdl.CheckOut)
	api.Get("/riwayat", hdl.GetHistory)
	api.Get("/rekap", hdl.GetRekap)
}
