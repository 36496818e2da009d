package main

import (
	"fmt"
	"time"

	"attendance-verify-backend/config"
	"attendance-verify-backend/internal/face"
	"attendance-verify-backend/internal/notifier"
	"attendance-verify-backend/internal/qrtoken"
	"attendance-verify-backend/internal/repository"
	"attendance-verify-backend/internal/routes"
	"attendance-verify-backend/internal/verification"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan verification engine...")

	// Policy verifikasi: dibaca sekali, immutable, di-inject ke core
	policy := config.LoadPolicy()

	signer := qrtoken.NewSigner(
		config.GetEnv("QR_TOKEN_SECRET", "rahasia-qr-kantor"),
		config.GetEnv("QR_TOKEN_ISSUER", "attendance-verify-backend"),
		time.Duration(config.GetEnvAsInt("QR_TOKEN_TTL_MINUTES", 5))*time.Minute,
	)

	// FACE_API_URL kosong = oracle unavailable = faktor foto jadi presence-only
	oracle := face.NewHTTPOracle(config.GetEnv("FACE_API_URL", ""))

	// Mailer alert opsional, aktif kalau SMTP_HOST diisi
	var alertNotifier verification.Notifier
	if smtpHost := config.GetEnv("SMTP_HOST", ""); smtpHost != "" {
		alertNotifier = notifier.NewMailer(
			smtpHost,
			config.GetEnvAsInt("SMTP_PORT", 587),
			config.GetEnv("SMTP_USERNAME", ""),
			config.GetEnv("SMTP_PASSWORD", ""),
			config.GetEnv("ALERT_MAIL_FROM", "noreply@kantor.go.id"),
			config.GetEnv("ALERT_MAIL_TO", "admin@kantor.go.id"),
			nil,
		)
	}

	evaluator := verification.NewFactorEvaluator(policy, signer, oracle, nil)
	recorder := verification.NewRecorder(policy, repository.NewAttendanceRepository(config.DB), evaluator, alertNotifier, nil)

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	// Serve Static Files (foto probe bisa dibuka via /uploads/...)
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB, recorder)
	routes.SetupFaceRoutes(app, config.DB, oracle)
	routes.SetupTokenRoutes(app, config.DB, signer)
	routes.SetupReportRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
