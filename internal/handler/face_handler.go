package handler

import (
	"errors"
	"io"

	"attendance-verify-backend/internal/face"
	"attendance-verify-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type FaceHandler struct {
	oracle       face.Oracle
	employeeRepo repository.EmployeeRepository
}

func NewFaceHandler(oracle face.Oracle, employeeRepo repository.EmployeeRepository) *FaceHandler {
	return &FaceHandler{oracle: oracle, employeeRepo: employeeRepo}
}

// Enroll mendaftarkan template wajah pegawai yang sedang login. Setelah
// enroll, setiap check-in WAJIB menyertakan foto probe.
func (h *FaceHandler) Enroll(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("user_id").(float64))

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Foto wajib diupload"})
	}

	opened, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Foto tidak bisa dibaca"})
	}
	defer opened.Close()

	image, err := io.ReadAll(opened)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Foto tidak bisa dibaca"})
	}

	enrollment, err := h.oracle.Register(c.Context(), image, employeeID)
	if err != nil {
		if errors.Is(err, face.ErrUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Layanan verifikasi wajah sedang tidak tersedia"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Registrasi wajah gagal: " + err.Error()})
	}

	if err := h.employeeRepo.SetFaceTemplate(employeeID, enrollment.TemplateID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan template wajah"})
	}

	return c.JSON(fiber.Map{
		"message":          "Registrasi wajah berhasil",
		"face_template_id": enrollment.TemplateID,
		"confidence":       enrollment.Confidence,
	})
}
