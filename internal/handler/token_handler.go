package handler

import (
	"attendance-verify-backend/internal/qrtoken"
	"attendance-verify-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type TokenHandler struct {
	signer     *qrtoken.Signer
	officeRepo repository.OfficeRepository
}

func NewTokenHandler(signer *qrtoken.Signer, officeRepo repository.OfficeRepository) *TokenHandler {
	return &TokenHandler{signer: signer, officeRepo: officeRepo}
}

// IssueQR menerbitkan token QR baru untuk kantor user yang login. Token ini
// yang ditampilkan di layar kantor dan di-scan saat absen.
func (h *TokenHandler) IssueQR(c *fiber.Ctx) error {
	officeID := uint(c.Locals("office_id").(float64))

	office, err := h.officeRepo.GetByID(officeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Data kantor tidak ditemukan"})
	}

	token, err := h.signer.Issue(office.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token QR"})
	}

	claims := h.signer.Verify(token)

	return c.JSON(fiber.Map{
		"message":    "Token QR berhasil dibuat",
		"token":      token,
		"office_id":  office.ID,
		"expires_at": claims.ExpiresAt,
	})
}
