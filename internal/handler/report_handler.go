package handler

import (
	"time"

	"attendance-verify-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	repo repository.AttendanceRepository
}

func NewReportHandler(repo repository.AttendanceRepository) *ReportHandler {
	return &ReportHandler{repo: repo}
}

// GetByDateRange menyediakan data audit per kantor untuk rentang tanggal,
// termasuk event yang suspicious (reason tersimpan di tiap record).
func (h *ReportHandler) GetByDateRange(c *fiber.Ctx) error {
	officeID := uint(c.Locals("office_id").(float64))
	fromStr := c.Query("dari")
	toStr := c.Query("sampai")

	if fromStr == "" || toStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter dari dan sampai wajib diisi (YYYY-MM-DD)"})
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tanggal dari tidak valid"})
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tanggal sampai tidak valid"})
	}
	// Inklusif sampai akhir hari
	to = to.AddDate(0, 0, 1)

	events, err := h.repo.GetByDateRange(officeID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data laporan"})
	}

	suspicious := 0
	unverified := 0
	for _, event := range events {
		if event.IsSuspicious {
			suspicious++
		}
		if !event.Verified {
			unverified++
		}
	}

	return c.JSON(fiber.Map{
		"message": "Laporan berhasil diambil",
		"data": fiber.Map{
			"total":      len(events),
			"suspicious": suspicious,
			"unverified": unverified,
			"events":     events,
		},
	})
}
