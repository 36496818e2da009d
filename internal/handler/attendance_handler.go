package handler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"attendance-verify-backend/internal/geo"
	"attendance-verify-backend/internal/model"
	"attendance-verify-backend/internal/repository"
	"attendance-verify-backend/internal/verification"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	recorder     *verification.Recorder
	repo         repository.AttendanceRepository
	employeeRepo repository.EmployeeRepository
	officeRepo   repository.OfficeRepository
}

func NewAttendanceHandler(recorder *verification.Recorder, repo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository, officeRepo repository.OfficeRepository) *AttendanceHandler {
	return &AttendanceHandler{recorder: recorder, repo: repo, employeeRepo: employeeRepo, officeRepo: officeRepo}
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	return h.record(c, true)
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	return h.record(c, false)
}

func (h *AttendanceHandler) record(c *fiber.Ctx, checkIn bool) error {
	// 1. Ambil Data User dari Middleware
	employeeID := uint(c.Locals("user_id").(float64))

	employee, err := h.employeeRepo.FindByID(employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Data pegawai tidak ditemukan"})
	}

	office, err := h.officeRepo.GetByID(employee.OfficeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Data kantor tidak ditemukan"})
	}

	// 2. Parse sinyal dari form multipart
	sig, parseErr := h.parseSignals(c, employeeID)
	if parseErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": parseErr.Error()})
	}

	// 3. Jalankan verifikasi multi-faktor + simpan event
	var report *verification.Report
	if checkIn {
		report, err = h.recorder.CheckIn(c.Context(), employee, office, sig)
	} else {
		report, err = h.recorder.CheckOut(c.Context(), employee, office, sig)
	}

	if err != nil {
		// Hard gate: tolak dengan payload diagnostik, tidak ada yang tersimpan
		var denial *verification.DenialError
		if errors.As(err, &denial) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":  "Verifikasi kehadiran ditolak",
				"denial": denial,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan absensi"})
	}

	message := "Check-in berhasil"
	if !checkIn {
		message = "Check-out berhasil"
	}
	return c.JSON(fiber.Map{
		"message": message,
		"report":  report,
	})
}

// parseSignals reads the untrusted client signals off the multipart form. The
// egress IP comes from the connection, never from a form field.
func (h *AttendanceHandler) parseSignals(c *fiber.Ctx, employeeID uint) (verification.Signals, error) {
	sig := verification.Signals{
		Token:    c.FormValue("qr_token"),
		Comment:  c.FormValue("comment"),
		DeviceID: c.FormValue("device_id"),
		EgressIP: c.IP(),
	}

	if latStr := c.FormValue("latitude"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return sig, fmt.Errorf("latitude tidak valid")
		}
		sig.Latitude = &lat
	}
	if lngStr := c.FormValue("longitude"); lngStr != "" {
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return sig, fmt.Errorf("longitude tidak valid")
		}
		sig.Longitude = &lng
	}
	if sig.Latitude != nil && sig.Longitude != nil && !geo.IsFinite(*sig.Latitude, *sig.Longitude) {
		// NaN/Inf dari client diperlakukan seperti tanpa koordinat
		sig.Latitude, sig.Longitude = nil, nil
	}
	if accStr := c.FormValue("accuracy"); accStr != "" {
		acc, err := strconv.ParseFloat(accStr, 64)
		if err != nil {
			return sig, fmt.Errorf("accuracy tidak valid")
		}
		sig.AccuracyMeters = acc
	}

	// Handle File Upload (Foto Probe)
	file, errFile := c.FormFile("photo")
	if errFile == nil {
		opened, err := file.Open()
		if err != nil {
			return sig, fmt.Errorf("foto tidak bisa dibaca")
		}
		defer opened.Close()

		probe, err := io.ReadAll(opened)
		if err != nil {
			return sig, fmt.Errorf("foto tidak bisa dibaca")
		}
		sig.Probe = probe

		// Buat folder jika belum ada
		uploadDir := "./uploads/attendance"
		if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
			os.MkdirAll(uploadDir, 0755)
		}

		// Simpan file: uploads/attendance/employeeID_timestamp_namafile
		filename := fmt.Sprintf("%d_%d_%s", employeeID, time.Now().Unix(), filepath.Base(file.Filename))
		sig.ProbePath = fmt.Sprintf("uploads/attendance/%s", filename)
		c.SaveFile(file, sig.ProbePath)
	}

	return sig, nil
}

func (h *AttendanceHandler) GetHistory(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("user_id").(float64))
	month := c.Query("bulan")
	year := c.Query("tahun")

	var history []model.AttendanceEvent
	var err error
	if month != "" && year != "" {
		history, err = h.repo.GetByMonth(employeeID, month, year)
	} else {
		history, err = h.repo.GetHistory(employeeID)
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data riwayat"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil riwayat",
		"data":    history,
	})
}

func (h *AttendanceHandler) GetRekap(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("user_id").(float64))
	month := c.Query("bulan")
	year := c.Query("tahun")

	if month == "" || year == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter bulan dan tahun wajib diisi"})
	}

	data, err := h.repo.GetByMonth(employeeID, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data rekap"})
	}

	// Hitung Statistik
	verified := 0
	late := 0
	earlyLeave := 0
	suspicious := 0

	for _, event := range data {
		if event.Verified {
			verified++
		}
		if event.IsLate {
			late++
		}
		if event.IsEarlyLeave {
			earlyLeave++
		}
		if event.IsSuspicious {
			suspicious++
		}
	}

	return c.JSON(fiber.Map{
		"message": "Rekap berhasil",
		"data": fiber.Map{
			"verified":     verified,
			"terlambat":    late,
			"pulang_cepat": earlyLeave,
			"suspicious":   suspicious,
			"detail":       data,
		},
	})
}
