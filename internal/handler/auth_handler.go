package handler

import (
	"attendance-verify-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	usecase *usecase.EmployeeUsecase
}

func NewAuthHandler(u *usecase.EmployeeUsecase) *AuthHandler {
	return &AuthHandler{usecase: u}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		NIP      string `json:"nip"`
		Password string `json:"password"`
		OfficeID uint   `json:"office_id"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Input salah"})
	}

	err := h.usecase.Register(input.Name, input.NIP, input.Password, input.OfficeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Gagal registrasi: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Pegawai berhasil terdaftar!"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		NIP      string `json:"nip"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Input tidak valid"})
	}

	token, name, err := h.usecase.Login(input.NIP, input.Password)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "NIP atau password salah"})
	}

	return c.JSON(fiber.Map{
		"message": "Login Berhasil!",
		"token":   token,
		"name":    name,
	})
}
