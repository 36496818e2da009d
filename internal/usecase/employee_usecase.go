package usecase

import (
	"time"

	"attendance-verify-backend/config"
	"attendance-verify-backend/internal/model"
	"attendance-verify-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeUsecase struct {
	repo repository.EmployeeRepository
}

func NewEmployeeUsecase(repo repository.EmployeeRepository) *EmployeeUsecase {
	return &EmployeeUsecase{repo: repo}
}

func (u *EmployeeUsecase) Register(name, nip, password string, officeID uint) error {
	// 1. Hashing Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// 2. Simpan ke Database
	employee := model.Employee{
		Name:     name,
		NIP:      nip,
		Password: string(hashedPassword),
		OfficeID: officeID,
		IsActive: true,
	}
	return u.repo.Create(&employee)
}

func (u *EmployeeUsecase) Login(nip, password string) (string, string, error) {
	// 1. Cari pegawai berdasarkan NIP
	employee, err := u.repo.FindByNIP(nip)
	if err != nil {
		return "", "", err
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)); err != nil {
		return "", "", err
	}

	// 3. Jika benar, buat Token JWT
	claims := jwt.MapClaims{
		"user_id":   employee.ID,
		"nip":       employee.NIP,
		"office_id": employee.OfficeID,
		"exp":       time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.GetEnv("JWT_SECRET", "rahasia-negara-sangat-kuat")))
	if err != nil {
		return "", "", err
	}

	return t, employee.Name, nil
}
