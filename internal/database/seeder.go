package database

import (
	"log"

	"attendance-verify-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Kantor
	office := model.Office{
		Name:        "Kantor Pusat Diskominfo",
		Address:     "Jl. Khatib Sulaiman No. 1",
		Latitude:    -0.9416,
		Longitude:   100.3700,
		RadiusMeter: 100,
	}
	db.FirstOrCreate(&office, model.Office{Name: office.Name})

	// 2. Seed Akun Pegawai Demo
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Gagal hash password seed:", err)
	}

	employees := []model.Employee{
		{Name: "Administrator", NIP: "0000000000", Password: string(hashedPassword), OfficeID: office.ID, IsActive: true},
		{Name: "Budi Santoso", NIP: "1987654321", Password: string(hashedPassword), OfficeID: office.ID, IsActive: true},
	}
	for _, e := range employees {
		db.FirstOrCreate(&e, model.Employee{NIP: e.NIP})
	}

	log.Println("Seeder: kantor + pegawai demo siap")
}
