package model

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	OfficeID uint   `json:"office_id"`
	Name     string `json:"name"`
	NIP      string `json:"nip" gorm:"column:nip;unique;not null"`
	Password string `json:"-"`
	Email    string `json:"email"`
	NoHP     string `json:"no_hp"`
	Jabatan  string `json:"jabatan"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// FaceTemplateID diisi sekali saat enrollment wajah. Kosong = belum enroll.
	FaceTemplateID string `json:"face_template_id"`

	// Relasi
	Office Office            `json:"office" gorm:"foreignKey:OfficeID"`
	Events []AttendanceEvent `json:"events" gorm:"foreignKey:EmployeeID"`
}

// FaceEnrolled reports whether the employee has a registered face template.
// Enrolled employees must supply a probe photo on every check-in.
func (e *Employee) FaceEnrolled() bool {
	return e.FaceTemplateID != ""
}
