package repository

import (
	"attendance-verify-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	FindByNIP(nip string) (*model.Employee, error)
	FindByID(id uint) (*model.Employee, error)
	Create(employee *model.Employee) error
	SetFaceTemplate(employeeID uint, templateID string) error
	GetAllByOfficeID(officeID uint) ([]model.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) FindByNIP(nip string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Preload("Office").Where("nip = ?", nip).First(&employee).Error
	return &employee, err
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Preload("Office").First(&employee, id).Error
	return &employee, err
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) SetFaceTemplate(employeeID uint, templateID string) error {
	return r.db.Model(&model.Employee{}).Where("id = ?", employeeID).
		Update("face_template_id", templateID).Error
}

func (r *employeeRepository) GetAllByOfficeID(officeID uint) ([]model.Employee, error) {
	var list []model.Employee
	err := r.db.Where("office_id = ?", officeID).Find(&list).Error
	return list, err
}
