package repository

import (
	"attendance-verify-backend/internal/model"

	"gorm.io/gorm"
)

type OfficeRepository interface {
	GetByID(id uint) (*model.Office, error)
	GetFirst() (*model.Office, error)
	Create(office *model.Office) error
	Update(office *model.Office) error
}

type officeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) OfficeRepository {
	return &officeRepository{db}
}

func (r *officeRepository) GetByID(id uint) (*model.Office, error) {
	var office model.Office
	err := r.db.First(&office, id).Error
	return &office, err
}

func (r *officeRepository) GetFirst() (*model.Office, error) {
	var office model.Office
	err := r.db.First(&office).Error
	return &office, err
}

func (r *officeRepository) Create(office *model.Office) error {
	return r.db.Create(office).Error
}

func (r *officeRepository) Update(office *model.Office) error {
	return r.db.Save(office).Error
}
