package repository

import (
	"time"

	"attendance-verify-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	// Create is append-only. Events are never updated or deleted here;
	// deletion/export is a reporting concern outside this service.
	Create(event *model.AttendanceEvent) error
	GetHistory(employeeID uint) ([]model.AttendanceEvent, error)
	GetByDateRange(officeID uint, from, to time.Time) ([]model.AttendanceEvent, error)
	GetByMonth(employeeID uint, month, year string) ([]model.AttendanceEvent, error)
	GetLastByKind(employeeID uint, kind string) (*model.AttendanceEvent, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(event *model.AttendanceEvent) error {
	return r.db.Create(event).Error
}

func (r *attendanceRepository) GetHistory(employeeID uint) ([]model.AttendanceEvent, error) {
	var history []model.AttendanceEvent
	err := r.db.Where("employee_id = ?", employeeID).Order("timestamp desc").Find(&history).Error
	return history, err
}

func (r *attendanceRepository) GetByDateRange(officeID uint, from, to time.Time) ([]model.AttendanceEvent, error) {
	var list []model.AttendanceEvent
	err := r.db.Where("office_id = ? AND timestamp >= ? AND timestamp < ?", officeID, from, to).
		Order("timestamp asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByMonth(employeeID uint, month, year string) ([]model.AttendanceEvent, error) {
	var list []model.AttendanceEvent
	err := r.db.Where("employee_id = ? AND DATE_FORMAT(timestamp, '%m') = ? AND DATE_FORMAT(timestamp, '%Y') = ?",
		employeeID, month, year).Order("timestamp asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetLastByKind(employeeID uint, kind string) (*model.AttendanceEvent, error) {
	var event model.AttendanceEvent
	err := r.db.Where("employee_id = ? AND kind = ?", employeeID, kind).
		Order("timestamp desc").First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}
