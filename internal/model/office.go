package model

import "gorm.io/gorm"

type Office struct {
	gorm.Model
	Name        string  `json:"name" gorm:"not null"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	RadiusMeter float64 `json:"radius_meter"`

	Employees []Employee `json:"employees"`
}
