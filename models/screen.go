package models

import "time"

type Screen struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Standard        bool      `gorm:"default:true" json:"standard"`
	SeatingCapacity int       `gorm:"default:100" json:"seating_capacity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Screenings []Screening `gorm:"foreignKey:ScreenID" json:"screenings,omitempty"`
}
