package models

import "time"

type Movie struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Director      string    `gorm:"size:100" json:"director"`
	Actors        string    `gorm:"size:300" json:"actors"` // comma-separated
	ReleaseDate   string    `gorm:"size:10" json:"release_date"`
	Description   string    `gorm:"type:text" json:"description"`
	Poster        string    `json:"poster"`
	Classic       bool      `gorm:"default:false" json:"classic"`
	AgeRestricted bool      `gorm:"default:false" json:"age_restricted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Screenings []Screening `gorm:"foreignKey:MovieID" json:"screenings,omitempty"`
}
