package models

import "time"

type Screening struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MovieID  uint   `gorm:"index;not null" json:"movie_id"`
	Movie    Movie  `gorm:"foreignKey:MovieID" json:"movie"`
	ScreenID uint   `gorm:"index;not null" json:"screen_id"`
	Screen   Screen `gorm:"foreignKey:ScreenID" json:"screen"`

	Day  string `gorm:"size:10;not null" json:"day"` // weekday name, e.g. "Friday"
	Time string `gorm:"size:8;not null" json:"time"` // "HH:MM:SS"

	// Remaining seats. Bookings do not decrement or check this counter;
	// the original system never enforced capacity.
	CurrentCapacity int `json:"current_capacity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
