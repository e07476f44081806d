package models

import "time"

type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	ScreeningID uint      `gorm:"index;not null" json:"screening_id"`
	Screening   Screening `gorm:"foreignKey:ScreeningID" json:"screening"`

	// Sum of quantity * unit price over the details, fixed at creation.
	TotalPrice float64 `gorm:"type:decimal(10,2)" json:"total_price"`

	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	Details   []BookingDetail `gorm:"foreignKey:BookingID" json:"details,omitempty"`
}
