package models

import "time"

// BookingDetail is one line item of a booking, one row per ticket type
// with a nonzero quantity.
type BookingDetail struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BookingID  uint      `gorm:"index;not null" json:"booking_id"`
	TicketType string    `gorm:"size:20;not null" json:"ticket_type"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
