package models

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash

	// Billing profile, overwritten on each payment submission.
	FirstName  string `gorm:"size:30" json:"first_name"`
	LastName   string `gorm:"size:30" json:"last_name"`
	Address    string `gorm:"size:200" json:"address"`
	CardNumber string `gorm:"size:16" json:"card_number"`
	CardExpiry string `gorm:"size:5" json:"card_expiry"`
	CardCVC    string `gorm:"size:3" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Bookings  []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
}
