package models

import "time"

// Discussion is a forum post or a reply. RespondingTo holds the literal
// "Post" for a top-level topic, or the id of the post being replied to.
type Discussion struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:30;not null" json:"username"`
	MovieID      uint      `gorm:"index;not null" json:"movie_id"`
	Movie        Movie     `gorm:"foreignKey:MovieID" json:"movie"`
	Topic        string    `gorm:"size:100;not null" json:"topic"`
	RespondingTo string    `gorm:"size:20;default:'Post'" json:"responding_to"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Timestamp    time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
