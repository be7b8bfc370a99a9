package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is a seeded taxonomy referenced by rooms.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string `json:"typeName"`
	Description string `json:"description"`
	MaxGuests   uint   `json:"maxGuests"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
