package models

import (
	"time"

	"gorm.io/gorm"
)

// CheckInOrder is a minimal booking record. The date-range room search reads
// it to exclude rooms already taken inside the window; nothing here writes it.
type CheckInOrder struct {
	gorm.Model

	PartnerID uint      `json:"partnerId" gorm:"index"`
	RoomID    uint      `json:"roomId" gorm:"index"`
	OrderDate time.Time `json:"orderDate" gorm:"index"`
}
