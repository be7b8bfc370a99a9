package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HotelProfile holds the partner's "about hotel" record. One per partner,
// maintained by upsert. ServiceChargePercent and VatPercent feed the room
// pricing computation.
type HotelProfile struct {
	gorm.Model

	PartnerID uint `json:"partnerId" gorm:"index"`
	SummaryID uint `json:"summaryId"`

	Name        string `json:"name" gorm:"size:255"`
	Description string `json:"description" gorm:"type:text"`
	Address     string `json:"address" gorm:"type:text"`
	Phone       string `json:"phone" gorm:"size:50"`
	Email       string `json:"email" gorm:"size:150"`
	Website     string `json:"website" gorm:"size:255"`

	ServiceChargePercent float64 `json:"serviceCharge"`
	VatPercent           float64 `json:"vat"`

	// Taxonomy references kept as plain id lists.
	RoomTypeRefs datatypes.JSON `json:"roomTypeRefs"`
	FacilityRefs datatypes.JSON `json:"facilityRefs"`
}
