package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Operational status controls which sales channel a room is listed on. The
// privileged channel is quota-limited per partner.
const (
	OperationalPrivileged = "privileged"
	OperationalNormal     = "normal"
)

const (
	OccupancyAvailable = "available"
	OccupancyOccupied  = "occupied"
	OccupancyCleaning  = "cleaning"
)

const (
	PromotionOpen   = "promotionOpen"
	PromotionClosed = "promotionClosed"
)

type Room struct {
	gorm.Model

	PartnerID  uint `json:"partnerId" gorm:"index"`
	SummaryID  uint `json:"summaryId"`
	BuildingID uint `json:"buildingId" gorm:"index"`

	RoomNumber string `json:"roomNumber" gorm:"size:50"`
	// Denormalized copy of a floor name on the owning building. Fixed up in
	// bulk when a floor is renamed.
	Floor string `json:"floor" gorm:"size:100"`

	ListedPrice           float64 `json:"price"`
	BasePrice             float64 `json:"basePrice"`
	ServiceChargeAmount   float64 `json:"serviceChargeAmount"`
	VatAmount             float64 `json:"vatAmount"`
	ServiceChargeIncluded bool    `json:"isServiceChargeIncluded"`
	VatIncluded           bool    `json:"isVatIncluded"`

	MaxOccupancy int    `json:"stayPeople"`
	Detail       string `json:"roomDetail" gorm:"type:text"`
	AirCondition string `json:"air" gorm:"size:50"`

	OperationalStatus string `json:"status" gorm:"size:30;default:normal"`
	OccupancyStatus   string `json:"statusRoom" gorm:"size:30;default:available"`
	PromotionStatus   string `json:"statusPromotion" gorm:"size:30;default:promotionClosed"`

	RoomTypeID *uint    `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`
	RoomType   RoomType `json:"roomType" gorm:"foreignKey:RoomTypeID"`

	Images datatypes.JSON `json:"images"`
	Tags   []Tag          `json:"tags" gorm:"many2many:room_tags"`

	Building Building `json:"building" gorm:"foreignKey:BuildingID"`
}

func AllowedOperationalStatuses() []string {
	return []string{OperationalPrivileged, OperationalNormal}
}

func AllowedOccupancyStatuses() []string {
	return []string{OccupancyAvailable, OccupancyOccupied, OccupancyCleaning}
}

func AllowedPromotionStatuses() []string {
	return []string{PromotionOpen, PromotionClosed}
}
