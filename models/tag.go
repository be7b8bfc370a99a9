package models

import "gorm.io/gorm"

const DefaultTagColor = "#FFBB00"

// Tag names are unique per partner; the check is application-enforced.
type Tag struct {
	gorm.Model

	PartnerID uint `json:"partnerId" gorm:"index"`
	SummaryID uint `json:"summaryId"`

	Name        string `json:"name" gorm:"size:100"`
	Description string `json:"description" gorm:"type:text"`
	Color       string `json:"color" gorm:"size:20"`
}
