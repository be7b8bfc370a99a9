package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BackgroundKindColor = "color"
	BackgroundKindImage = "image"
)

// Floor is one entry of a building's embedded floor list. Names are unique
// within a building (exact, case-sensitive match).
type Floor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	RoomCount   int    `json:"roomCount"`
}

type Building struct {
	gorm.Model

	PartnerID uint `json:"partnerId" gorm:"index"`
	SummaryID uint `json:"summaryId"`

	Name            string `json:"name" gorm:"size:255"`
	TextColor       string `json:"textColor" gorm:"size:50"`
	BackgroundKind  string `json:"backgroundKind" gorm:"size:20"`
	BackgroundColor string `json:"backgroundColor" gorm:"size:50"`
	BackgroundImage string `json:"backgroundImage" gorm:"type:text"`

	Floors datatypes.JSON `json:"floors"`
}

// FloorList decodes the floors column. A missing or malformed value counts as
// zero floors rather than an error.
func (b *Building) FloorList() []Floor {
	if len(b.Floors) == 0 {
		return nil
	}
	var floors []Floor
	if err := json.Unmarshal(b.Floors, &floors); err != nil {
		return nil
	}
	return floors
}

func (b *Building) SetFloors(floors []Floor) error {
	if floors == nil {
		floors = []Floor{}
	}
	raw, err := json.Marshal(floors)
	if err != nil {
		return err
	}
	b.Floors = datatypes.JSON(raw)
	return nil
}
