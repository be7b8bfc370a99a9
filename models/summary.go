package models

import (
	"time"

	"gorm.io/gorm"
)

// PrivilegedRoomQuota is the fixed per-partner cap on rooms in the privileged
// operational status. It is rewritten onto the summary on every recomputation.
const PrivilegedRoomQuota = 5

// Summary is the per-partner rollup record. The counters are a cache rebuilt
// from live building/room data after every mutation; they are never patched
// incrementally.
type Summary struct {
	gorm.Model

	PartnerID uint `json:"partnerId" gorm:"index"`

	BuildingCount       int `json:"buildingCount"`
	FloorCount          int `json:"floorCount"`
	RoomCount           int `json:"roomCount"`
	RoomCountPrivileged int `json:"roomCountPrivileged"`
	PrivilegedQuota     int `json:"privilegedQuota"`
	TagsCount           int `json:"tagsCount"`

	// Last date-range room search run by the partner. Cleared independently
	// of the counters.
	SearchStart    *time.Time `json:"searchStart,omitempty"`
	SearchEnd      *time.Time `json:"searchEnd,omitempty"`
	SearchDuration int        `json:"searchDuration"`

	// Attached on enriched reads only, never persisted.
	Tags      []Tag         `json:"tags,omitempty" gorm:"-"`
	Buildings []Building    `json:"buildings,omitempty" gorm:"-"`
	Rooms     []Room        `json:"rooms,omitempty" gorm:"-"`
	Profile   *HotelProfile `json:"aboutHotel,omitempty" gorm:"-"`
}
