package services

import (
	"testing"

	"hotel-pos-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Partner{},
		&models.Summary{},
		&models.RoomType{},
		&models.Building{},
		&models.Tag{},
		&models.Room{},
		&models.HotelProfile{},
		&models.CheckInOrder{},
	))
	return db
}

func newServices(t *testing.T) (*gorm.DB, *SummaryService, *BuildingService, *RoomService, *TagService) {
	t.Helper()
	db := newTestDB(t)
	summaries := NewSummaryService(db)
	buildings := NewBuildingService(db, summaries)
	rooms := NewRoomService(db, summaries)
	tags := NewTagService(db, summaries)
	return db, summaries, buildings, rooms, tags
}

func seedRoomType(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	roomType := models.RoomType{TypeName: "Standard", Description: "Standard Room", MaxGuests: 2}
	require.NoError(t, db.Create(&roomType).Error)
	return roomType.ID
}

func buildingInput(name string) BuildingInput {
	return BuildingInput{
		Name:            name,
		TextColor:       "#222222",
		BackgroundKind:  models.BackgroundKindColor,
		BackgroundColor: "#FAFAFA",
	}
}

func roomInput(buildingID, roomTypeID uint, floor, number string) RoomInput {
	typeID := roomTypeID
	return RoomInput{
		RoomNumber: number,
		Price:      1000,
		Floor:      floor,
		BuildingID: buildingID,
		RoomTypeID: &typeID,
	}
}
