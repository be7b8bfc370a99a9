package services

import (
	"fmt"
	"testing"

	"hotel-pos-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCreateValidation(t *testing.T) {
	db, _, _, rooms, _ := newServices(t)
	roomTypeID := seedRoomType(t, db)

	var vErr *ValidationError

	_, err := rooms.Create(1, RoomInput{BuildingID: 1, Floor: "1"})
	require.ErrorAs(t, err, &vErr)

	_, err = rooms.Create(1, RoomInput{RoomTypeID: &roomTypeID, Floor: "1"})
	require.ErrorAs(t, err, &vErr)

	bogus := roomTypeID + 100
	_, err = rooms.Create(1, RoomInput{RoomTypeID: &bogus, BuildingID: 1, Floor: "1"})
	require.ErrorAs(t, err, &vErr)
}

func TestRoomCreateComputesPricing(t *testing.T) {
	db, _, buildings, rooms, _ := newServices(t)
	roomTypeID := seedRoomType(t, db)
	const partnerID = uint(7)

	profile := models.HotelProfile{
		PartnerID:            partnerID,
		Name:                 "Riverside",
		ServiceChargePercent: 10,
		VatPercent:           7,
	}
	require.NoError(t, db.Create(&profile).Error)

	building, err := buildings.Create(partnerID, buildingInput("A"))
	require.NoError(t, err)

	in := roomInput(building.ID, roomTypeID, "1", "101")
	in.Price = 1100
	in.ServiceChargeIncluded = true
	in.VatIncluded = true

	room, err := rooms.Create(partnerID, in)
	require.NoError(t, err)
	assert.Equal(t, float64(1100), room.ListedPrice)
	assert.Equal(t, float64(940), room.BasePrice)
	assert.Equal(t, float64(94), room.ServiceChargeAmount)
	assert.Equal(t, float64(66), room.VatAmount)
}

func TestRoomCreateWithoutProfileKeepsListedPrice(t *testing.T) {
	db, _, buildings, rooms, _ := newServices(t)
	roomTypeID := seedRoomType(t, db)

	building, err := buildings.Create(1, buildingInput("A"))
	require.NoError(t, err)

	in := roomInput(building.ID, roomTypeID, "1", "101")
	in.ServiceChargeIncluded = true
	in.VatIncluded = true

	room, err := rooms.Create(1, in)
	require.NoError(t, err)
	assert.Equal(t, float64(1000), room.BasePrice)
	assert.Zero(t, room.ServiceChargeAmount)
	assert.Zero(t, room.VatAmount)
}

func privilegeRooms(t *testing.T, rooms *RoomService, partnerID uint, created []*models.Room) {
	t.Helper()
	for _, room := range created {
		_, err := rooms.UpdateOperationalStatus(partnerID, room.ID, models.OperationalPrivileged)
		require.NoError(t, err)
	}
}

func TestPrivilegedQuotaEnforced(t *testing.T) {
	db, summaries, buildings, rooms, _ := newServices(t)
	roomTypeID := seedRoomType(t, db)
	const partnerID = uint(3)

	building, err := buildings.Create(partnerID, buildingInput("A"))
	require.NoError(t, err)
	_, err = buildings.AddFloor(partnerID, building.ID, "1", "")
	require.NoError(t, err)

	var created []*models.Room
	for i := 0; i < 6; i++ {
		room, err := rooms.Create(partnerID, roomInput(building.ID, roomTypeID, "1", fmt.Sprintf("10%d", i+1)))
		require.NoError(t, err)
		created = append(created, room)
	}

	privilegeRooms(t, rooms, partnerID, created[:5])

	_, err = rooms.UpdateOperationalStatus(partnerID, created[5].ID, models.OperationalPrivileged)
	var qErr *QuotaExceededError
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, 5, qErr.Current)
	assert.Equal(t, 5, qErr.Max)

	// Re-privileging an already privileged room skips the guard.
	_, err = rooms.UpdateOperationalStatus(partnerID, created[0].ID, models.OperationalPrivileged)
	require.NoError(t, err)

	status, err := rooms.QuotaStatus(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 5, status.CurrentCount)
	assert.Equal(t, 5, status.MaxQuota)
	assert.Equal(t, 0, status.Remaining)
	assert.True(t, status.IsFull)

	summary, err := summaries.GetByPartner(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.RoomCountPrivileged)

	// Demoting one opens a slot again.
	_, err = rooms.UpdateOperationalStatus(partnerID, created[0].ID, models.OperationalNormal)
	require.NoError(t, err)
	_, err = rooms.UpdateOperationalStatus(partnerID, created[5].ID, models.OperationalPrivileged)
	require.NoError(t, err)
}

func TestQuotaIsPerPartner(t *testing.T) {
	db, _, buildings, rooms, _ := newServices(t)
	roomTypeID := seedRoomType(t, db)

	for partnerID := uint(1); partnerID <= 2; partnerID++ {
		building, err := buildings.Create(partnerID, buildingInput("A"))
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			room, err := rooms.Create(partnerID, roomInput(building.ID, roomTypeID, "1", fmt.Sprintf("%d0%d", partnerID, i+1)))
			require.NoError(t, err)
			_, err = rooms.UpdateOperationalStatus(partnerID, room.ID, models.OperationalPrivileged)
			require.NoError(t, err)
		}
	}
}

func TestStatusUpdatesRejectUnknownValues(t *testing.T) {
	db, _, buildings, rooms, _ := newServices(t)
	roomTypeID := seedRoomType(t, db)

	building, err := buildings.Create(1, buildingInput("A"))
	require.NoError(t, err)
	room, err := rooms.Create(1, roomInput(building.ID, roomTypeID, "1", "101"))
	require.NoError(t, err)

	var vErr *ValidationError
	_, err = rooms.UpdateOperationalStatus(1, room.ID, "vip")
	require.ErrorAs(t, err, &vErr)
	_, err = rooms.UpdateOccupancyStatus(1, room.ID, "empty")
	require.ErrorAs(t, err, &vErr)
	_, err = rooms.UpdatePromotionStatus(1, room.ID, "half-open")
	require.ErrorAs(t, err, &vErr)
}

func TestRoomUpdateRepricesAndReplacesTags(t *testing.T) {
	db, _, buildings, rooms, tags := newServices(t)
	roomTypeID := seedRoomType(t, db)
	const partnerID = uint(4)

	profile := models.HotelProfile{PartnerID: partnerID, ServiceChargePercent: 10, VatPercent: 7}
	require.NoError(t, db.Create(&profile).Error)

	building, err := buildings.Create(partnerID, buildingInput("A"))
	require.NoError(t, err)
	seaView, err := tags.Create(partnerID, TagInput{Name: "sea view"})
	require.NoError(t, err)
	balcony, err := tags.Create(partnerID, TagInput{Name: "balcony"})
	require.NoError(t, err)

	in := roomInput(building.ID, roomTypeID, "1", "101")
	in.TagIDs = []uint{seaView.ID}
	room, err := rooms.Create(partnerID, in)
	require.NoError(t, err)
	require.Len(t, room.Tags, 1)

	in.Price = 1100
	in.ServiceChargeIncluded = true
	in.VatIncluded = true
	in.TagIDs = []uint{balcony.ID}

	updated, err := rooms.Update(partnerID, room.ID, in)
	require.NoError(t, err)
	assert.Equal(t, float64(940), updated.BasePrice)

	fetched, err := rooms.GetByID(partnerID, room.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Tags, 1)
	assert.Equal(t, "balcony", fetched.Tags[0].Name)
}

// Full back-office flow: one building, one floor, six rooms, five of them
// pushed into the privileged channel. The sixth push is rejected and the
// summary reflects everything that actually happened.
func TestBackOfficeFlow(t *testing.T) {
	db, summaries, buildings, rooms, _ := newServices(t)
	roomTypeID := seedRoomType(t, db)
	const partnerID = uint(9)

	building, err := buildings.Create(partnerID, buildingInput("A"))
	require.NoError(t, err)
	summary, err := summaries.GetByPartner(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.BuildingCount)
	assert.Zero(t, summary.FloorCount)
	assert.Zero(t, summary.RoomCount)

	_, err = buildings.AddFloor(partnerID, building.ID, "1", "lobby level")
	require.NoError(t, err)
	summary, err = summaries.GetByPartner(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FloorCount)

	first, err := rooms.Create(partnerID, roomInput(building.ID, roomTypeID, "1", "101"))
	require.NoError(t, err)
	summary, err = summaries.GetByPartner(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RoomCount)
	assert.Equal(t, 1, summary.FloorCount)

	_, err = rooms.UpdateOperationalStatus(partnerID, first.ID, models.OperationalPrivileged)
	require.NoError(t, err)
	summary, err = summaries.GetByPartner(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RoomCountPrivileged)

	created := []*models.Room{first}
	for i := 1; i < 6; i++ {
		room, err := rooms.Create(partnerID, roomInput(building.ID, roomTypeID, "1", fmt.Sprintf("10%d", i+1)))
		require.NoError(t, err)
		created = append(created, room)
	}

	privilegeRooms(t, rooms, partnerID, created[1:5])

	var qErr *QuotaExceededError
	_, err = rooms.UpdateOperationalStatus(partnerID, created[5].ID, models.OperationalPrivileged)
	require.ErrorAs(t, err, &qErr)

	summary, err = summaries.GetByPartner(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.BuildingCount)
	assert.Equal(t, 1, summary.FloorCount)
	assert.Equal(t, 6, summary.RoomCount)
	assert.Equal(t, 5, summary.RoomCountPrivileged)
	assert.Equal(t, models.PrivilegedRoomQuota, summary.PrivilegedQuota)
}
