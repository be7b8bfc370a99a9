package services

import (
	"testing"

	"hotel-pos-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestEnsureSummaryCreatesOnce(t *testing.T) {
	_, summaries, _, _, _ := newServices(t)

	first, err := summaries.EnsureSummary(1)
	require.NoError(t, err)
	assert.Equal(t, models.PrivilegedRoomQuota, first.PrivilegedQuota)
	assert.Zero(t, first.BuildingCount)

	second, err := summaries.EnsureSummary(1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, summaries.DB.Model(&models.Summary{}).Where("partner_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAttachBuildingIsIdempotent(t *testing.T) {
	db, summaries, _, _, _ := newServices(t)

	building := models.Building{PartnerID: 7, Name: "A"}
	require.NoError(t, building.SetFloors(nil))
	require.NoError(t, db.Create(&building).Error)
	require.Zero(t, building.SummaryID)

	require.NoError(t, summaries.AttachBuilding(&building))
	attached := building.SummaryID
	require.NotZero(t, attached)

	require.NoError(t, summaries.AttachBuilding(&building))
	assert.Equal(t, attached, building.SummaryID)

	var count int64
	require.NoError(t, db.Model(&models.Summary{}).Where("partner_id = ?", 7).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var reloaded models.Building
	require.NoError(t, db.First(&reloaded, building.ID).Error)
	assert.Equal(t, attached, reloaded.SummaryID)
}

func TestRecomputeCounters(t *testing.T) {
	db, summaries, buildings, rooms, _ := newServices(t)
	roomTypeID := seedRoomType(t, db)
	const partnerID = uint(3)

	a, err := buildings.Create(partnerID, buildingInput("A"))
	require.NoError(t, err)
	_, err = buildings.AddFloor(partnerID, a.ID, "1", "")
	require.NoError(t, err)
	_, err = buildings.AddFloor(partnerID, a.ID, "2", "")
	require.NoError(t, err)

	b, err := buildings.Create(partnerID, buildingInput("B"))
	require.NoError(t, err)
	_, err = buildings.AddFloor(partnerID, b.ID, "G", "")
	require.NoError(t, err)

	r1, err := rooms.Create(partnerID, roomInput(a.ID, roomTypeID, "1", "101"))
	require.NoError(t, err)
	_, err = rooms.Create(partnerID, roomInput(a.ID, roomTypeID, "2", "201"))
	require.NoError(t, err)
	_, err = rooms.Create(partnerID, roomInput(b.ID, roomTypeID, "G", "G01"))
	require.NoError(t, err)

	_, err = rooms.UpdateOperationalStatus(partnerID, r1.ID, models.OperationalPrivileged)
	require.NoError(t, err)

	summary, err := summaries.Recompute(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.BuildingCount)
	assert.Equal(t, 3, summary.FloorCount)
	assert.Equal(t, 3, summary.RoomCount)
	assert.Equal(t, 1, summary.RoomCountPrivileged)
	assert.Equal(t, models.PrivilegedRoomQuota, summary.PrivilegedQuota)

	_, err = rooms.Delete(partnerID, r1.ID)
	require.NoError(t, err)

	summary, err = summaries.Recompute(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.RoomCount)
	assert.Equal(t, 0, summary.RoomCountPrivileged)
}

func TestRecomputeToleratesMalformedFloors(t *testing.T) {
	db, summaries, _, _, _ := newServices(t)

	building := models.Building{PartnerID: 9, Name: "broken", Floors: datatypes.JSON([]byte(`"oops"`))}
	require.NoError(t, db.Create(&building).Error)

	summary, err := summaries.Recompute(9)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.BuildingCount)
	assert.Equal(t, 0, summary.FloorCount)
}

func TestRecomputeResetsTamperedQuota(t *testing.T) {
	db, summaries, _, _, _ := newServices(t)

	summary, err := summaries.EnsureSummary(4)
	require.NoError(t, err)
	require.NoError(t, db.Model(summary).Updates(map[string]interface{}{
		"privileged_quota": 99,
		"building_count":   42,
	}).Error)

	recomputed, err := summaries.Recompute(4)
	require.NoError(t, err)
	assert.Equal(t, models.PrivilegedRoomQuota, recomputed.PrivilegedQuota)
	assert.Equal(t, 0, recomputed.BuildingCount)
}

// A failing summary refresh must never fail the mutation that triggered it.
func TestMutationSurvivesRefreshFailure(t *testing.T) {
	db, _, _, rooms, _ := newServices(t)
	roomTypeID := seedRoomType(t, db)
	const partnerID = uint(5)

	room, err := rooms.Create(partnerID, roomInput(1, roomTypeID, "1", "101"))
	require.NoError(t, err)

	// Break only the recompute path: counters live on summaries.
	require.NoError(t, db.Migrator().DropTable(&models.Summary{}))

	updated, err := rooms.UpdateOccupancyStatus(partnerID, room.ID, models.OccupancyCleaning)
	require.NoError(t, err)
	assert.Equal(t, models.OccupancyCleaning, updated.OccupancyStatus)

	var reloaded models.Room
	require.NoError(t, db.First(&reloaded, room.ID).Error)
	assert.Equal(t, models.OccupancyCleaning, reloaded.OccupancyStatus)
}

func TestBuildReport(t *testing.T) {
	db, summaries, buildings, rooms, _ := newServices(t)
	roomTypeID := seedRoomType(t, db)
	const partnerID = uint(6)

	a, err := buildings.Create(partnerID, buildingInput("A"))
	require.NoError(t, err)
	_, err = buildings.AddFloor(partnerID, a.ID, "1", "")
	require.NoError(t, err)

	r1, err := rooms.Create(partnerID, roomInput(a.ID, roomTypeID, "1", "101"))
	require.NoError(t, err)
	_, err = rooms.Create(partnerID, roomInput(a.ID, roomTypeID, "1", "102"))
	require.NoError(t, err)
	_, err = rooms.UpdateOccupancyStatus(partnerID, r1.ID, models.OccupancyOccupied)
	require.NoError(t, err)

	report, err := summaries.BuildReport(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalBuildingCount)
	assert.Equal(t, 1, report.TotalFloorCount)
	assert.Equal(t, 2, report.TotalRoomCount)
	assert.False(t, report.HasProfile)
	assert.Equal(t, 1, report.OccupancyBreakdown[models.OccupancyOccupied])
	assert.Equal(t, 1, report.OccupancyBreakdown[models.OccupancyAvailable])
}

func TestTagsCountIsOpportunistic(t *testing.T) {
	_, summaries, _, _, tags := newServices(t)
	const partnerID = uint(8)

	_, err := tags.Create(partnerID, TagInput{Name: "sea view"})
	require.NoError(t, err)
	_, err = tags.Create(partnerID, TagInput{Name: "smoking"})
	require.NoError(t, err)

	summary, err := summaries.GetByPartner(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TagsCount)

	// The main recomputation leaves the tag count alone.
	summary, err = summaries.Recompute(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TagsCount)
}
