package services

import (
	"errors"
	"log"

	"hotel-pos-backend/models"

	"gorm.io/gorm"
)

// SummaryService owns the per-partner summary record: lazy creation, the full
// counter recomputation, and the summary CRUD endpoints.
type SummaryService struct {
	DB *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{DB: db}
}

// EnsureSummary returns the partner's summary, creating a zeroed one on first
// use. Idempotent: at most one summary ever exists per partner.
func (s *SummaryService) EnsureSummary(partnerID uint) (*models.Summary, error) {
	var summary models.Summary
	err := s.DB.Where("partner_id = ?", partnerID).First(&summary).Error
	if err == nil {
		return &summary, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	summary = models.Summary{
		PartnerID:       partnerID,
		PrivilegedQuota: models.PrivilegedRoomQuota,
	}
	if err := s.DB.Create(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// AttachBuilding repairs a building whose summary reference is unset. A no-op
// when the reference is already populated.
func (s *SummaryService) AttachBuilding(building *models.Building) error {
	if building.SummaryID != 0 {
		return nil
	}
	summary, err := s.EnsureSummary(building.PartnerID)
	if err != nil {
		return err
	}
	building.SummaryID = summary.ID
	return s.DB.Model(building).Update("summary_id", summary.ID).Error
}

// Recompute rebuilds every counter on the partner's summary from the live
// building and room records and persists the result. It is the sole writer of
// the counters.
func (s *SummaryService) Recompute(partnerID uint) (*models.Summary, error) {
	var buildings []models.Building
	if err := s.DB.Where("partner_id = ?", partnerID).Find(&buildings).Error; err != nil {
		return nil, err
	}
	var rooms []models.Room
	if err := s.DB.Where("partner_id = ?", partnerID).Find(&rooms).Error; err != nil {
		return nil, err
	}

	floorCount := 0
	for i := range buildings {
		floorCount += len(buildings[i].FloorList())
	}
	privileged := 0
	for i := range rooms {
		if rooms[i].OperationalStatus == models.OperationalPrivileged {
			privileged++
		}
	}

	summary, err := s.EnsureSummary(partnerID)
	if err != nil {
		return nil, err
	}

	summary.BuildingCount = len(buildings)
	summary.FloorCount = floorCount
	summary.RoomCount = len(rooms)
	summary.RoomCountPrivileged = privileged
	summary.PrivilegedQuota = models.PrivilegedRoomQuota
	if err := s.DB.Save(summary).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

// Refresh runs Recompute and only logs a failure. Mutation handlers call it
// after their primary write; a stale summary heals on the next successful
// recomputation, so the triggering mutation must never fail here.
func (s *SummaryService) Refresh(partnerID uint) {
	if _, err := s.Recompute(partnerID); err != nil {
		log.Printf("summary refresh failed for partner %d: %v", partnerID, err)
	}
}

// RefreshTagsCount recounts the partner's tags onto an existing summary. Tag
// counting is opportunistic: absent a summary this does nothing.
func (s *SummaryService) RefreshTagsCount(partnerID uint) {
	var count int64
	if err := s.DB.Model(&models.Tag{}).Where("partner_id = ?", partnerID).Count(&count).Error; err != nil {
		log.Printf("tag count refresh failed for partner %d: %v", partnerID, err)
		return
	}
	err := s.DB.Model(&models.Summary{}).
		Where("partner_id = ?", partnerID).
		Update("tags_count", count).Error
	if err != nil {
		log.Printf("tag count refresh failed for partner %d: %v", partnerID, err)
	}
}

// GetByPartner returns the partner's summary without touching the counters.
func (s *SummaryService) GetByPartner(partnerID uint) (*models.Summary, error) {
	var summary models.Summary
	err := s.DB.Where("partner_id = ?", partnerID).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetByID looks a summary up by id within the partner scope.
func (s *SummaryService) GetByID(partnerID, id uint) (*models.Summary, error) {
	var summary models.Summary
	err := s.DB.Where("id = ? AND partner_id = ?", id, partnerID).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListAll returns every summary for the partner, newest first. Normally that
// is a single record, but explicit creates can leave more than one.
func (s *SummaryService) ListAll(partnerID uint) ([]models.Summary, error) {
	var summaries []models.Summary
	err := s.DB.Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&summaries).Error
	return summaries, err
}

// Enrich attaches the partner's tags, buildings, rooms and profile to a
// summary for display. The collections are never persisted with the summary.
func (s *SummaryService) Enrich(summary *models.Summary) error {
	partnerID := summary.PartnerID

	if err := s.DB.Where("partner_id = ?", partnerID).Find(&summary.Tags).Error; err != nil {
		return err
	}
	if err := s.DB.Where("partner_id = ?", partnerID).Find(&summary.Buildings).Error; err != nil {
		return err
	}
	err := s.DB.Where("partner_id = ?", partnerID).
		Preload("RoomType").
		Preload("Tags").
		Find(&summary.Rooms).Error
	if err != nil {
		return err
	}

	var profile models.HotelProfile
	err = s.DB.Where("partner_id = ?", partnerID).First(&profile).Error
	if err == nil {
		summary.Profile = &profile
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// CreateExplicit inserts a summary with caller-provided counters. The quota
// still defaults to the fixed constant when omitted.
func (s *SummaryService) CreateExplicit(partnerID uint, summary *models.Summary) error {
	summary.ID = 0
	summary.PartnerID = partnerID
	if summary.PrivilegedQuota == 0 {
		summary.PrivilegedQuota = models.PrivilegedRoomQuota
	}
	return s.DB.Create(summary).Error
}

// Update overwrites the counter fields of an existing summary by id.
func (s *SummaryService) Update(partnerID, id uint, patch map[string]interface{}) (*models.Summary, error) {
	summary, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(summary).Updates(normalizePatch(patch, nil)).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *SummaryService) Delete(partnerID, id uint) (*models.Summary, error) {
	summary, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(summary).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *SummaryService) DeleteAll(partnerID uint) (int64, error) {
	result := s.DB.Where("partner_id = ?", partnerID).Delete(&models.Summary{})
	return result.RowsAffected, result.Error
}

// Report is the computed summary read: counted directly from live data, not
// from the cached record.
type Report struct {
	TotalBuildingCount       int            `json:"totalBuildingCount"`
	TotalFloorCount          int            `json:"totalFloorCount"`
	TotalRoomCount           int            `json:"totalRoomCount"`
	TotalRoomCountPrivileged int            `json:"totalRoomCountPrivileged"`
	PrivilegedQuota          int            `json:"privilegedQuota"`
	HasProfile               bool           `json:"hasProfile"`
	OccupancyBreakdown       map[string]int `json:"occupancyBreakdown"`
}

func (s *SummaryService) BuildReport(partnerID uint) (*Report, error) {
	var buildings []models.Building
	if err := s.DB.Where("partner_id = ?", partnerID).Find(&buildings).Error; err != nil {
		return nil, err
	}
	var rooms []models.Room
	if err := s.DB.Where("partner_id = ?", partnerID).Find(&rooms).Error; err != nil {
		return nil, err
	}

	report := &Report{
		TotalBuildingCount: len(buildings),
		TotalRoomCount:     len(rooms),
		PrivilegedQuota:    models.PrivilegedRoomQuota,
		OccupancyBreakdown: map[string]int{
			models.OccupancyAvailable: 0,
			models.OccupancyOccupied:  0,
			models.OccupancyCleaning:  0,
		},
	}
	for i := range buildings {
		report.TotalFloorCount += len(buildings[i].FloorList())
	}
	for i := range rooms {
		if rooms[i].OperationalStatus == models.OperationalPrivileged {
			report.TotalRoomCountPrivileged++
		}
		report.OccupancyBreakdown[rooms[i].OccupancyStatus]++
	}

	var profileCount int64
	if err := s.DB.Model(&models.HotelProfile{}).Where("partner_id = ?", partnerID).Count(&profileCount).Error; err != nil {
		return nil, err
	}
	report.HasProfile = profileCount > 0

	return report, nil
}
