package services

import (
	"encoding/json"
	"errors"

	"hotel-pos-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomService struct {
	DB        *gorm.DB
	Summaries *SummaryService
}

func NewRoomService(db *gorm.DB, summaries *SummaryService) *RoomService {
	return &RoomService{DB: db, Summaries: summaries}
}

// RoomInput carries the client-settable room fields. The inclusion flags
// default to false when omitted, matching how the upstream form fields bind.
type RoomInput struct {
	RoomNumber            string   `json:"roomNumber"`
	Price                 float64  `json:"price"`
	ServiceChargeIncluded bool     `json:"isServiceCharge"`
	VatIncluded           bool     `json:"isVat"`
	MaxOccupancy          int      `json:"stayPeople"`
	Detail                string   `json:"roomDetail"`
	AirCondition          string   `json:"air"`
	Floor                 string   `json:"floor"`
	BuildingID            uint     `json:"buildingId"`
	RoomTypeID            *uint    `json:"roomTypeId"`
	TagIDs                []uint   `json:"tagIds"`
	Images                []string `json:"images"`
}

func (s *RoomService) profile(partnerID uint) (*models.HotelProfile, error) {
	var profile models.HotelProfile
	err := s.DB.Where("partner_id = ?", partnerID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *RoomService) loadTags(partnerID uint, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	var tags []models.Tag
	err := s.DB.Where("partner_id = ? AND id IN ?", partnerID, ids).Find(&tags).Error
	return tags, err
}

func imageJSON(images []string) (datatypes.JSON, error) {
	if images == nil {
		images = []string{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (s *RoomService) Create(partnerID uint, in RoomInput) (*models.Room, error) {
	if in.RoomTypeID == nil {
		return nil, validationf("roomTypeId is required")
	}
	if in.BuildingID == 0 {
		return nil, validationf("buildingId is required")
	}
	if in.Floor == "" {
		return nil, validationf("floor is required")
	}

	var roomType models.RoomType
	if err := s.DB.First(&roomType, *in.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("roomTypeId %d does not exist", *in.RoomTypeID)
		}
		return nil, err
	}

	summary, err := s.Summaries.EnsureSummary(partnerID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profile(partnerID)
	if err != nil {
		return nil, err
	}
	pricing := ComputePricing(in.Price, in.ServiceChargeIncluded, in.VatIncluded, profile)

	tags, err := s.loadTags(partnerID, in.TagIDs)
	if err != nil {
		return nil, err
	}
	images, err := imageJSON(in.Images)
	if err != nil {
		return nil, err
	}

	room := models.Room{
		PartnerID:             partnerID,
		SummaryID:             summary.ID,
		BuildingID:            in.BuildingID,
		RoomNumber:            in.RoomNumber,
		Floor:                 in.Floor,
		ListedPrice:           in.Price,
		BasePrice:             pricing.BasePrice,
		ServiceChargeAmount:   pricing.ServiceChargeAmount,
		VatAmount:             pricing.VatAmount,
		ServiceChargeIncluded: in.ServiceChargeIncluded,
		VatIncluded:           in.VatIncluded,
		MaxOccupancy:          in.MaxOccupancy,
		Detail:                in.Detail,
		AirCondition:          in.AirCondition,
		OperationalStatus:     models.OperationalNormal,
		OccupancyStatus:       models.OccupancyAvailable,
		PromotionStatus:       models.PromotionClosed,
		RoomTypeID:            in.RoomTypeID,
		Images:                images,
		Tags:                  tags,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, err
	}

	s.bumpFloorRoomCount(partnerID, in.BuildingID, in.Floor)
	s.Summaries.Refresh(partnerID)
	return &room, nil
}

// bumpFloorRoomCount increments the per-floor room counter embedded on the
// building. Best effort: the summary counters, not this display field, are
// the consistency-critical numbers.
func (s *RoomService) bumpFloorRoomCount(partnerID, buildingID uint, floorName string) {
	var building models.Building
	err := s.DB.Where("id = ? AND partner_id = ?", buildingID, partnerID).First(&building).Error
	if err != nil {
		return
	}
	if err := s.Summaries.AttachBuilding(&building); err != nil {
		return
	}
	floors := building.FloorList()
	for i := range floors {
		if floors[i].Name == floorName {
			floors[i].RoomCount++
			if err := building.SetFloors(floors); err == nil {
				s.DB.Save(&building)
			}
			return
		}
	}
}

func (s *RoomService) GetAll(partnerID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("partner_id = ?", partnerID).
		Preload("RoomType").
		Preload("Tags").
		Preload("Building").
		Order("created_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(partnerID, id uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.Where("id = ? AND partner_id = ?", id, partnerID).
		Preload("RoomType").
		Preload("Tags").
		Preload("Building").
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) GetByBuildingAndFloor(partnerID, buildingID uint, floor string) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("partner_id = ? AND building_id = ? AND floor = ?", partnerID, buildingID, floor).
		Preload("RoomType").
		Preload("Tags").
		Preload("Building").
		Find(&rooms).Error
	return rooms, err
}

// Update edits a room and rederives the pricing breakdown from the submitted
// price and inclusion flags.
func (s *RoomService) Update(partnerID, id uint, in RoomInput) (*models.Room, error) {
	room, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}

	listed := room.ListedPrice
	if in.Price != 0 {
		listed = in.Price
	}

	profile, err := s.profile(partnerID)
	if err != nil {
		return nil, err
	}
	pricing := ComputePricing(listed, in.ServiceChargeIncluded, in.VatIncluded, profile)

	room.ListedPrice = listed
	room.BasePrice = pricing.BasePrice
	room.ServiceChargeAmount = pricing.ServiceChargeAmount
	room.VatAmount = pricing.VatAmount
	room.ServiceChargeIncluded = in.ServiceChargeIncluded
	room.VatIncluded = in.VatIncluded

	if in.RoomNumber != "" {
		room.RoomNumber = in.RoomNumber
	}
	if in.MaxOccupancy != 0 {
		room.MaxOccupancy = in.MaxOccupancy
	}
	if in.Detail != "" {
		room.Detail = in.Detail
	}
	if in.AirCondition != "" {
		room.AirCondition = in.AirCondition
	}
	if in.Floor != "" {
		room.Floor = in.Floor
	}
	if in.RoomTypeID != nil {
		room.RoomTypeID = in.RoomTypeID
	}
	if in.Images != nil {
		images, err := imageJSON(in.Images)
		if err != nil {
			return nil, err
		}
		room.Images = images
	}

	if err := s.DB.Omit(clause.Associations).Save(room).Error; err != nil {
		return nil, err
	}

	if in.TagIDs != nil {
		tags, err := s.loadTags(partnerID, in.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.DB.Model(room).Association("Tags").Replace(tags); err != nil {
			return nil, err
		}
		room.Tags = tags
	}

	s.Summaries.Refresh(partnerID)
	return room, nil
}

// UpdateOperationalStatus moves a room between sales channels. A transition
// into the privileged channel is guarded by the per-partner quota; re-setting
// an already privileged room skips the check. The count-then-set is not
// transactional, so concurrent requests can transiently overshoot the quota.
func (s *RoomService) UpdateOperationalStatus(partnerID, id uint, status string) (*models.Room, error) {
	if status != models.OperationalPrivileged && status != models.OperationalNormal {
		return nil, validationf("invalid status %q", status)
	}

	room, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}

	if status == models.OperationalPrivileged && room.OperationalStatus != models.OperationalPrivileged {
		count, err := s.PrivilegedCount(partnerID)
		if err != nil {
			return nil, err
		}
		if count >= models.PrivilegedRoomQuota {
			return nil, &QuotaExceededError{Current: count, Max: models.PrivilegedRoomQuota}
		}
	}

	room.OperationalStatus = status
	if err := s.DB.Omit(clause.Associations).Save(room).Error; err != nil {
		return nil, err
	}

	s.Summaries.Refresh(partnerID)
	return room, nil
}

func (s *RoomService) UpdateOccupancyStatus(partnerID, id uint, status string) (*models.Room, error) {
	allowed := false
	for _, candidate := range models.AllowedOccupancyStatuses() {
		if status == candidate {
			allowed = true
		}
	}
	if !allowed {
		return nil, validationf("invalid occupancy status %q", status)
	}

	room, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}
	room.OccupancyStatus = status
	if err := s.DB.Omit(clause.Associations).Save(room).Error; err != nil {
		return nil, err
	}

	s.Summaries.Refresh(partnerID)
	return room, nil
}

func (s *RoomService) UpdatePromotionStatus(partnerID, id uint, status string) (*models.Room, error) {
	if status != models.PromotionOpen && status != models.PromotionClosed {
		return nil, validationf("invalid promotion status %q", status)
	}

	room, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}
	room.PromotionStatus = status
	if err := s.DB.Omit(clause.Associations).Save(room).Error; err != nil {
		return nil, err
	}

	s.Summaries.Refresh(partnerID)
	return room, nil
}

func (s *RoomService) Delete(partnerID, id uint) (*models.Room, error) {
	room, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(room).Error; err != nil {
		return nil, err
	}

	s.Summaries.Refresh(partnerID)
	return room, nil
}

func (s *RoomService) DeleteAll(partnerID uint) (int64, error) {
	result := s.DB.Where("partner_id = ?", partnerID).Delete(&models.Room{})
	if result.Error != nil {
		return 0, result.Error
	}
	s.Summaries.Refresh(partnerID)
	return result.RowsAffected, nil
}

func (s *RoomService) RoomTypes() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Find(&types).Error
	return types, err
}

func (s *RoomService) PrivilegedCount(partnerID uint) (int, error) {
	var count int64
	err := s.DB.Model(&models.Room{}).
		Where("partner_id = ? AND operational_status = ?", partnerID, models.OperationalPrivileged).
		Count(&count).Error
	return int(count), err
}

type QuotaStatus struct {
	CurrentCount int  `json:"currentCount"`
	MaxQuota     int  `json:"maxQuota"`
	Remaining    int  `json:"remaining"`
	IsFull       bool `json:"isFull"`
}

func (s *RoomService) QuotaStatus(partnerID uint) (*QuotaStatus, error) {
	count, err := s.PrivilegedCount(partnerID)
	if err != nil {
		return nil, err
	}
	remaining := models.PrivilegedRoomQuota - count
	if remaining < 0 {
		remaining = 0
	}
	return &QuotaStatus{
		CurrentCount: count,
		MaxQuota:     models.PrivilegedRoomQuota,
		Remaining:    remaining,
		IsFull:       count >= models.PrivilegedRoomQuota,
	}, nil
}
