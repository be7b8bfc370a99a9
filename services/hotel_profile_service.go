package services

import (
	"errors"

	"hotel-pos-backend/models"

	"gorm.io/gorm"
)

type HotelProfileService struct {
	DB        *gorm.DB
	Summaries *SummaryService
}

func NewHotelProfileService(db *gorm.DB, summaries *SummaryService) *HotelProfileService {
	return &HotelProfileService{DB: db, Summaries: summaries}
}

func (s *HotelProfileService) Get(partnerID uint) (*models.HotelProfile, error) {
	var profile models.HotelProfile
	err := s.DB.Where("partner_id = ?", partnerID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateOrUpdate upserts the partner's single profile record. The boolean
// result reports whether a new record was created.
func (s *HotelProfileService) CreateOrUpdate(partnerID uint, in models.HotelProfile) (*models.HotelProfile, bool, error) {
	summary, err := s.Summaries.EnsureSummary(partnerID)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.Get(partnerID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	in.PartnerID = partnerID
	in.SummaryID = summary.ID

	if existing != nil {
		in.ID = existing.ID
		in.CreatedAt = existing.CreatedAt
		if err := s.DB.Save(&in).Error; err != nil {
			return nil, false, err
		}
		return &in, false, nil
	}

	in.ID = 0
	if err := s.DB.Create(&in).Error; err != nil {
		return nil, false, err
	}
	return &in, true, nil
}

func (s *HotelProfileService) UpdateByID(partnerID, id uint, patch map[string]interface{}) (*models.HotelProfile, error) {
	var profile models.HotelProfile
	err := s.DB.Where("id = ? AND partner_id = ?", id, partnerID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	patch = normalizePatch(patch, map[string]string{
		"serviceCharge": "service_charge_percent",
		"vat":           "vat_percent",
	})

	if err := s.DB.Model(&profile).Updates(patch).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *HotelProfileService) Delete(partnerID, id uint) (*models.HotelProfile, error) {
	var profile models.HotelProfile
	err := s.DB.Where("id = ? AND partner_id = ?", id, partnerID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
