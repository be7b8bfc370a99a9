package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-pos-backend/models"

	"gorm.io/gorm"
)

type TagService struct {
	DB        *gorm.DB
	Summaries *SummaryService
}

func NewTagService(db *gorm.DB, summaries *SummaryService) *TagService {
	return &TagService{DB: db, Summaries: summaries}
}

type TagInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (s *TagService) nameTaken(partnerID uint, name string, excludeID uint) (bool, error) {
	query := s.DB.Model(&models.Tag{}).Where("partner_id = ? AND name = ?", partnerID, name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *TagService) Create(partnerID uint, in TagInput) (*models.Tag, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationf("tag name is required")
	}

	taken, err := s.nameTaken(partnerID, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ConflictError{Message: fmt.Sprintf("tag %q already exists", name)}
	}

	summary, err := s.Summaries.EnsureSummary(partnerID)
	if err != nil {
		return nil, err
	}

	color := in.Color
	if color == "" {
		color = models.DefaultTagColor
	}
	tag := models.Tag{
		PartnerID:   partnerID,
		SummaryID:   summary.ID,
		Name:        name,
		Description: in.Description,
		Color:       color,
	}
	if err := s.DB.Create(&tag).Error; err != nil {
		return nil, err
	}

	s.Summaries.RefreshTagsCount(partnerID)
	return &tag, nil
}

func (s *TagService) GetAll(partnerID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.DB.Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&tags).Error
	return tags, err
}

func (s *TagService) GetByID(partnerID, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := s.DB.Where("id = ? AND partner_id = ?", id, partnerID).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) Update(partnerID, id uint, in TagInput) (*models.Tag, error) {
	tag, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name != "" && name != tag.Name {
		taken, err := s.nameTaken(partnerID, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &ConflictError{Message: fmt.Sprintf("tag %q already exists", name)}
		}
		tag.Name = name
	}
	if in.Description != "" {
		tag.Description = in.Description
	}
	if in.Color != "" {
		tag.Color = in.Color
	}

	if err := s.DB.Save(tag).Error; err != nil {
		return nil, err
	}

	s.Summaries.RefreshTagsCount(partnerID)
	return tag, nil
}

func (s *TagService) Delete(partnerID, id uint) (*models.Tag, error) {
	tag, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(tag).Error; err != nil {
		return nil, err
	}

	s.Summaries.RefreshTagsCount(partnerID)
	return tag, nil
}

func (s *TagService) DeleteAll(partnerID uint) (int64, error) {
	result := s.DB.Where("partner_id = ?", partnerID).Delete(&models.Tag{})
	if result.Error != nil {
		return 0, result.Error
	}
	s.Summaries.RefreshTagsCount(partnerID)
	return result.RowsAffected, nil
}
