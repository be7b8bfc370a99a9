package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-pos-backend/models"

	"gorm.io/gorm"
)

type BuildingService struct {
	DB        *gorm.DB
	Summaries *SummaryService
}

func NewBuildingService(db *gorm.DB, summaries *SummaryService) *BuildingService {
	return &BuildingService{DB: db, Summaries: summaries}
}

// BuildingInput carries the mutable building fields. The background field that
// does not match Kind is discarded, as only one of the two can be active.
type BuildingInput struct {
	Name            string `json:"name"`
	TextColor       string `json:"textColor"`
	BackgroundKind  string `json:"backgroundKind"`
	BackgroundColor string `json:"backgroundColor"`
	BackgroundImage string `json:"backgroundImage"`
}

func (in *BuildingInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || in.TextColor == "" || in.BackgroundKind == "" {
		return validationf("name, textColor and backgroundKind are required")
	}
	if in.BackgroundKind != models.BackgroundKindColor && in.BackgroundKind != models.BackgroundKindImage {
		return validationf("backgroundKind must be %q or %q",
			models.BackgroundKindColor, models.BackgroundKindImage)
	}
	return nil
}

func (in *BuildingInput) apply(b *models.Building) {
	b.Name = strings.TrimSpace(in.Name)
	b.TextColor = in.TextColor
	b.BackgroundKind = in.BackgroundKind
	b.BackgroundColor = ""
	b.BackgroundImage = ""
	switch in.BackgroundKind {
	case models.BackgroundKindColor:
		b.BackgroundColor = in.BackgroundColor
	case models.BackgroundKindImage:
		b.BackgroundImage = in.BackgroundImage
	}
}

func (s *BuildingService) Create(partnerID uint, in BuildingInput) (*models.Building, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	summary, err := s.Summaries.EnsureSummary(partnerID)
	if err != nil {
		return nil, err
	}

	building := models.Building{
		PartnerID: partnerID,
		SummaryID: summary.ID,
	}
	in.apply(&building)
	if err := building.SetFloors(nil); err != nil {
		return nil, err
	}
	if err := s.DB.Create(&building).Error; err != nil {
		return nil, err
	}

	s.Summaries.Refresh(partnerID)
	return &building, nil
}

func (s *BuildingService) GetAll(partnerID uint) ([]models.Building, error) {
	var buildings []models.Building
	err := s.DB.Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&buildings).Error
	return buildings, err
}

func (s *BuildingService) GetByID(partnerID, id uint) (*models.Building, error) {
	var building models.Building
	err := s.DB.Where("id = ? AND partner_id = ?", id, partnerID).First(&building).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &building, nil
}

func (s *BuildingService) Update(partnerID, id uint, in BuildingInput) (*models.Building, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	building, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}

	in.apply(building)
	if err := s.DB.Save(building).Error; err != nil {
		return nil, err
	}

	s.Summaries.Refresh(partnerID)
	return building, nil
}

// Delete removes the building only. Rooms are not cascaded; the following
// recomputation reflects whatever remains.
func (s *BuildingService) Delete(partnerID, id uint) (*models.Building, error) {
	building, err := s.GetByID(partnerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(building).Error; err != nil {
		return nil, err
	}

	s.Summaries.Refresh(partnerID)
	return building, nil
}

// AddFloor appends a floor with a name not yet present on the building.
func (s *BuildingService) AddFloor(partnerID, buildingID uint, name, description string) (*models.Building, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("floor name is required")
	}

	building, err := s.GetByID(partnerID, buildingID)
	if err != nil {
		return nil, err
	}
	if err := s.Summaries.AttachBuilding(building); err != nil {
		return nil, err
	}

	floors := building.FloorList()
	for _, floor := range floors {
		if floor.Name == name {
			return nil, &ConflictError{Message: fmt.Sprintf("floor %q already exists in this building", name)}
		}
	}

	floors = append(floors, models.Floor{Name: name, Description: description})
	if err := building.SetFloors(floors); err != nil {
		return nil, err
	}
	if err := s.DB.Save(building).Error; err != nil {
		return nil, err
	}

	s.Summaries.Refresh(partnerID)
	return building, nil
}

// RemoveFloor drops a floor once no room references it. A referenced floor is
// rejected with the number of blocking rooms.
func (s *BuildingService) RemoveFloor(partnerID, buildingID uint, name string) (*models.Building, error) {
	building, err := s.GetByID(partnerID, buildingID)
	if err != nil {
		return nil, err
	}
	if err := s.Summaries.AttachBuilding(building); err != nil {
		return nil, err
	}

	var roomCount int64
	err = s.DB.Model(&models.Room{}).
		Where("building_id = ? AND floor = ? AND partner_id = ?", buildingID, name, partnerID).
		Count(&roomCount).Error
	if err != nil {
		return nil, err
	}
	if roomCount > 0 {
		return nil, &ConflictError{
			Message: fmt.Sprintf("cannot remove floor %q: %d rooms on it", name, roomCount),
			Count:   int(roomCount),
		}
	}

	floors := building.FloorList()
	kept := make([]models.Floor, 0, len(floors))
	for _, floor := range floors {
		if floor.Name != name {
			kept = append(kept, floor)
		}
	}
	if len(kept) == len(floors) {
		return nil, ErrNotFound
	}
	if err := building.SetFloors(kept); err != nil {
		return nil, err
	}
	if err := s.DB.Save(building).Error; err != nil {
		return nil, err
	}

	s.Summaries.Refresh(partnerID)
	return building, nil
}

// RenameFloor renames a floor and fans the new name out to every room that
// carries the old denormalized name under this building.
func (s *BuildingService) RenameFloor(partnerID, buildingID uint, oldName, newName string) (*models.Building, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, validationf("new floor name is required")
	}

	building, err := s.GetByID(partnerID, buildingID)
	if err != nil {
		return nil, err
	}
	if err := s.Summaries.AttachBuilding(building); err != nil {
		return nil, err
	}

	floors := building.FloorList()
	index := -1
	for i, floor := range floors {
		if floor.Name == oldName {
			index = i
		}
		if floor.Name == newName {
			return nil, &ConflictError{Message: fmt.Sprintf("floor %q already exists in this building", newName)}
		}
	}
	if index == -1 {
		return nil, ErrNotFound
	}

	floors[index].Name = newName
	if err := building.SetFloors(floors); err != nil {
		return nil, err
	}
	if err := s.DB.Save(building).Error; err != nil {
		return nil, err
	}

	err = s.DB.Model(&models.Room{}).
		Where("building_id = ? AND floor = ? AND partner_id = ?", buildingID, oldName, partnerID).
		Update("floor", newName).Error
	if err != nil {
		return nil, err
	}

	s.Summaries.Refresh(partnerID)
	return building, nil
}

func (s *BuildingService) Floors(partnerID, buildingID uint) ([]models.Floor, error) {
	building, err := s.GetByID(partnerID, buildingID)
	if err != nil {
		return nil, err
	}
	floors := building.FloorList()
	if floors == nil {
		floors = []models.Floor{}
	}
	return floors, nil
}
