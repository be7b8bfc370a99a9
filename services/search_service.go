package services

import (
	"log"
	"math"
	"time"

	"hotel-pos-backend/models"

	"gorm.io/gorm"
)

// SearchService serves the read-only room reports: availability over a date
// range plus the checked-out and cleaning listings, all grouped by building
// and floor.
type SearchService struct {
	DB        *gorm.DB
	Summaries *SummaryService
}

func NewSearchService(db *gorm.DB, summaries *SummaryService) *SearchService {
	return &SearchService{DB: db, Summaries: summaries}
}

type SearchCriteria struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Duration  int       `json:"duration"`
}

type FloorGroup struct {
	FloorName string        `json:"floorName"`
	Rooms     []models.Room `json:"rooms"`
}

type BuildingGroup struct {
	BuildingID   uint         `json:"buildingId"`
	BuildingName string       `json:"buildingName"`
	Floors       []FloorGroup `json:"floors"`
}

type SearchResult struct {
	Criteria SearchCriteria  `json:"searchCriteria"`
	Totals   map[string]int  `json:"summary"`
	Rooms    []BuildingGroup `json:"rooms"`
}

func durationDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return validationf("startDate and endDate are required")
	}
	if !start.Before(end) {
		return validationf("startDate must be before endDate")
	}
	return nil
}

// groupRooms buckets rooms by their building, then by floor name, preserving
// first-seen order.
func groupRooms(rooms []models.Room) []BuildingGroup {
	groups := []BuildingGroup{}
	byBuilding := map[uint]int{}

	for _, room := range rooms {
		index, ok := byBuilding[room.BuildingID]
		if !ok {
			index = len(groups)
			byBuilding[room.BuildingID] = index
			groups = append(groups, BuildingGroup{
				BuildingID:   room.BuildingID,
				BuildingName: room.Building.Name,
			})
		}

		placed := false
		for f := range groups[index].Floors {
			if groups[index].Floors[f].FloorName == room.Floor {
				groups[index].Floors[f].Rooms = append(groups[index].Floors[f].Rooms, room)
				placed = true
				break
			}
		}
		if !placed {
			groups[index].Floors = append(groups[index].Floors, FloorGroup{
				FloorName: room.Floor,
				Rooms:     []models.Room{room},
			})
		}
	}
	return groups
}

// SearchAvailable finds rooms that are marked available and have no check-in
// order inside the window, and remembers the searched range on the summary.
func (s *SearchService) SearchAvailable(partnerID uint, start, end time.Time) (*SearchResult, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	duration := durationDays(start, end)

	var rooms []models.Room
	err := s.DB.Where("partner_id = ?", partnerID).
		Preload("RoomType").
		Preload("Tags").
		Preload("Building").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	var orders []models.CheckInOrder
	err = s.DB.Where("partner_id = ? AND order_date >= ? AND order_date <= ?", partnerID, start, end).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	booked := map[uint]bool{}
	for _, order := range orders {
		booked[order.RoomID] = true
	}

	available := []models.Room{}
	for _, room := range rooms {
		if room.OccupancyStatus == models.OccupancyAvailable && !booked[room.ID] {
			available = append(available, room)
		}
	}

	s.recordSearch(partnerID, start, end, duration)

	return &SearchResult{
		Criteria: SearchCriteria{StartDate: start, EndDate: end, Duration: duration},
		Totals: map[string]int{
			"totalRooms":     len(rooms),
			"availableRooms": len(available),
			"bookedRooms":    len(booked),
		},
		Rooms: groupRooms(available),
	}, nil
}

// SearchByOccupancy serves the checked-out and cleaning reports. Same date
// validation and grouping as the availability search, but no booking lookup
// and no search bookkeeping.
func (s *SearchService) SearchByOccupancy(partnerID uint, occupancy string, start, end time.Time) (*SearchResult, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	duration := durationDays(start, end)

	var rooms []models.Room
	err := s.DB.Where("partner_id = ? AND occupancy_status = ?", partnerID, occupancy).
		Preload("RoomType").
		Preload("Tags").
		Preload("Building").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Criteria: SearchCriteria{StartDate: start, EndDate: end, Duration: duration},
		Totals:   map[string]int{"matchedRooms": len(rooms)},
		Rooms:    groupRooms(rooms),
	}, nil
}

// recordSearch stores the searched window on the summary. Best effort: a
// missing summary or a write failure only logs.
func (s *SearchService) recordSearch(partnerID uint, start, end time.Time, duration int) {
	err := s.DB.Model(&models.Summary{}).
		Where("partner_id = ?", partnerID).
		Updates(map[string]interface{}{
			"search_start":    start,
			"search_end":      end,
			"search_duration": duration,
		}).Error
	if err != nil {
		log.Printf("recording search range failed for partner %d: %v", partnerID, err)
	}
}

// ClearSearch resets the remembered search window. Counters are untouched.
func (s *SearchService) ClearSearch(partnerID uint) error {
	return s.DB.Model(&models.Summary{}).
		Where("partner_id = ?", partnerID).
		Updates(map[string]interface{}{
			"search_start":    nil,
			"search_end":      nil,
			"search_duration": 0,
		}).Error
}
