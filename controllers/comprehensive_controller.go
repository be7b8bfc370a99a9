package controllers

import (
	"errors"
	"net/http"

	"hotel-pos-backend/services"
	"hotel-pos-backend/utils"

	"github.com/gin-gonic/gin"
)

// ComprehensiveController serves the single everything-for-this-partner read
// used by the dashboard.
type ComprehensiveController struct {
	Summaries *services.SummaryService
	Buildings *services.BuildingService
	Rooms     *services.RoomService
	Tags      *services.TagService
	Profiles  *services.HotelProfileService
}

func NewComprehensiveController(
	summaries *services.SummaryService,
	buildings *services.BuildingService,
	rooms *services.RoomService,
	tags *services.TagService,
	profiles *services.HotelProfileService,
) *ComprehensiveController {
	return &ComprehensiveController{
		Summaries: summaries,
		Buildings: buildings,
		Rooms:     rooms,
		Tags:      tags,
		Profiles:  profiles,
	}
}

// GET /api/pos/comprehensive-data
func (c *ComprehensiveController) GetComprehensiveData(ctx *gin.Context) {
	partner := partnerID(ctx)

	summary, err := c.Summaries.GetByPartner(partner)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		respondServiceError(ctx, err, "failed to load data")
		return
	}

	buildings, err := c.Buildings.GetAll(partner)
	if err != nil {
		respondServiceError(ctx, err, "failed to load data")
		return
	}
	rooms, err := c.Rooms.GetAll(partner)
	if err != nil {
		respondServiceError(ctx, err, "failed to load data")
		return
	}
	tags, err := c.Tags.GetAll(partner)
	if err != nil {
		respondServiceError(ctx, err, "failed to load data")
		return
	}

	profile, err := c.Profiles.Get(partner)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		respondServiceError(ctx, err, "failed to load data")
		return
	}

	roomTypes, err := c.Rooms.RoomTypes()
	if err != nil {
		respondServiceError(ctx, err, "failed to load data")
		return
	}

	utils.JSONSuccess(ctx, http.StatusOK, "comprehensive data loaded", gin.H{
		"pos":        summary,
		"buildings":  buildings,
		"rooms":      rooms,
		"tags":       tags,
		"aboutHotel": profile,
		"roomTypes":  roomTypes,
	})
}
