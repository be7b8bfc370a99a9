package controllers

import (
	"net/http"
	"time"

	"hotel-pos-backend/models"
	"hotel-pos-backend/services"
	"hotel-pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	Searches *services.SearchService
}

func NewSearchController(svc *services.SearchService) *SearchController {
	return &SearchController{Searches: svc}
}

type dateRangeInput struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// bindRange reads and parses the date-range body shared by all search
// endpoints.
func bindRange(ctx *gin.Context) (start, end time.Time, ok bool) {
	var in dateRangeInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if in.StartDate == "" || in.EndDate == "" {
		utils.JSONError(ctx, http.StatusBadRequest, "startDate and endDate are required")
		return
	}
	var err error
	start, err = parseDate(in.StartDate)
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err = parseDate(in.EndDate)
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid endDate")
		return
	}
	return start, end, true
}

// POST /api/pos/search-by-date
func (c *SearchController) SearchAvailable(ctx *gin.Context) {
	start, end, ok := bindRange(ctx)
	if !ok {
		return
	}

	result, err := c.Searches.SearchAvailable(partnerID(ctx), start, end)
	if err != nil {
		respondServiceError(ctx, err, "failed to search rooms")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "available rooms found", result)
}

// POST /api/pos/search-checked-out
func (c *SearchController) SearchCheckedOut(ctx *gin.Context) {
	c.searchByOccupancy(ctx, models.OccupancyOccupied, "checked-out rooms found")
}

// POST /api/pos/search-cleaning
func (c *SearchController) SearchCleaning(ctx *gin.Context) {
	c.searchByOccupancy(ctx, models.OccupancyCleaning, "cleaning rooms found")
}

func (c *SearchController) searchByOccupancy(ctx *gin.Context, occupancy, message string) {
	start, end, ok := bindRange(ctx)
	if !ok {
		return
	}

	result, err := c.Searches.SearchByOccupancy(partnerID(ctx), occupancy, start, end)
	if err != nil {
		respondServiceError(ctx, err, "failed to search rooms")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, message, result)
}

// DELETE /api/pos/search
func (c *SearchController) ClearSearch(ctx *gin.Context) {
	if err := c.Searches.ClearSearch(partnerID(ctx)); err != nil {
		respondServiceError(ctx, err, "failed to clear search")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "room search cleared", nil)
}
