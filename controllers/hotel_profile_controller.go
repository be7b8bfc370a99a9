package controllers

import (
	"net/http"

	"hotel-pos-backend/models"
	"hotel-pos-backend/services"
	"hotel-pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelProfileController struct {
	Profiles *services.HotelProfileService
}

func NewHotelProfileController(svc *services.HotelProfileService) *HotelProfileController {
	return &HotelProfileController{Profiles: svc}
}

// GET /api/pos/about-hotel
func (c *HotelProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.Profiles.Get(partnerID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "hotel profile")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "hotel profile loaded", profile)
}

// POST /api/pos/about-hotel
func (c *HotelProfileController) CreateOrUpdateProfile(ctx *gin.Context) {
	var in models.HotelProfile
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	profile, created, err := c.Profiles.CreateOrUpdate(partnerID(ctx), in)
	if err != nil {
		respondServiceError(ctx, err, "failed to save hotel profile")
		return
	}
	if created {
		utils.JSONSuccess(ctx, http.StatusCreated, "hotel profile created", profile)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "hotel profile updated", profile)
}

// PUT /api/pos/about-hotel/:id
func (c *HotelProfileController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	profile, err := c.Profiles.UpdateByID(partnerID(ctx), id, patch)
	if err != nil {
		respondServiceError(ctx, err, "failed to update hotel profile")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "hotel profile updated", profile)
}

// DELETE /api/pos/about-hotel/:id
func (c *HotelProfileController) DeleteProfile(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	profile, err := c.Profiles.Delete(partnerID(ctx), id)
	if err != nil {
		respondServiceError(ctx, err, "failed to delete hotel profile")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "hotel profile deleted", profile)
}
