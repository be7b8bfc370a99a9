package controllers

import (
	"net/http"

	"hotel-pos-backend/services"
	"hotel-pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type BuildingController struct {
	Buildings *services.BuildingService
}

func NewBuildingController(svc *services.BuildingService) *BuildingController {
	return &BuildingController{Buildings: svc}
}

// POST /api/pos/buildings
func (c *BuildingController) CreateBuilding(ctx *gin.Context) {
	var in services.BuildingInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	building, err := c.Buildings.Create(partnerID(ctx), in)
	if err != nil {
		respondServiceError(ctx, err, "failed to create building")
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, "building created", building)
}

// GET /api/pos/buildings
func (c *BuildingController) GetBuildings(ctx *gin.Context) {
	buildings, err := c.Buildings.GetAll(partnerID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "failed to load buildings")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "buildings loaded", buildings)
}

// GET /api/pos/buildings/:id
func (c *BuildingController) GetBuildingByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	building, err := c.Buildings.GetByID(partnerID(ctx), id)
	if err != nil {
		respondServiceError(ctx, err, "building")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "building loaded", building)
}

// PUT /api/pos/buildings/:id
func (c *BuildingController) UpdateBuilding(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var in services.BuildingInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	building, err := c.Buildings.Update(partnerID(ctx), id, in)
	if err != nil {
		respondServiceError(ctx, err, "failed to update building")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "building updated", building)
}

// DELETE /api/pos/buildings/:id
func (c *BuildingController) DeleteBuilding(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	building, err := c.Buildings.Delete(partnerID(ctx), id)
	if err != nil {
		respondServiceError(ctx, err, "failed to delete building")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "building deleted", building)
}

type floorInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// POST /api/pos/buildings/:id/floors
func (c *BuildingController) AddFloor(ctx *gin.Context) {
	buildingID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var in floorInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	building, err := c.Buildings.AddFloor(partnerID(ctx), buildingID, in.Name, in.Description)
	if err != nil {
		respondServiceError(ctx, err, "failed to add floor")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "floor added", building)
}

// DELETE /api/pos/buildings/:id/floors/:floorName
func (c *BuildingController) RemoveFloor(ctx *gin.Context) {
	buildingID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	building, err := c.Buildings.RemoveFloor(partnerID(ctx), buildingID, ctx.Param("floorName"))
	if err != nil {
		respondServiceError(ctx, err, "failed to remove floor")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "floor removed", building)
}

type renameFloorInput struct {
	NewFloorName string `json:"newFloorName"`
}

// PATCH /api/pos/buildings/:id/floors/:floorName
func (c *BuildingController) RenameFloor(ctx *gin.Context) {
	buildingID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var in renameFloorInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	oldName := ctx.Param("floorName")
	_, err := c.Buildings.RenameFloor(partnerID(ctx), buildingID, oldName, in.NewFloorName)
	if err != nil {
		respondServiceError(ctx, err, "failed to rename floor")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "floor renamed", gin.H{
		"buildingId":   buildingID,
		"oldFloorName": oldName,
		"newFloorName": in.NewFloorName,
	})
}

// GET /api/pos/buildings/:id/floors
func (c *BuildingController) GetFloors(ctx *gin.Context) {
	buildingID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	floors, err := c.Buildings.Floors(partnerID(ctx), buildingID)
	if err != nil {
		respondServiceError(ctx, err, "failed to load floors")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "floors loaded", floors)
}
