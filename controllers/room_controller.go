package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hotel-pos-backend/models"
	"hotel-pos-backend/services"
	"hotel-pos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const roomImageDir = "./uploads/room"
const maxRoomImages = 10

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Rooms: svc}
}

// bindRoomInput accepts either a JSON body or a multipart form with image
// files under "imgrooms".
func (c *RoomController) bindRoomInput(ctx *gin.Context) (services.RoomInput, error) {
	var in services.RoomInput

	if !strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		err := ctx.ShouldBindJSON(&in)
		return in, err
	}

	in.RoomNumber = ctx.PostForm("roomNumber")
	in.Price, _ = strconv.ParseFloat(ctx.PostForm("price"), 64)
	in.ServiceChargeIncluded = ctx.PostForm("isServiceCharge") == "true"
	in.VatIncluded = ctx.PostForm("isVat") == "true"
	in.MaxOccupancy, _ = strconv.Atoi(ctx.PostForm("stayPeople"))
	in.Detail = ctx.PostForm("roomDetail")
	in.AirCondition = ctx.PostForm("air")
	in.Floor = ctx.PostForm("floor")

	if raw := ctx.PostForm("buildingId"); raw != "" {
		id, _ := strconv.ParseUint(raw, 10, 32)
		in.BuildingID = uint(id)
	}
	if raw := ctx.PostForm("roomTypeId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err == nil {
			typed := uint(id)
			in.RoomTypeID = &typed
		}
	}
	for _, raw := range ctx.PostFormArray("tagIds") {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err == nil {
			in.TagIDs = append(in.TagIDs, uint(id))
		}
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return in, err
	}
	files := form.File["imgrooms"]
	if len(files) > maxRoomImages {
		return in, fmt.Errorf("at most %d images per room", maxRoomImages)
	}
	if len(files) > 0 {
		names, err := saveRoomImages(ctx, files)
		if err != nil {
			return in, err
		}
		in.Images = names
	}
	return in, nil
}

func saveRoomImages(ctx *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	if err := os.MkdirAll(roomImageDir, 0o755); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, file := range files {
		name := uuid.NewString() + filepath.Ext(file.Filename)
		if err := ctx.SaveUploadedFile(file, filepath.Join(roomImageDir, name)); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// POST /api/pos/rooms
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	in, err := c.bindRoomInput(ctx)
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := c.Rooms.Create(partnerID(ctx), in)
	if err != nil {
		respondServiceError(ctx, err, "failed to create room")
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, "room created", room)
}

// GET /api/pos/rooms
func (c *RoomController) GetRooms(ctx *gin.Context) {
	rooms, err := c.Rooms.GetAll(partnerID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "failed to load rooms")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "rooms loaded", rooms)
}

// GET /api/pos/rooms/:id
func (c *RoomController) GetRoomByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	room, err := c.Rooms.GetByID(partnerID(ctx), id)
	if err != nil {
		respondServiceError(ctx, err, "room")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "room loaded", room)
}

// GET /api/pos/rooms/building/:buildingId/floor/:floor
func (c *RoomController) GetRoomsByBuildingAndFloor(ctx *gin.Context) {
	buildingID, ok := parseID(ctx, "buildingId")
	if !ok {
		return
	}
	floor := ctx.Param("floor")
	rooms, err := c.Rooms.GetByBuildingAndFloor(partnerID(ctx), buildingID, floor)
	if err != nil {
		respondServiceError(ctx, err, "failed to load rooms")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK,
		fmt.Sprintf("rooms on building %d floor %s loaded", buildingID, floor), rooms)
}

// PUT /api/pos/rooms/:id
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	in, err := c.bindRoomInput(ctx)
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := c.Rooms.Update(partnerID(ctx), id, in)
	if err != nil {
		respondServiceError(ctx, err, "failed to update room")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "room updated", room)
}

type statusInput struct {
	Status string `json:"status"`
}

// PATCH /api/pos/rooms/:id/status
func (c *RoomController) UpdateOperationalStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var in statusInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := c.Rooms.UpdateOperationalStatus(partnerID(ctx), id, in.Status)
	if err != nil {
		respondServiceError(ctx, err, "failed to update room status")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "room status updated", room)
}

type occupancyInput struct {
	StatusRoom string `json:"statusRoom"`
}

// PATCH /api/pos/rooms/:id/status-room
func (c *RoomController) UpdateOccupancyStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var in occupancyInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := c.Rooms.UpdateOccupancyStatus(partnerID(ctx), id, in.StatusRoom)
	if err != nil {
		respondServiceError(ctx, err, "failed to update occupancy status")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "occupancy status updated", room)
}

type promotionInput struct {
	StatusPromotion string `json:"statusPromotion"`
}

// PATCH /api/pos/rooms/:id/status-promotion
func (c *RoomController) UpdatePromotionStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var in promotionInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := c.Rooms.UpdatePromotionStatus(partnerID(ctx), id, in.StatusPromotion)
	if err != nil {
		respondServiceError(ctx, err, "failed to update promotion status")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "promotion status updated", room)
}

// DELETE /api/pos/rooms/:id
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	room, err := c.Rooms.Delete(partnerID(ctx), id)
	if err != nil {
		respondServiceError(ctx, err, "failed to delete room")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "room deleted", room)
}

// DELETE /api/pos/rooms
func (c *RoomController) DeleteAllRooms(ctx *gin.Context) {
	deleted, err := c.Rooms.DeleteAll(partnerID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "failed to delete rooms")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "rooms deleted", gin.H{"deletedCount": deleted})
}

// GET /api/pos/rooms-status-options
func (c *RoomController) GetStatusOptions(ctx *gin.Context) {
	utils.JSONSuccess(ctx, http.StatusOK, "status options loaded", gin.H{
		"status":          models.AllowedOperationalStatuses(),
		"statusRoom":      models.AllowedOccupancyStatuses(),
		"statusPromotion": models.AllowedPromotionStatuses(),
	})
}

// GET /api/pos/rooms-privileged-quota
func (c *RoomController) GetPrivilegedQuota(ctx *gin.Context) {
	quota, err := c.Rooms.QuotaStatus(partnerID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "failed to load quota")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "quota loaded", quota)
}
