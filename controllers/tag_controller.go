package controllers

import (
	"net/http"

	"hotel-pos-backend/services"
	"hotel-pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type TagController struct {
	Tags *services.TagService
}

func NewTagController(svc *services.TagService) *TagController {
	return &TagController{Tags: svc}
}

// POST /api/pos/tags
func (c *TagController) CreateTag(ctx *gin.Context) {
	var in services.TagInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	tag, err := c.Tags.Create(partnerID(ctx), in)
	if err != nil {
		respondServiceError(ctx, err, "failed to create tag")
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, "tag created", tag)
}

// GET /api/pos/tags
func (c *TagController) GetTags(ctx *gin.Context) {
	tags, err := c.Tags.GetAll(partnerID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "failed to load tags")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "tags loaded", tags)
}

// GET /api/pos/tags/:id
func (c *TagController) GetTagByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	tag, err := c.Tags.GetByID(partnerID(ctx), id)
	if err != nil {
		respondServiceError(ctx, err, "tag")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "tag loaded", tag)
}

// PUT /api/pos/tags/:id
func (c *TagController) UpdateTag(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var in services.TagInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	tag, err := c.Tags.Update(partnerID(ctx), id, in)
	if err != nil {
		respondServiceError(ctx, err, "failed to update tag")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "tag updated", tag)
}

// DELETE /api/pos/tags/:id
func (c *TagController) DeleteTag(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	tag, err := c.Tags.Delete(partnerID(ctx), id)
	if err != nil {
		respondServiceError(ctx, err, "failed to delete tag")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "tag deleted", tag)
}

// DELETE /api/pos/tags
func (c *TagController) DeleteAllTags(ctx *gin.Context) {
	deleted, err := c.Tags.DeleteAll(partnerID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "failed to delete tags")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "tags deleted", gin.H{"deletedCount": deleted})
}
