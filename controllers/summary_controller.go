package controllers

import (
	"net/http"

	"hotel-pos-backend/models"
	"hotel-pos-backend/services"
	"hotel-pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	Summaries *services.SummaryService
}

func NewSummaryController(svc *services.SummaryService) *SummaryController {
	return &SummaryController{Summaries: svc}
}

// POST /api/pos/pos
func (c *SummaryController) CreateSummary(ctx *gin.Context) {
	var in models.Summary
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := c.Summaries.CreateExplicit(partnerID(ctx), &in); err != nil {
		respondServiceError(ctx, err, "failed to create summary")
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, "summary created", in)
}

// GET /api/pos/pos
func (c *SummaryController) GetSummaries(ctx *gin.Context) {
	summaries, err := c.Summaries.ListAll(partnerID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "failed to load summaries")
		return
	}
	for i := range summaries {
		if err := c.Summaries.Enrich(&summaries[i]); err != nil {
			respondServiceError(ctx, err, "failed to load summaries")
			return
		}
	}
	utils.JSONSuccess(ctx, http.StatusOK, "summaries loaded", summaries)
}

// GET /api/pos/pos/:id
func (c *SummaryController) GetSummaryByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	summary, err := c.Summaries.GetByID(partnerID(ctx), id)
	if err != nil {
		respondServiceError(ctx, err, "summary")
		return
	}
	if err := c.Summaries.Enrich(summary); err != nil {
		respondServiceError(ctx, err, "failed to load summary")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "summary loaded", summary)
}

// GET /api/pos/pos/summary
func (c *SummaryController) GetReport(ctx *gin.Context) {
	report, err := c.Summaries.BuildReport(partnerID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "failed to build summary report")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "summary report built", report)
}

// PUT /api/pos/pos/:id
func (c *SummaryController) UpdateSummary(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	summary, err := c.Summaries.Update(partnerID(ctx), id, patch)
	if err != nil {
		respondServiceError(ctx, err, "failed to update summary")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "summary updated", summary)
}

// DELETE /api/pos/pos/:id
func (c *SummaryController) DeleteSummary(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	summary, err := c.Summaries.Delete(partnerID(ctx), id)
	if err != nil {
		respondServiceError(ctx, err, "failed to delete summary")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "summary deleted", summary)
}

// DELETE /api/pos/pos
func (c *SummaryController) DeleteAllSummaries(ctx *gin.Context) {
	deleted, err := c.Summaries.DeleteAll(partnerID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "failed to delete summaries")
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "summaries deleted", gin.H{"deletedCount": deleted})
}
