package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotel-pos-backend/middleware"
	"hotel-pos-backend/services"
	"hotel-pos-backend/utils"

	"github.com/gin-gonic/gin"
)

func partnerID(ctx *gin.Context) uint {
	value, _ := ctx.Get(middleware.PartnerIDKey)
	id, _ := value.(uint)
	return id
}

func parseID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts a plain date or a full timestamp.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Quota and conflict rejections carry their counts in the payload.
func respondServiceError(ctx *gin.Context, err error, fallback string) {
	var vErr *services.ValidationError
	var cErr *services.ConflictError
	var qErr *services.QuotaExceededError

	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(ctx, http.StatusNotFound, fallback+": not found")
	case errors.As(err, &vErr):
		utils.JSONError(ctx, http.StatusBadRequest, vErr.Message)
	case errors.As(err, &qErr):
		utils.JSONErrorData(ctx, http.StatusConflict, qErr.Error(), gin.H{
			"currentCount": qErr.Current,
			"maxQuota":     qErr.Max,
		})
	case errors.As(err, &cErr):
		if cErr.Count > 0 {
			utils.JSONErrorData(ctx, http.StatusConflict, cErr.Message, gin.H{
				"blockingCount": cErr.Count,
			})
			return
		}
		utils.JSONError(ctx, http.StatusConflict, cErr.Message)
	default:
		utils.JSONError(ctx, http.StatusInternalServerError, fallback+": "+err.Error())
	}
}
