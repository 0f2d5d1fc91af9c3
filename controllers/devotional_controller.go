package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flbahai/community/middleware"
	"github.com/flbahai/community/models"
	"github.com/flbahai/community/utils"
)

// DevotionalController serves devotional gathering listings.
type DevotionalController struct {
	db *gorm.DB
}

// NewDevotionalController creates a DevotionalController.
func NewDevotionalController(db *gorm.DB) *DevotionalController {
	return &DevotionalController{db: db}
}

// ListGatherings returns approved gatherings with an optional type filter.
func (d *DevotionalController) ListGatherings(ctx *gin.Context) {
	gatheringType := ctx.Query("type")

	cacheKey := fmt.Sprintf("cache:devotional:list:type=%s", gatheringType)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	query := d.db.Where("status = ?", models.StatusApproved).Order("title ASC")
	if gatheringType != "" {
		query = query.Where("type = ?", gatheringType)
	}

	var gatherings []models.DevotionalGathering
	if err := query.Find(&gatherings).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list gatherings")
		return
	}

	payload := gin.H{"gatherings": gatherings, "types": models.DevotionalTypes}
	utils.CacheSetJSON(cacheKey, payload, time.Hour)
	utils.Success(ctx, payload)
}

// SubmitGathering accepts a member's gathering listing, written as pending.
func (d *DevotionalController) SubmitGathering(ctx *gin.Context) {
	id, ok := middleware.GetIdentity(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req gatheringSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.Title = utils.SanitizePlain(req.Title)
	req.Description = utils.Sanitize(req.Description)

	gathering, msg := validateGatheringSubmission(req)
	if msg != "" {
		utils.Error(ctx, http.StatusBadRequest, msg)
		return
	}
	gathering.SubmittedBy = &id.UserID

	if err := d.db.Create(&gathering).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to submit gathering")
		return
	}

	utils.Created(ctx, gin.H{"success": true})
}
