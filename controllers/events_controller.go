package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flbahai/community/middleware"
	"github.com/flbahai/community/models"
	"github.com/flbahai/community/utils"
)

// EventsController serves the public calendar and accepts member submissions.
type EventsController struct {
	db *gorm.DB
}

// NewEventsController creates an EventsController.
func NewEventsController(db *gorm.DB) *EventsController {
	return &EventsController{db: db}
}

// ListEvents returns approved events ordered by start time. Pending rows
// never appear here; they are only visible through the admin queue.
func (e *EventsController) ListEvents(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes("cache:events:list"); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var events []models.Event
	if err := e.db.Where("status = ?", models.StatusApproved).
		Order("start_time ASC").Find(&events).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list events")
		return
	}

	payload := gin.H{"events": events}
	utils.CacheSetJSON("cache:events:list", payload, time.Hour)
	utils.Success(ctx, payload)
}

// SubmitEvent accepts a member submitted calendar entry. The row is written
// as pending and stays off the public calendar until approved.
func (e *EventsController) SubmitEvent(ctx *gin.Context) {
	id, ok := middleware.GetIdentity(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req eventSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.Title = utils.SanitizePlain(req.Title)
	req.Description = utils.Sanitize(req.Description)

	event, msg := validateEventSubmission(req)
	if msg != "" {
		utils.Error(ctx, http.StatusBadRequest, msg)
		return
	}
	event.SubmittedBy = &id.UserID

	if err := e.db.Create(&event).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to submit event")
		return
	}

	utils.Created(ctx, gin.H{"success": true})
}
