package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flbahai/community/middleware"
	"github.com/flbahai/community/models"
	"github.com/flbahai/community/utils"
)

// AdminController carries the moderation surface. Every route here sits
// behind the admin role check; the handlers themselves only deal with the
// closed set of moderatable kinds.
type AdminController struct {
	db *gorm.DB
}

// NewAdminController creates an AdminController.
func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

// cachePrefixFor maps a moderation kind to the public cache namespace whose
// entries a decision can change.
func cachePrefixFor(kind models.ModerationKind) string {
	switch kind {
	case models.ModerateEvents:
		return "cache:events:"
	case models.ModerateBusinessListings:
		return "cache:directory:"
	case models.ModerateDevotionalGatherings:
		return "cache:devotional:"
	}
	return ""
}

// Moderate applies an approve or reject decision to one pending submission.
// The kind string must name one of the moderatable entities; the id must
// exist. Approve is idempotent, reject deletes the row outright.
func (a *AdminController) Moderate(ctx *gin.Context) {
	var req struct {
		Table  string `json:"table"`
		ID     uint   `json:"id"`
		Action string `json:"action"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	kind, err := models.ParseModerationKind(req.Table)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid table")
		return
	}
	if req.ID == 0 {
		utils.Error(ctx, http.StatusBadRequest, "missing id")
		return
	}

	switch req.Action {
	case "approve":
		err = kind.Approve(a.db, req.ID)
	case "reject":
		err = kind.Reject(a.db, req.ID)
	default:
		utils.Error(ctx, http.StatusBadRequest, "invalid action")
		return
	}

	if err == gorm.ErrRecordNotFound {
		utils.Error(ctx, http.StatusNotFound, "submission not found")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "moderation failed")
		return
	}

	if prefix := cachePrefixFor(kind); prefix != "" {
		utils.InvalidateByPrefix(prefix)
	}

	id, _ := middleware.GetIdentity(ctx)
	utils.Sugar.Infow("moderation decision",
		"table", kind.String(), "id", req.ID, "action", req.Action, "by", id.Username)

	utils.Success(ctx, gin.H{"success": true})
}

// PendingQueue returns the pending submissions for one kind, oldest first.
func (a *AdminController) PendingQueue(ctx *gin.Context) {
	kind, err := models.ParseModerationKind(ctx.Param("table"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid table")
		return
	}

	rows, err := kind.PendingRows(a.db)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load queue")
		return
	}

	utils.Success(ctx, gin.H{"table": kind.String(), "pending": rows})
}
