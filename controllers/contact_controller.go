package controllers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flbahai/community/config"
	"github.com/flbahai/community/models"
	"github.com/flbahai/community/utils"
)

// ContactController stores contact form messages and forwards them by email.
type ContactController struct {
	db *gorm.DB
}

// NewContactController creates a ContactController.
func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{db: db}
}

// SubmitMessage accepts a contact form message from anyone, no login needed.
// The row is persisted first; the email forward is best effort and a delivery
// failure never fails the request once the row is stored.
func (c *ContactController) SubmitMessage(ctx *gin.Context) {
	var req contactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	msg, errMsg := validateContact(req)
	if errMsg != "" {
		utils.Error(ctx, http.StatusBadRequest, errMsg)
		return
	}
	if !ValidEmail(msg.Email) {
		utils.Error(ctx, http.StatusBadRequest, "Invalid email address.")
		return
	}

	if err := c.db.Create(&msg).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to save message")
		return
	}

	recipient := config.Get().ContactRecipient
	if recipient != "" {
		body := fmt.Sprintf(
			"<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(msg.Name),
			html.EscapeString(msg.Email),
			html.EscapeString(msg.Message),
		)
		if err := utils.SendHTMLMail(recipient, msg.Email, "[Contact] "+msg.Subject, body); err != nil {
			utils.Sugar.Warnw("contact forward failed", "id", msg.ID, "err", err)
		}
	}

	utils.Created(ctx, gin.H{"success": true})
}

// ListMessages returns every stored message, newest first. Admin only.
func (c *ContactController) ListMessages(ctx *gin.Context) {
	var messages []models.ContactMessage
	if err := c.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list messages")
		return
	}
	utils.Success(ctx, gin.H{"messages": messages})
}

// MarkMessageRead flags a message as handled. Admin only.
func (c *ContactController) MarkMessageRead(ctx *gin.Context) {
	var req struct {
		ID uint `json:"id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		utils.Error(ctx, http.StatusBadRequest, "missing message id")
		return
	}

	res := c.db.Model(&models.ContactMessage{}).Where("id = ?", req.ID).Update("read", true)
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to update message")
		return
	}
	if res.RowsAffected == 0 {
		// Zero rows is either an absent id or an already-read message.
		var count int64
		if err := c.db.Model(&models.ContactMessage{}).Where("id = ?", req.ID).Count(&count).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to update message")
			return
		}
		if count == 0 {
			utils.Error(ctx, http.StatusNotFound, "message not found")
			return
		}
	}

	utils.Success(ctx, gin.H{"success": true})
}
