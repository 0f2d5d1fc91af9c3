package controllers

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/flbahai/community/config"
	"github.com/flbahai/community/models"
	"github.com/flbahai/community/utils"
)

// NewsletterController manages the mailing list. Subscribing is open to
// anyone; unsubscribing works through a per-subscriber token carried in every
// email, so the link keeps working without a login.
type NewsletterController struct {
	db *gorm.DB
}

// NewNewsletterController creates a NewsletterController.
func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{db: db}
}

// Subscribe adds an address to the list, or reactivates it if it had
// unsubscribed before. Subscribing twice is not an error; the stored name is
// refreshed from the latest request either way. The welcome email is best
// effort.
func (n *NewsletterController) Subscribe(ctx *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !ValidEmail(email) {
		utils.Error(ctx, http.StatusBadRequest, "A valid email address is required.")
		return
	}
	name := optStr(utils.SanitizePlain(req.Name))

	var sub models.EmailSubscriber
	err := n.db.Where("email = ?", email).First(&sub).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		sub = models.EmailSubscriber{Email: email, Name: name, Subscribed: true}
		if err := n.db.Create(&sub).Error; err != nil {
			// Two first-time subscribes can race past the existence check;
			// the loser's unique-index violation still means the address is
			// on the list, which is all the caller asked for.
			if isDuplicateKey(err) {
				utils.Success(ctx, gin.H{"success": true})
				return
			}
			utils.Error(ctx, http.StatusInternalServerError, "failed to subscribe")
			return
		}
		n.sendWelcome(sub)
		utils.Created(ctx, gin.H{"success": true})
	case err != nil:
		utils.Error(ctx, http.StatusInternalServerError, "failed to subscribe")
		return
	default:
		// Existing row: the unsubscribe token is never regenerated here.
		updates := map[string]interface{}{"subscribed": true, "name": name}
		if err := n.db.Model(&sub).Updates(updates).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to subscribe")
			return
		}
		if !sub.Subscribed {
			sub.Subscribed = true
			n.sendWelcome(sub)
		}
		utils.Success(ctx, gin.H{"success": true})
	}
}

// isDuplicateKey recognizes a unique-index violation both through GORM's
// translated error and as the raw MySQL error, since translation is opt-in.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// Unsubscribe deactivates the subscriber owning the token. An unknown token
// is a 404; a token that already opted out succeeds without writing.
func (n *NewsletterController) Unsubscribe(ctx *gin.Context) {
	token := strings.TrimSpace(ctx.Query("token"))
	if token == "" {
		utils.Error(ctx, http.StatusBadRequest, "missing token")
		return
	}

	var sub models.EmailSubscriber
	if err := n.db.Where("unsubscribe_token = ?", token).First(&sub).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "link not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to unsubscribe")
		return
	}

	if !sub.Subscribed {
		utils.Success(ctx, gin.H{"success": true, "message": "already unsubscribed"})
		return
	}

	if err := n.db.Model(&sub).Update("subscribed", false).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to unsubscribe")
		return
	}

	utils.Success(ctx, gin.H{"success": true})
}

// ListSubscribers returns active subscribers. Admin only.
func (n *NewsletterController) ListSubscribers(ctx *gin.Context) {
	var subs []models.EmailSubscriber
	if err := n.db.Where("subscribed = ?", true).
		Order("created_at DESC").Find(&subs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list subscribers")
		return
	}
	utils.Success(ctx, gin.H{"subscribers": subs, "count": len(subs)})
}

func (n *NewsletterController) sendWelcome(sub models.EmailSubscriber) {
	greeting := "Hello"
	if sub.Name != nil && *sub.Name != "" {
		greeting = "Hello " + html.EscapeString(*sub.Name)
	}
	unsubURL := fmt.Sprintf("%s/api/newsletter/unsubscribe?token=%s",
		strings.TrimRight(config.Get().SiteURL, "/"), sub.UnsubscribeToken)
	body := fmt.Sprintf(
		"<p>%s,</p><p>Thanks for subscribing to our community newsletter.</p>"+
			"<p><a href=\"%s\">Unsubscribe</a></p>",
		greeting, unsubURL)
	if err := utils.SendHTMLMail(sub.Email, "", "Welcome to the newsletter", body); err != nil {
		utils.Sugar.Warnw("welcome email failed", "email", sub.Email, "err", err)
	}
}
