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

// DirectoryController serves the business directory and accepts listings.
type DirectoryController struct {
	db *gorm.DB
}

// NewDirectoryController creates a DirectoryController.
func NewDirectoryController(db *gorm.DB) *DirectoryController {
	return &DirectoryController{db: db}
}

// ListListings returns approved and featured listings, featured first, with
// an optional category filter.
func (d *DirectoryController) ListListings(ctx *gin.Context) {
	category := ctx.Query("category")

	cacheKey := fmt.Sprintf("cache:directory:list:cat=%s", category)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	query := d.db.Where("status IN ?", []string{models.StatusApproved, models.StatusFeatured}).
		Order("status = 'featured' DESC, created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var listings []models.BusinessListing
	if err := query.Find(&listings).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list businesses")
		return
	}

	payload := gin.H{"listings": listings, "categories": models.BusinessCategories}
	utils.CacheSetJSON(cacheKey, payload, time.Hour)
	utils.Success(ctx, payload)
}

// SubmitListing accepts a member's directory entry, written as pending.
func (d *DirectoryController) SubmitListing(ctx *gin.Context) {
	id, ok := middleware.GetIdentity(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req listingSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.BusinessName = utils.SanitizePlain(req.BusinessName)
	req.Description = utils.Sanitize(req.Description)

	listing, msg := validateListingSubmission(req)
	if msg != "" {
		utils.Error(ctx, http.StatusBadRequest, msg)
		return
	}
	listing.OwnerID = id.UserID
	ownerName := models.ResolveDisplayName(id.FirstName, id.LastName, id.Email, "Member")
	listing.OwnerName = &ownerName

	if err := d.db.Create(&listing).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to submit listing")
		return
	}

	utils.Created(ctx, gin.H{"success": true})
}
