package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flbahai/community/models"
	"github.com/flbahai/community/utils"
)

// ResourcesController serves the curated links page.
type ResourcesController struct {
	db *gorm.DB
}

// NewResourcesController creates a ResourcesController.
func NewResourcesController(db *gorm.DB) *ResourcesController {
	return &ResourcesController{db: db}
}

// ListResources returns all resources in their curated order.
func (r *ResourcesController) ListResources(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes("cache:resources:list"); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var resources []models.Resource
	if err := r.db.Order("sort_order ASC, title ASC").Find(&resources).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list resources")
		return
	}

	payload := gin.H{"resources": resources}
	utils.CacheSetJSON("cache:resources:list", payload, time.Hour)
	utils.Success(ctx, payload)
}
