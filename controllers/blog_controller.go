package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flbahai/community/middleware"
	"github.com/flbahai/community/models"
	"github.com/flbahai/community/utils"
)

// BlogController serves news articles. Writing is admin only; the public
// surface shows published posts with markdown rendered to HTML.
type BlogController struct {
	db *gorm.DB
}

// NewBlogController creates a BlogController.
func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{db: db}
}

// ListPosts returns published posts, newest first.
func (b *BlogController) ListPosts(ctx *gin.Context) {
	if cached, ok := utils.CacheGetBytes("cache:blog:list"); ok {
		ctx.Data(http.StatusOK, "application/json", cached)
		return
	}

	var posts []models.BlogPost
	if err := b.db.Where("published = ?", true).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list posts")
		return
	}

	payload := gin.H{"posts": posts}
	utils.CacheSetJSON("cache:blog:list", payload, time.Hour)
	utils.Success(ctx, payload)
}

// GetPostBySlug returns one published post with rendered HTML content.
func (b *BlogController) GetPostBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	if cached, ok := utils.CacheGetBytes("cache:blog:post:" + slug); ok {
		ctx.Data(http.StatusOK, "application/json", cached)
		return
	}

	var post models.BlogPost
	if err := b.db.Where("slug = ? AND published = ?", slug, true).First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}

	var rendered string
	if post.Content != nil {
		html, err := utils.RenderMarkdown(*post.Content)
		if err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to render post")
			return
		}
		rendered = html
	}

	payload := gin.H{"post": post, "html": rendered}
	utils.CacheSetJSON("cache:blog:post:"+slug, payload, time.Hour)
	utils.Success(ctx, payload)
}

// ListAllPosts returns every post regardless of published state. Admin only.
func (b *BlogController) ListAllPosts(ctx *gin.Context) {
	var posts []models.BlogPost
	if err := b.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list posts")
		return
	}
	utils.Success(ctx, gin.H{"posts": posts})
}

// CreatePost writes a new article. The slug derives from the title; on
// collision a numeric suffix is appended, bounded so a pathological run of
// identical titles fails instead of looping forever.
func (b *BlogController) CreatePost(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)

	var req struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		Excerpt   string `json:"excerpt"`
		Published bool   `json:"published"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, "Title is required")
		return
	}

	slug, err := utils.NextSlug(utils.Slugify(title), func(candidate string) (bool, error) {
		var count int64
		if err := b.db.Model(&models.BlogPost{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to allocate slug")
		return
	}

	authorName := models.ResolveDisplayName(id.FirstName, id.LastName, id.Email, "Admin")
	post := models.BlogPost{
		Title:      title,
		Slug:       slug,
		Content:    optStr(req.Content),
		Excerpt:    optStr(req.Excerpt),
		Published:  req.Published,
		AuthorID:   &id.UserID,
		AuthorName: &authorName,
	}

	if err := b.db.Create(&post).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create post")
		return
	}

	utils.InvalidateByPrefix("cache:blog:")
	utils.Created(ctx, gin.H{"slug": post.Slug})
}

// UpdatePost patches an article. Absent fields are left untouched, so a
// publish toggle can flip the flag in either direction without resending
// content.
func (b *BlogController) UpdatePost(ctx *gin.Context) {
	var req struct {
		ID               uint    `json:"id"`
		Title            *string `json:"title"`
		Content          *string `json:"content"`
		Excerpt          *string `json:"excerpt"`
		FeaturedImageURL *string `json:"featured_image_url"`
		Published        *bool   `json:"published"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.ID == 0 {
		utils.Error(ctx, http.StatusBadRequest, "missing post id")
		return
	}

	var post models.BlogPost
	if err := b.db.First(&post, req.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			utils.Error(ctx, http.StatusBadRequest, "Title is required")
			return
		}
		updates["title"] = title
	}
	if req.Content != nil {
		updates["content"] = req.Content
	}
	if req.Excerpt != nil {
		updates["excerpt"] = req.Excerpt
	}
	if req.FeaturedImageURL != nil {
		updates["featured_image_url"] = req.FeaturedImageURL
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}
	if len(updates) == 0 {
		utils.Success(ctx, gin.H{"success": true})
		return
	}

	if err := b.db.Model(&post).Updates(updates).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to update post")
		return
	}

	utils.InvalidateByPrefix("cache:blog:")
	utils.Success(ctx, gin.H{"success": true})
}

// DeletePost removes an article unconditionally.
func (b *BlogController) DeletePost(ctx *gin.Context) {
	var req struct {
		ID uint `json:"id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		utils.Error(ctx, http.StatusBadRequest, "missing post id")
		return
	}

	res := b.db.Where("id = ?", req.ID).Delete(&models.BlogPost{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete post")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, "post not found")
		return
	}

	utils.InvalidateByPrefix("cache:blog:")
	utils.Success(ctx, gin.H{"success": true})
}
