package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flbahai/community/middleware"
	"github.com/flbahai/community/models"
	"github.com/flbahai/community/utils"
)

// BoardController serves the discussion board: thread listing with reply
// counts, thread detail with chronological replies, and posting.
type BoardController struct {
	db *gorm.DB
}

// NewBoardController creates a BoardController.
func NewBoardController(db *gorm.DB) *BoardController {
	return &BoardController{db: db}
}

// ThreadListItem is a thread plus its aggregated reply count.
type ThreadListItem struct {
	models.BoardThread
	ReplyCount int64 `json:"reply_count"`
}

// SortThreads orders threads pinned first, newest first within each group.
func SortThreads(threads []ThreadListItem) {
	sort.SliceStable(threads, func(i, j int) bool {
		a, b := threads[i], threads[j]
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// ListThreads returns all threads with reply counts, pinned first then by
// recency.
func (b *BoardController) ListThreads(ctx *gin.Context) {
	if cached, ok := utils.CacheGetBytes("cache:board:threads"); ok {
		ctx.Data(http.StatusOK, "application/json", cached)
		return
	}

	var threads []models.BoardThread
	if err := b.db.Find(&threads).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list threads")
		return
	}

	type countRow struct {
		ThreadID uint
		Count    int64
	}
	var counts []countRow
	if err := b.db.Model(&models.BoardReply{}).
		Select("thread_id, COUNT(*) as count").
		Group("thread_id").Scan(&counts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to count replies")
		return
	}
	countByThread := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByThread[c.ThreadID] = c.Count
	}

	items := make([]ThreadListItem, 0, len(threads))
	for _, t := range threads {
		items = append(items, ThreadListItem{BoardThread: t, ReplyCount: countByThread[t.ID]})
	}
	SortThreads(items)

	payload := gin.H{"threads": items}
	utils.CacheSetJSON("cache:board:threads", payload, time.Hour)
	utils.Success(ctx, payload)
}

// GetThread returns one thread with its replies oldest first.
func (b *BoardController) GetThread(ctx *gin.Context) {
	threadID := ctx.Param("id")

	var thread models.BoardThread
	if err := b.db.First(&thread, threadID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "thread not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load thread")
		return
	}

	var replies []models.BoardReply
	if err := b.db.Where("thread_id = ?", thread.ID).
		Order("created_at ASC").Find(&replies).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load replies")
		return
	}

	utils.Success(ctx, gin.H{"thread": thread, "replies": replies})
}

// CreateThread posts a new discussion topic.
func (b *BoardController) CreateThread(ctx *gin.Context) {
	id, ok := middleware.GetIdentity(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req threadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.Title = utils.SanitizePlain(req.Title)
	req.Body = utils.Sanitize(req.Body)

	thread, msg := validateThread(req)
	if msg != "" {
		utils.Error(ctx, http.StatusBadRequest, msg)
		return
	}
	thread.AuthorID = id.UserID
	thread.AuthorName = models.ResolveDisplayName(id.FirstName, id.LastName, id.Email, "Anonymous")

	if err := b.db.Create(&thread).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create thread")
		return
	}

	utils.InvalidateByPrefix("cache:board:")
	utils.Created(ctx, gin.H{"id": thread.ID})
}

// CreateReply posts a reply to an existing thread. Replies cannot be edited
// afterwards.
func (b *BoardController) CreateReply(ctx *gin.Context) {
	id, ok := middleware.GetIdentity(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req replyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.Body = utils.Sanitize(req.Body)

	reply, msg := validateReply(req)
	if msg != "" {
		utils.Error(ctx, http.StatusBadRequest, msg)
		return
	}

	var thread models.BoardThread
	if err := b.db.First(&thread, reply.ThreadID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "thread not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load thread")
		return
	}

	reply.AuthorID = id.UserID
	reply.AuthorName = models.ResolveDisplayName(id.FirstName, id.LastName, id.Email, "Anonymous")

	if err := b.db.Create(&reply).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create reply")
		return
	}

	utils.InvalidateByPrefix("cache:board:")
	utils.Created(ctx, gin.H{"success": true})
}

// DeleteThread removes a thread together with its replies. Admin only.
func (b *BoardController) DeleteThread(ctx *gin.Context) {
	threadID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid thread id")
		return
	}

	res := b.db.Where("id = ?", threadID).Delete(&models.BoardThread{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete thread")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, "thread not found")
		return
	}
	// Migration runs with FK constraints disabled, so replies go explicitly.
	if err := b.db.Where("thread_id = ?", threadID).Delete(&models.BoardReply{}).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete replies")
		return
	}

	utils.InvalidateByPrefix("cache:board:")
	utils.Success(ctx, gin.H{"success": true})
}

// DeleteReply removes a single reply. Admin only.
func (b *BoardController) DeleteReply(ctx *gin.Context) {
	replyID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid reply id")
		return
	}

	res := b.db.Where("id = ?", replyID).Delete(&models.BoardReply{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete reply")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, "reply not found")
		return
	}

	utils.InvalidateByPrefix("cache:board:")
	utils.Success(ctx, gin.H{"success": true})
}
