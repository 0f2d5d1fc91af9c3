package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flbahai/community/config"
	"github.com/flbahai/community/controllers"
	"github.com/flbahai/community/middleware"
	"github.com/flbahai/community/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Access log goes to its own rolling file, separate from the app log.
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	eventsController := controllers.NewEventsController(db)
	blogController := controllers.NewBlogController(db)
	boardController := controllers.NewBoardController(db)
	directoryController := controllers.NewDirectoryController(db)
	devotionalController := controllers.NewDevotionalController(db)
	contactController := controllers.NewContactController(db)
	newsletterController := controllers.NewNewsletterController(db)
	resourcesController := controllers.NewResourcesController(db)
	adminController := controllers.NewAdminController(db)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/oauth/:provider/login", authController.OAuthRedirect)
	authGroup.GET("/oauth/:provider/callback", authController.OAuthCallback)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.PATCH("/profile", middleware.AuthRequired(), authController.UpdateProfile)

	// Public read surface.
	api.GET("/events", eventsController.ListEvents)
	api.GET("/blog", blogController.ListPosts)
	api.GET("/blog/:slug", blogController.GetPostBySlug)
	api.GET("/board/threads", boardController.ListThreads)
	api.GET("/board/threads/:id", boardController.GetThread)
	api.GET("/directory", directoryController.ListListings)
	api.GET("/devotionals", devotionalController.ListGatherings)
	api.GET("/resources", resourcesController.ListResources)

	// Contact form and newsletter need no login; the unsubscribe link in
	// particular must work from an email client.
	publicWrite := api.Group("")
	publicWrite.Use(middleware.RateLimitMiddleware())
	publicWrite.POST("/contact", contactController.SubmitMessage)
	publicWrite.POST("/newsletter/subscribe", newsletterController.Subscribe)
	publicWrite.GET("/newsletter/unsubscribe", newsletterController.Unsubscribe)

	// Member submissions land in the pending queue.
	member := api.Group("")
	member.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
	member.POST("/events", eventsController.SubmitEvent)
	member.POST("/directory", directoryController.SubmitListing)
	member.POST("/devotionals", devotionalController.SubmitGathering)
	member.POST("/board/threads", boardController.CreateThread)
	member.POST("/board/replies", boardController.CreateReply)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	admin.POST("/moderate", adminController.Moderate)
	admin.GET("/pending/:table", adminController.PendingQueue)
	admin.GET("/blog", blogController.ListAllPosts)
	admin.POST("/blog", blogController.CreatePost)
	admin.PATCH("/blog", blogController.UpdatePost)
	admin.DELETE("/blog", blogController.DeletePost)
	admin.DELETE("/board/threads/:id", boardController.DeleteThread)
	admin.DELETE("/board/replies/:id", boardController.DeleteReply)
	admin.GET("/contact", contactController.ListMessages)
	admin.POST("/contact/read", contactController.MarkMessageRead)
	admin.GET("/newsletter/subscribers", newsletterController.ListSubscribers)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "route not found")
	})

	return r
}
