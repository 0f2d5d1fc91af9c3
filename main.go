package main

import (
	"github.com/flbahai/community/config"
	"github.com/flbahai/community/models"
	"github.com/flbahai/community/routes"
	"github.com/flbahai/community/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Event{},
		&models.BlogPost{},
		&models.BoardThread{},
		&models.BoardReply{},
		&models.BusinessListing{},
		&models.DevotionalGathering{},
		&models.ContactMessage{},
		&models.EmailSubscriber{},
		&models.Resource{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
