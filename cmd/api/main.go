package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/bun"

	"tycord/config"
	convorepo "tycord/internal/conversation/repository"
	convousecase "tycord/internal/conversation/usecase"
	"tycord/internal/database"
	"tycord/internal/http/handlers"
	"tycord/internal/http/middleware"
	"tycord/internal/presence"
	"tycord/internal/realtime"
	socialrepo "tycord/internal/social/repository"
	socialusecase "tycord/internal/social/usecase"
	userrepo "tycord/internal/user/repository"
	userusecase "tycord/internal/user/usecase"
	"tycord/pkg/logger"

	convomodels "tycord/internal/conversation/model"
	socialmodels "tycord/internal/social/model"
	usermodels "tycord/internal/user/model"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		appLogger.Fatal("failed to connect to database", "err", err)
	}
	defer db.Close()

	if err := createSchema(ctx, db); err != nil {
		appLogger.Fatal("failed to create schema", "err", err)
	}

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		appLogger.Fatal("failed to create uploads dir", "err", err)
	}

	userRepo := userrepo.NewUserRepository(db, appLogger)
	socialRepo := socialrepo.NewSocialRepository(db, appLogger)
	convoRepo := convorepo.NewConversationRepository(db, appLogger)

	userUC := userusecase.NewUserUsecase(userRepo, appLogger, cfg)
	socialUC := socialusecase.NewSocialUsecase(socialRepo, appLogger)
	convoUC := convousecase.NewConversationUsecase(convoRepo, appLogger)

	registry := presence.NewRegistry()
	notifier := realtime.NewNotifier(registry, convoRepo, appLogger)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	authH := &handlers.AuthHandler{Users: userUC}
	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)

	wsH := &handlers.WSHandler{Registry: registry, Notifier: notifier, Config: cfg}
	r.GET("/ws", wsH.Handle)

	r.Static(cfg.Uploads.PublicURL, cfg.Uploads.Dir)

	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware(cfg))

	userH := &handlers.UserHandler{Users: userUC, Socials: socialUC, Notifier: notifier, Config: cfg}
	authed.GET("/user", userH.GetProfile)
	authed.PUT("/user", userH.UpdateProfile)
	authed.PUT("/user/sendFriendRequest", userH.SendFriendRequest)
	authed.PUT("/user/acceptRequest", userH.AcceptRequest)
	authed.PUT("/user/declineRequest", userH.DeclineRequest)
	authed.PUT("/user/cancelRequest", userH.CancelRequest)
	authed.PUT("/user/unfriend", userH.Unfriend)
	authed.PUT("/user/block", userH.Block)
	authed.PUT("/user/unblock", userH.Unblock)

	convoH := &handlers.ConversationHandler{Convos: convoUC, Notifier: notifier, Config: cfg}
	authed.GET("/conversations", convoH.List)
	authed.POST("/conversations", convoH.Create)
	authed.DELETE("/conversations/:convoId", convoH.Leave)

	msgH := &handlers.MessageHandler{Convos: convoUC, Notifier: notifier}
	authed.GET("/messages/:convoId", msgH.List)
	authed.POST("/messages/:convoId", msgH.Post)
	authed.DELETE("/messages/:convoId", msgH.Delete)

	appLogger.Info("listening", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		appLogger.Fatal("server stopped", "err", err)
	}
}

func createSchema(ctx context.Context, db *bun.DB) error {
	models := []interface{}{
		(*usermodels.User)(nil),
		(*socialmodels.FriendEdge)(nil),
		(*socialmodels.FriendRequest)(nil),
		(*socialmodels.BlockEdge)(nil),
		(*convomodels.Conversation)(nil),
		(*convomodels.Participant)(nil),
		(*convomodels.Message)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
