package main

import (
	"context"
	"time"

	"github.com/duoblog/duoblog/config"
	"github.com/duoblog/duoblog/models"
	"github.com/duoblog/duoblog/routes"
	"github.com/duoblog/duoblog/services"
	"github.com/duoblog/duoblog/store"
	"github.com/duoblog/duoblog/utils"
)

func main() {
	cfg := config.Load()
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer utils.Logger.Sync()

	db := config.InitDatabase(&models.Post{}, &models.Comment{})
	client := config.InitMongo()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.New(ctx, db, client, cfg.MongoDB)
	cancel()
	if err != nil {
		utils.Sugar.Fatalw("store init failed", "error", err)
	}
	defer st.Close(context.Background())

	utils.SetBlacklistClient(utils.GetRedis())

	tokens := utils.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)

	userService := services.NewUserService(st, tokens, utils.Sugar)
	postService := services.NewPostService(st, utils.Sugar)
	commentService := services.NewCommentService(st, utils.Sugar)

	r := routes.SetupRouter(userService, postService, commentService, tokens)

	utils.Sugar.Infow("server starting", "port", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalw("server exited", "error", err)
	}
}
