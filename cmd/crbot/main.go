// Package main provides the entry point for the code review bot.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/kiwicollection/crbot/internal/bot"
	commitrepo "github.com/kiwicollection/crbot/internal/commit/repository"
	"github.com/kiwicollection/crbot/internal/config"
	"github.com/kiwicollection/crbot/internal/database"
	"github.com/kiwicollection/crbot/internal/meta"
	"github.com/kiwicollection/crbot/internal/middleware"
	reviewrepo "github.com/kiwicollection/crbot/internal/review/repository"
	"github.com/kiwicollection/crbot/internal/slackadapter"
	statsrepo "github.com/kiwicollection/crbot/internal/stats/repository"
	statsservice "github.com/kiwicollection/crbot/internal/stats/service"
	"github.com/kiwicollection/crbot/internal/status"
	userrepo "github.com/kiwicollection/crbot/internal/user/repository"
	userservice "github.com/kiwicollection/crbot/internal/user/service"
	"github.com/kiwicollection/crbot/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := cfg.Slack.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Storage is the only collaborator whose absence aborts startup.
	db, err := database.NewWithConfig(cfg.Database)
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zlog.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := database.Migrate(db, cfg.Database); err != nil {
		zlog.Fatalw("failed to apply migrations", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	adapter := slackadapter.New(cfg.Slack, zlog)
	botUserID, err := adapter.BotUserID(ctx)
	if err != nil {
		zlog.Fatalw("failed to resolve bot identity", "error", err)
	}
	session := bot.NewSession(botUserID)

	users := userrepo.New(db, zlog)
	commits := commitrepo.New(db, zlog)
	reviews := reviewrepo.New(db, zlog)
	directory := userservice.New(users, adapter, zlog)
	stats := statsservice.New(statsrepo.New(db, zlog), zlog)
	metaRepo := meta.New(db, zlog)

	handler := bot.New(cfg.Bot, adapter, directory, commits, reviews, stats, metaRepo, session, zlog)
	handler.AnnounceStartup(ctx)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zlog), middleware.Logger(zlog))
	status.RegisterRoutes(r, db, commits, reviews, users, session, zlog)

	go func() {
		if err := r.Run(cfg.Server.GetAddress()); err != nil {
			zlog.Errorw("status server stopped", "error", err)
		}
	}()

	zlog.Infow("crbot started",
		"bot_user_id", botUserID,
		"channel", cfg.Bot.Channel,
		"driver", cfg.Database.Driver,
	)

	if err := adapter.Run(ctx, handler); err != nil && ctx.Err() == nil {
		zlog.Errorw("event stream terminated", "error", err)
	}

	handler.Wait()
	zlog.Infow("crbot stopped")
}
