package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/easyflash.git/internal/bot"
	"github.com/DanRulev/easyflash.git/internal/client"
	"github.com/DanRulev/easyflash.git/internal/config"
	"github.com/DanRulev/easyflash.git/internal/deck"
	"github.com/DanRulev/easyflash.git/internal/repository"
	"github.com/DanRulev/easyflash.git/internal/scheduler"
	"github.com/DanRulev/easyflash.git/internal/service"
	"github.com/DanRulev/easyflash.git/internal/storage/cache"
	"github.com/DanRulev/easyflash.git/internal/storage/db"
	"github.com/DanRulev/easyflash.git/internal/storage/redisstore"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	if cfg.BotToken == "" {
		logger.Fatal("BOT_TOKEN is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := cache.NewCache()

	var (
		store  service.StoreI  = cache
		drafts bot.DraftStoreI = cache
	)
	if cfg.Redis.Enabled() {
		rdb, err := redisstore.NewClient(cfg.Redis.URL)
		if err != nil {
			logger.Fatal("failed init redis", zap.Error(err))
		}
		defer rdb.Close()
		redisStore := redisstore.New(rdb, cfg.Redis.TTL)
		store, drafts = redisStore, redisStore
	}

	var history service.HistoryRI
	if cfg.DB.Enabled() {
		conn, err := db.InitDB(cfg.DB)
		if err != nil {
			logger.Fatal("failed init db", zap.Error(err))
		}
		defer conn.Close()
		history = repository.NewRepository(conn).SessionR
	}

	clients := client.InitClients(cfg.API.URL, cfg.App.Timeout)

	d := deck.New(clients, logger,
		deck.WithReconcile(cfg.App.Reconcile),
		deck.WithOptionalCategory(cfg.App.OptionalCategory),
		deck.WithConfirmTimeout(cfg.App.Timeout),
	)
	defer d.Wait()

	controller := service.NewController(d, store, history, clients, logger, service.Options{
		LearnedThreshold:   cfg.App.LearnedThreshold,
		DifficultThreshold: cfg.App.DifficultThreshold,
	})

	loadCtx, cancel := context.WithTimeout(ctx, cfg.App.Timeout)
	if err := controller.Load(loadCtx); err != nil {
		logger.Warn("starting with an empty deck", zap.Error(err))
	}
	cancel()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, controller, drafts, logger)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	if cfg.Reminder.Enabled {
		sched := scheduler.New(controller, handler, cfg.Reminder.At, cfg.App.Timeout, logger)
		if err := sched.Start(); err != nil {
			logger.Fatal("failed to start reminders", zap.Error(err))
		}
		defer sched.Stop()
	}

	handler.Start(ctx)
	logger.Info("shutting down")
}
