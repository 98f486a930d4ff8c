package main

import (
	"context"
	"flag"
	"log"

	"github.com/DanRulev/easyflash.git/internal/client"
	"github.com/DanRulev/easyflash.git/internal/config"
	"github.com/DanRulev/easyflash.git/internal/deck"
	"github.com/DanRulev/easyflash.git/internal/repository"
	"github.com/DanRulev/easyflash.git/internal/service"
	"github.com/DanRulev/easyflash.git/internal/storage/cache"
	"github.com/DanRulev/easyflash.git/internal/storage/db"
	"github.com/DanRulev/easyflash.git/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	var (
		logPath = flag.String("log", "easyflash.log", "log file; the terminal is taken by the UI")
		userID  = flag.Int64("user", 1, "local user id")
	)
	flag.Parse()

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{*logPath}
	logCfg.ErrorOutputPaths = []string{*logPath}
	logger, err := logCfg.Build()
	if err != nil {
		log.Fatal("failed to build logger " + err.Error())
	}
	defer logger.Sync()

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

	controller := service.NewController(d, cache.NewCache(), history, clients, logger, service.Options{
		LearnedThreshold:   cfg.App.LearnedThreshold,
		DifficultThreshold: cfg.App.DifficultThreshold,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	if err := controller.Load(ctx); err != nil {
		cancel()
		log.Fatal("failed to load deck: " + err.Error())
	}
	cancel()

	if _, err := controller.RegisterStreak(context.Background()); err != nil {
		logger.Warn("streak not registered", zap.Error(err))
	}

	p := tea.NewProgram(tui.New(controller, *userID, cfg.App.Timeout), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
