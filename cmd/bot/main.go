package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weatherbot/internal/config"
	"weatherbot/internal/handler"
	"weatherbot/internal/i18n"
	"weatherbot/internal/logging"
	"weatherbot/internal/metrics"
	"weatherbot/internal/repository/memory"
	"weatherbot/internal/scheduler"
	"weatherbot/internal/service"
	"weatherbot/internal/weather"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Weather Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if logger, err = logging.New(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully",
		zap.String("notify_time", cfg.NotifyTime),
		zap.String("log_level", cfg.LogLevel),
	)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	var metricsServer *metrics.Server
	if cfg.MetricsAddr != "" {
		metricsServer = metrics.NewServer(cfg.MetricsAddr, registry, logger)
		go func() {
			if err := metricsServer.Start(); err != nil {
				logger.Error("Metrics server stopped", zap.Error(err))
			}
		}()
	}

	// Localized weather labels
	catalog, err := i18n.LoadCatalog(i18n.LocalesFS)
	if err != nil {
		logger.Fatal("Failed to load locales", zap.Error(err))
	}

	// Initialize repositories
	prefRepo := memory.NewPreferenceRepo()
	convRepo := memory.NewConversationRepo()

	// Initialize services
	client := weather.NewClient(http.DefaultClient, cfg.WeatherBaseURL, cfg.WeatherAPIKey, logger)
	weatherService := service.NewWeatherService(client, weather.NewFormatter(catalog), m, logger)
	menuService := service.NewMenuService(prefRepo, convRepo, weatherService, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:       cfg.BotToken,
		Poller:      &tele.LongPoller{Timeout: 10 * time.Second},
		ParseMode:   tele.ModeHTML,
		Synchronous: true,
		OnError: func(err error, c tele.Context) {
			logger.Error("Bot error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, menuService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start daily notifications in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hour, minute := cfg.NotifyClock()
	daily := scheduler.NewDailyScheduler(
		hour, minute,
		prefRepo,
		weatherService,
		handler.NewSender(bot),
		scheduler.RealClock{},
		m,
		logger,
	)
	daily.Start(ctx)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	daily.Stop()
	cancel()

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to stop metrics server", zap.Error(err))
		}
	}

	logger.Info("Bot stopped gracefully")
}
