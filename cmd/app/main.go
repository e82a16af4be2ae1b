package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "gymdesk/docs"

	"gymdesk/internal/config"
	"gymdesk/internal/db"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/notify"
	"gymdesk/internal/server"
	"gymdesk/internal/settings"
)

// @title GymDesk API
// @version 1.0
// @description API for gym membership tracking: members, payments, check-ins, and reports.
// @host localhost:8080
// @BasePath /
func main() {

	logger.Init()
	logger.Info("Starting GymDesk application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	memberService := member.NewService(member.NewRepository(database), settings.NewRepository(database))

	reminders := notify.New(
		memberService,
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer reminders.Close()
	logger.Info("Reminder service initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reminders.Start(ctx)
	go sweepDaily(ctx, reminders)

	srv := server.New(database, cfg, reminders)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

// sweepDaily queues renewal reminders once at startup and then every
// 24 hours until the context is cancelled.
func sweepDaily(ctx context.Context, reminders *notify.Service) {
	if _, err := reminders.SweepDueMembers(ctx); err != nil {
		logger.Errorf("Reminder sweep failed: %v", err)
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := reminders.SweepDueMembers(ctx); err != nil {
				logger.Errorf("Reminder sweep failed: %v", err)
			}
		}
	}
}
