package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/plushealth/plushealth-server/internal/api/http/router"
	"github.com/plushealth/plushealth-server/internal/config"
	"github.com/plushealth/plushealth-server/internal/logger"
	"github.com/plushealth/plushealth-server/internal/mail"
	"github.com/plushealth/plushealth-server/internal/model"
	"github.com/plushealth/plushealth-server/internal/repository/postgres"
	"github.com/plushealth/plushealth-server/internal/server"
	"github.com/plushealth/plushealth-server/internal/service"
	"github.com/plushealth/plushealth-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	weightRepo := postgres.NewWeightRepository(db)
	goalRepo := postgres.NewGoalRepository(db)
	leaderboardRepo := postgres.NewLeaderboardRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	var mailer mail.Mailer
	if cfg.SMTP.Host != "" {
		mailer, err = mail.NewSMTPMailer(cfg.SMTP, cfg.App.BaseURL)
		if err != nil {
			logger.Fatal("failed to create mail client", "error", err)
		}
	} else {
		logger.Info("SMTP host not configured, email delivery disabled")
		mailer = mail.NewNoopMailer(logger)
	}

	accountService := service.NewAccount(userRepo, tokenManager, mailer, logger)
	activityService := service.NewActivity(activityRepo, logger)
	weightService := service.NewWeight(weightRepo, logger)
	goalService := service.NewGoal(goalRepo, logger)
	leaderboardService := service.NewLeaderboard(leaderboardRepo, logger)

	r := router.New(accountService, activityService, weightService, goalService, leaderboardService, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	if cfg.Database.PingInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			keepWarm(ctx, db, cfg.Database.PingInterval, logger)
		}()
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// keepWarm pings the database on an interval so managed instances that pause
// idle connections stay responsive.
func keepWarm(ctx context.Context, db *postgres.Connection, interval time.Duration, logger *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := db.Ping(ctx); err != nil {
				logger.Error("database keep-warm ping failed", "error", err)
			}
		}
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
