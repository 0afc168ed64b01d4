package main

import (
	"context"
	"errors"
	"fmt"
	"lead-dispatcher/internal/app"
	"lead-dispatcher/internal/config"
	"lead-dispatcher/internal/infra/logger"
	"lead-dispatcher/internal/infra/provider"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log := logger.NewLogger(ctx, cfg.LogFormat != "text", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Warn(fmt.Sprintf("Leads will be rejected until configured: %v", err))
	}
	log.Info("Form catalog loaded", logrus.Fields{
		"old_forms": len(cfg.Forms.OldForms),
		"new_forms": len(cfg.Forms.NewForms),
	})

	router := app.NewRouter(cfg, log, provider.NewHTTPClient())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	// In-flight leads finish their Telegram sends before the process exits.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*provider.OutboundTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}
