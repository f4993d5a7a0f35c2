package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"talent_crm/internal/config"
	"talent_crm/internal/middleware"
	"talent_crm/internal/notifications"
	"talent_crm/internal/router"
	"talent_crm/internal/sheets"

	"github.com/rs/zerolog/log"
)

func main() {
	setupEnvironment()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()
	store, err := sheets.NewStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets store")
	}
	log.Debug().Msg("Sheets store initialized")

	notifier := notifications.NewClient(cfg)

	mux := router.New(store, notifier)
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	log.Info().Int("port", cfg.Port).Msg("Listening")
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("Server closed")
	} else {
		log.Info().Msg("Server closed")
	}
}
