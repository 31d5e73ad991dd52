package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pvmoreira/lojagamer/internal/cart"
	"github.com/pvmoreira/lojagamer/internal/catalog"
	"github.com/pvmoreira/lojagamer/internal/checkout"
	"github.com/pvmoreira/lojagamer/internal/config"
	"github.com/pvmoreira/lojagamer/internal/events"
	"github.com/pvmoreira/lojagamer/internal/httpapi"
	"github.com/pvmoreira/lojagamer/internal/order"
	"github.com/pvmoreira/lojagamer/internal/store"
	"github.com/pvmoreira/lojagamer/internal/user"
)

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.Load()

	db, err := store.Open(cfg.DBPath)
	must(err)
	defer db.Close()
	must(store.Migrate(context.Background(), db))
	if cfg.SeedOnStart {
		must(store.Seed(context.Background(), db))
		log.Info().Msg("seeded base categories")
	}

	// Rabbit es auxiliar: sin broker la tienda sigue operando
	var pub events.Publisher = events.NopPublisher{}
	if cfg.RabbitURL != "" {
		rb, err := events.NewRabbit(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Warn().Err(err).Msg("rabbit unavailable, events disabled")
		} else {
			pub = rb
		}
	}
	defer pub.Close()

	users := user.NewRepository(db)
	cat, err := catalog.NewRepository(db)
	must(err)
	carts := cart.NewRepository(db)
	orders := order.NewRepository(db)
	chk := checkout.NewService(db, carts, cat, users, orders, pub)

	api := httpapi.NewServer(users, cat, carts, orders, chk, pub, cfg.RequestTimeout)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.Router(),
	}

	// Señales para apagado limpio
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Warn().Msg("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
