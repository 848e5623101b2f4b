package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/castdraft/castdraft/go/internal/dbconfig"
	"github.com/castdraft/castdraft/go/internal/events"
	"github.com/castdraft/castdraft/go/internal/group"
	"github.com/castdraft/castdraft/go/internal/handlers"
	"github.com/castdraft/castdraft/go/internal/queue"
	"github.com/castdraft/castdraft/go/internal/roster"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}
	cfg := loadConfig()

	ctx := context.Background()

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	groupRepo, err := group.NewRedis(&group.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create group repository")
	}
	queueRepo, err := queue.NewRedis(&queue.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create queue repository")
	}

	dbCfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, dbCfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Postgres")
	}
	defer pool.Close()

	var pub events.Publisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		jsCfg := events.DefaultJetStreamConfig()
		jsCfg.URL = cfg.NATSURL
		jsPub, err := events.NewJetStreamPublisher(jsCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create JetStream publisher")
		}
		defer jsPub.Close()
		pub = jsPub
	}

	clock := clockwork.NewRealClock()
	rosterApp := roster.NewApp(roster.NewRepository(pool))
	queueApp := queue.NewApp(queueRepo, pub, clock)
	groupApp := group.NewApp(groupRepo, queueApp, rosterApp, pub, clock)

	srv := setupServer(cfg, handlers.New(groupApp, queueApp, rosterApp))

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("castdraft server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
