package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"hostel-assistant-backend/internal/assistant"
	"hostel-assistant-backend/internal/config"
	"hostel-assistant-backend/internal/db"
	"hostel-assistant-backend/internal/metrics"
	"hostel-assistant-backend/internal/server"
	"hostel-assistant-backend/internal/store"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()

	cfg := config.Load()
	if cfg.OpenAIAPIKey == "" {
		log.Fatal().Msg("OPENAI_API_KEY is not configured")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DB_URL is not configured")
	}

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer database.Close()

	if err := database.RunMigrations(cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	st := store.New(database)
	if err := st.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	spec, err := assistant.LoadIntentSpec(cfg.IntentSpecPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.IntentSpecPath).Msg("failed to load intent spec")
	}

	metrics.Register()

	client := openai.NewClient(cfg.OpenAIAPIKey)
	resolver := assistant.NewResolver(assistant.NewOpenAIGenerator(client, cfg.Model, spec), spec)
	contexts := assistant.NewContextBuilder(st, cfg.AnnouncementLimit)
	tickets := assistant.NewTicketer(st)

	s := server.New(cfg, contexts, resolver, tickets, st)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("model", cfg.Model).Msg("hostel assistant listening")
	if err := http.ListenAndServe(addr, s.Router()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
