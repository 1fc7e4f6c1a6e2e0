package main

import (
	"log"
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Vovarama1992/audio_dubber/internal/config"
	"github.com/Vovarama1992/audio_dubber/internal/delivery"
	"github.com/Vovarama1992/audio_dubber/internal/notify"
	"github.com/Vovarama1992/audio_dubber/internal/pipeline"
	"github.com/Vovarama1992/audio_dubber/internal/speech"
	"github.com/Vovarama1992/audio_dubber/internal/telegram"
	"github.com/Vovarama1992/audio_dubber/internal/transcribe"
	"github.com/Vovarama1992/audio_dubber/internal/translate"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	cfg := config.Load()

	if missing := config.MissingCredentials(); len(missing) > 0 {
		log.Fatalf("missing credentials: %v", missing)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (STT / MT / TTS)
	// =========================================================================

	sttClient := transcribe.NewOpenAIClient(cfg.OpenAIKey)
	mtClient := translate.NewGoogleClient()
	ttsClient := speech.NewElevenLabsClient(cfg.ElevenLabsKey)

	// =========================================================================
	// PIPELINE
	// =========================================================================

	// На сервере локального проигрывания нет.
	dubService, err := pipeline.NewService(sttClient, mtClient, ttsClient, nil, cfg.OutputDir, zl)
	if err != nil {
		log.Fatalf("failed to init pipeline: %v", err)
	}

	// =========================================================================
	// TELEGRAM BOT (опционально)
	// =========================================================================

	var errNotify notify.Notifier = notify.Nop{}

	if cfg.BotToken != "" {
		botApp, err := telegram.NewBotApp(cfg.BotToken, dubService, notify.Nop{})
		if err != nil {
			log.Fatalf("failed to init telegram bot: %v", err)
		}

		errNotify = notify.NewTelegramNotifier(botApp.Bot(), cfg.AdminChatID)
		botApp.ErrorNotify = errNotify

		go botApp.Run()
	}

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	dubHandler := delivery.NewDubHandler(dubService, errNotify, zl)
	delivery.RegisterRoutes(r, dubHandler, dubService.OutputDir())

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "audio_dubber",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
