package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wellsphere/internal/ai"
	"wellsphere/internal/config"
	"wellsphere/internal/handlers"
	"wellsphere/internal/storage"
)

func main() {
	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := storage.NewPool(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("unable to connect to db: ", err)
	}
	defer pool.Close()

	if err := storage.CreateTables(ctx, pool); err != nil {
		log.Fatal("unable to create tables: ", err)
	}

	log.Println("connected to db successfully")

	users := storage.NewUserStorage(pool)
	sessions := storage.NewSessionStorage(pool, cfg.SessionTTL)

	authHandler := handlers.NewAuthHandler(users, sessions)
	diaryHandler := handlers.NewDiaryHandler(storage.NewDiaryStorage(pool))
	todoHandler := handlers.NewTodoHandler(storage.NewTodoStorage(pool))
	goalHandler := handlers.NewGoalHandler(storage.NewGoalStorage(pool))
	chatHandler := handlers.NewChatHandler(storage.NewChatStorage(pool), ai.NewCannedCompanion())
	moodHandler := handlers.NewMoodHandler(storage.NewMoodStorage(pool))
	settingsHandler := handlers.NewSettingsHandler(storage.NewSettingsStorage(pool), users)
	quoteHandler := handlers.NewQuoteHandler()

	router := handlers.NewRouter(
		authHandler,
		diaryHandler,
		todoHandler,
		goalHandler,
		chatHandler,
		moodHandler,
		settingsHandler,
		quoteHandler,
	)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Println("server shutdown error: ", err)
		}
	}()

	log.Println("listening on ", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("fail listen and serve with error ", err)
	}
}
