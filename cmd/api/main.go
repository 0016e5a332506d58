package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/karimosman/quranlife-api/internal/database"
	"github.com/karimosman/quranlife-api/internal/server"
	"github.com/karimosman/quranlife-api/pkg/config"
)

func main() {
	cfg := config.LoadConfig()

	db := database.New(cfg)
	defer db.Close()

	srv := server.NewServer(db, cfg)
	srv.StartBackgroundJobs()
	defer srv.StopBackgroundJobs()

	httpServer := srv.HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("QuranLife api listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
