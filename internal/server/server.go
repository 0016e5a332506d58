package server

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/karimosman/quranlife-api/internal/database"
	"github.com/karimosman/quranlife-api/internal/guidance"
	"github.com/karimosman/quranlife-api/internal/profile"
	"github.com/karimosman/quranlife-api/internal/quran"
	"github.com/karimosman/quranlife-api/pkg/config"
	"github.com/karimosman/quranlife-api/pkg/ratelimit"
)

type Server struct {
	port    string
	db      database.Service
	handler http.Handler
	cfg     *config.Config

	quranClient  *quran.Client
	quranService *quran.Service
	engine       *guidance.Engine
	store        *profile.Store
	keeper       *guidance.DailyVerseKeeper
	limiter      *ratelimit.PerClient
	cancel       context.CancelFunc
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config) *Server {
	stats := db.Health()

	fmt.Println("Database Health:", stats)

	if stats["status"] != "up" {
		log.Fatal("Database connection failed")
		return &Server{}
	} else {
		log.Println("Database connection successful")
	}

	profileRepo := profile.NewRepository(db)
	if err := profileRepo.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to prepare profile schema: %v", err)
	}
	store := profile.NewStore(profileRepo)

	quranClient := quran.NewClient(cfg.QuranAPIBaseURL, cfg.AudioEdition, time.Duration(cfg.QuranTimeoutSec)*time.Second)
	quranService := quran.NewService(quranClient)

	synth := guidance.NewSynthesizer(rand.New(rand.NewSource(time.Now().UnixNano())))
	engine := guidance.NewEngine(quranService, synth)
	keeper := guidance.NewDailyVerseKeeper(engine, store, time.Now)

	s := &Server{
		port:         cfg.Port,
		db:           db,
		cfg:          cfg,
		quranClient:  quranClient,
		quranService: quranService,
		engine:       engine,
		store:        store,
		keeper:       keeper,
		limiter:      ratelimit.NewPerClient(cfg.RateLimit, time.Duration(cfg.RateWindowSeconds)*time.Second),
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs runs scheduled jobs
func (s *Server) StartBackgroundJobs() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	// Warm the daily verse in the background
	go s.keeper.StartScheduler(ctx)
	log.Println("Daily verse scheduler started")
}

func (s *Server) StopBackgroundJobs() {
	if s.cancel != nil {
		s.cancel()
		log.Println("Background jobs stopped gracefully")
	}
}
