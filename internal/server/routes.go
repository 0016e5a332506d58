package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/karimosman/quranlife-api/internal/guidance"
	"github.com/karimosman/quranlife-api/internal/profile"
	"github.com/karimosman/quranlife-api/internal/quran"
	"github.com/karimosman/quranlife-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Range"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Get home route
	r.Get("/", s.ServerIsWorking)
	r.Get("/health", s.HealthHandler)

	r.Route("/quranlife-api/v1", func(r chi.Router) {
		s.loadGuidanceRoutes(r)
		s.loadQuranRoutes(r)
		s.loadProfileRoutes(r)
	})
	r.Get("/quranlife-api/v1", s.ServerIsWorking)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to QuranLife api"
	response.Success(w, resp, "Success")
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.db.Health(), "Success")
}

func (s *Server) loadGuidanceRoutes(router chi.Router) {
	guidanceHandler := guidance.NewHandler(s.engine, s.quranService, s.keeper)

	// The engine stays oblivious to rate limiting; the boundary in front
	// of it applies the rolling-window limiter.
	router.Group(func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Post("/guidance/match", guidanceHandler.MatchGoalHandler)
		r.Post("/guidance/more", guidanceHandler.LoadMoreHandler)
		r.Get("/guidance/daily-verse", guidanceHandler.DailyVerseHandler)
		r.Get("/guidance/themes/{theme}", guidanceHandler.ThemeCollectionHandler)
	})
}

func (s *Server) loadQuranRoutes(router chi.Router) {
	quranHandler := quran.NewHandler(s.quranClient, s.quranService, s.cfg.QuranAudioCDN)

	router.Group(func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Get("/quran/search", quranHandler.SearchHandler)
		r.Get("/quran/verse/{surah}/{ayah}", quranHandler.VerseHandler)
		r.Get("/quran/surah/{number}", quranHandler.SurahHandler)
	})

	// Audio streaming is cache-friendly and cheap for the relay; it is not
	// counted against the engine's rate budget.
	router.Get("/quran/audio", quranHandler.AudioHandler)
}

func (s *Server) loadProfileRoutes(router chi.Router) {
	profileHandler := profile.NewHandler(s.store)

	router.Route("/profile/{key}", func(r chi.Router) {
		r.Get("/", profileHandler.GetEntryHandler)
		r.Put("/", profileHandler.SetEntryHandler)
		r.Delete("/", profileHandler.RemoveEntryHandler)
	})
}
