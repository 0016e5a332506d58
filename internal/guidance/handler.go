package guidance

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/karimosman/quranlife-api/pkg/response"
)

type Handler struct {
	engine *Engine
	source ScriptureSource
	keeper *DailyVerseKeeper
}

func NewHandler(engine *Engine, source ScriptureSource, keeper *DailyVerseKeeper) Handler {
	return Handler{engine: engine, source: source, keeper: keeper}
}

// MatchGoalHandler returns ranked guidance entries for one goal.
func (h *Handler) MatchGoalHandler(w http.ResponseWriter, r *http.Request) {
	var req MatchGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if strings.TrimSpace(req.GoalTitle) == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"goal_title": "goal_title is required",
		})
		return
	}

	results := h.engine.MatchGoal(r.Context(), req.GoalTitle, req.GoalDescription, req.GoalCategory)
	if results == nil {
		results = []GoalMatchResult{}
	}
	response.Success(w, results, "successfully")
}

// LoadMoreHandler returns the next batch of distinct guidance entries. The
// client passes the offset and verse IDs it has already rendered, since the
// engine keeps no session state between calls.
func (h *Handler) LoadMoreHandler(w http.ResponseWriter, r *http.Request) {
	var req LoadMoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if strings.TrimSpace(req.GoalTitle) == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"goal_title": "goal_title is required",
		})
		return
	}

	results := h.engine.LoadMore(r.Context(), req.GoalTitle, req.GoalDescription, req.GoalCategory, req.Offset, req.ExcludeVerseIDs)
	if results == nil {
		results = []GoalMatchResult{}
	}
	response.Success(w, results, "successfully")
}

// DailyVerseHandler serves the verse of the day, pinned per calendar date
// through the profile store.
func (h *Handler) DailyVerseHandler(w http.ResponseWriter, r *http.Request) {
	result := h.keeper.VerseForToday(r.Context())
	response.Success(w, result, "successfully")
}

// ThemeCollectionHandler serves the cached thematic collection for one of
// the known themes.
func (h *Handler) ThemeCollectionHandler(w http.ResponseWriter, r *http.Request) {
	theme := Theme(chi.URLParam(r, "theme"))
	if !KnownTheme(theme) {
		response.Error(w, http.StatusNotFound, "Unknown theme", map[string]string{
			"theme": string(theme),
		})
		return
	}

	collection, err := h.source.ThematicCollection(r.Context(), theme)
	if err != nil || collection == nil {
		// Upstream trouble still yields a renderable, empty collection.
		collection = &ThematicCollection{
			Theme:              theme,
			Description:        ThemeDescription(theme),
			Verses:             []Verse{},
			PracticalGuidance:  ThemeGuidanceEntries(theme),
			RecommendedActions: ThemeRecommendedActions(theme),
		}
	}
	if collection.Verses == nil {
		collection.Verses = []Verse{}
	}
	response.Success(w, collection, "successfully")
}
