package guidance

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// ScriptureSource is the engine's view of the quran adapter. Implementations
// must never surface raw transport errors for search: a failed search is an
// empty result plus a non-nil error the engine may log and ignore.
type ScriptureSource interface {
	SearchVerses(ctx context.Context, query, language string) ([]Verse, error)
	ThematicCollection(ctx context.Context, theme Theme) (*ThematicCollection, error)
	RandomVerse(ctx context.Context) (Verse, error)
}

const (
	maxPrimaryMatches  = 3
	maxThematicMatches = 2
)

// Engine orchestrates one matching call: classify the goal, retrieve
// candidate verses (search first, thematic fallback second), score them, and
// attach synthesized guidance. It holds no per-request state; the theme cache
// lives inside the scripture adapter.
type Engine struct {
	source ScriptureSource
	synth  *Synthesizer
}

func NewEngine(source ScriptureSource, synth *Synthesizer) *Engine {
	return &Engine{source: source, synth: synth}
}

// MatchGoal returns ranked guidance entries for a goal. It never fails:
// upstream outages degrade to the thematic fallback or an empty list, and
// each result's Source field records which path produced it.
func (e *Engine) MatchGoal(ctx context.Context, title, description, category string) []GoalMatchResult {
	goalText := strings.TrimSpace(strings.Join([]string{title, description, category}, " "))
	theme := ClassifyText(goalText)

	candidates, source := e.retrieveCandidates(ctx, goalText, theme, maxPrimaryMatches, maxThematicMatches)

	results := make([]GoalMatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, e.buildResult(goalText, theme, candidate, source))
	}
	// Primary-path results arrive in the source's relevance order and the
	// thematic fallback keeps collection order; neither is re-sorted here.
	return results
}

// LoadMore returns the next batch of distinct guidance entries after a
// caller-tracked offset. The engine holds no session state, so the caller
// passes both the offset and the verse IDs it has already shown.
func (e *Engine) LoadMore(ctx context.Context, title, description, category string, offset int, excludeIDs []int) []GoalMatchResult {
	goalText := strings.TrimSpace(strings.Join([]string{title, description, category}, " "))
	theme := ClassifyText(goalText)

	// No caps on either path: pagination needs the full candidate list so
	// an offset past the first batch still finds the remaining verses.
	candidates, source := e.retrieveCandidates(ctx, goalText, theme, 0, 0)
	if offset < 0 {
		offset = 0
	}
	if offset < len(candidates) {
		candidates = candidates[offset:]
	} else {
		candidates = nil
	}

	seen := make(map[int]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		seen[id] = true
	}

	results := make([]GoalMatchResult, 0, maxPrimaryMatches)
	for _, candidate := range candidates {
		if seen[candidate.ID] {
			continue
		}
		results = append(results, e.buildResult(goalText, theme, candidate, source))
		if len(results) == maxPrimaryMatches {
			break
		}
	}
	return results
}

// DailyVerse fetches one verse from the curated random pool. On any upstream
// failure it returns the embedded Ayat al-Kursi fallback so the UI always has
// something to render. Date stability is the caller's job: the HTTP layer
// pins the result per calendar day in the profile store, the engine does not.
func (e *Engine) DailyVerse(ctx context.Context) DailyVerseResult {
	verse, err := e.source.RandomVerse(ctx)
	if err != nil {
		log.Printf("daily verse lookup failed, serving fallback: %v", err)
		return DailyVerseResult{Verse: FallbackDailyVerse(), Source: SourceFallback}
	}
	return DailyVerseResult{Verse: e.enrich(verse, ClassifyText(verse.TextEn)), Source: SourceRandom}
}

// retrieveCandidates runs the primary search and, when it yields nothing,
// falls through to the theme's collection. Either limit may be 0 for "no
// cap" (used by LoadMore, which paginates itself).
func (e *Engine) retrieveCandidates(ctx context.Context, goalText string, theme Theme, searchLimit, thematicLimit int) ([]Verse, MatchSource) {
	verses, err := e.source.SearchVerses(ctx, goalText, "en")
	if err != nil {
		log.Printf("verse search failed for goal, using thematic fallback: %v", err)
	}
	if len(verses) > 0 {
		if searchLimit > 0 && len(verses) > searchLimit {
			verses = verses[:searchLimit]
		}
		return verses, SourceSearch
	}

	collection, err := e.source.ThematicCollection(ctx, theme)
	if err != nil || collection == nil {
		if err != nil {
			log.Printf("thematic collection %q unavailable: %v", theme, err)
		}
		return nil, SourceThematic
	}
	verses = collection.Verses
	if thematicLimit > 0 && len(verses) > thematicLimit {
		verses = verses[:thematicLimit]
	}
	return verses, SourceThematic
}

func (e *Engine) buildResult(goalText string, theme Theme, verse Verse, source MatchSource) GoalMatchResult {
	enriched := e.enrich(verse, theme)
	return GoalMatchResult{
		Verse:             enriched,
		RelevanceScore:    RelevanceScore(goalText, enriched),
		PracticalSteps:    e.synth.PracticalSteps(theme, goalText),
		DuaRecommendation: e.synth.DuaRecommendation(theme),
		RelatedHabits:     e.synth.RelatedHabits(theme),
		Source:            source,
	}
}

// enrich fills the derived fields a raw search hit may be missing. Every
// verse leaving the engine carries at least one theme tag and a reflection.
func (e *Engine) enrich(verse Verse, theme Theme) Verse {
	if len(verse.Themes) == 0 {
		verse.Themes = []string{string(theme)}
	}
	if verse.Reflection == "" {
		verse.Reflection = e.synth.Reflection(theme)
	}
	if len(verse.PracticalGuidance) == 0 {
		entries := ThemeGuidanceEntries(theme)
		if len(entries) > 2 {
			entries = entries[:2]
		}
		verse.PracticalGuidance = entries
	}
	if verse.LifeApplication == "" {
		verse.LifeApplication = e.synth.LifeApplication(theme)
	}
	if verse.Context == "" && verse.Surah != "" {
		verse.Context = fmt.Sprintf("This verse from %s provides timeless guidance applicable to modern life challenges.", verse.Surah)
	}
	return verse
}

// FallbackDailyVerse is served whenever the scripture source cannot produce
// a daily verse. Ayat al-Kursi, embedded so the home screen always renders.
func FallbackDailyVerse() Verse {
	return Verse{
		ID:          262,
		Surah:       "Al-Baqarah",
		SurahNumber: 2,
		Ayah:        255,
		TextAr:      "اللَّهُ لَا إِلَٰهَ إِلَّا هُوَ الْحَيُّ الْقَيُّومُ",
		TextEn:      "Allah - there is no deity except Him, the Ever-Living, the Sustainer of existence.",
		Themes:      []string{"faith", "guidance"},
		Reflection:  "Ayat al-Kursi reminds us that Allah's care never sleeps; begin and end your day under His protection.",
		PracticalGuidance: []string{
			"Recite Ayat al-Kursi after each obligatory prayer",
			"Recite it before sleeping for protection through the night",
			"Reflect on one of Allah's names mentioned in the verse each day",
		},
		Context:         "The Verse of the Throne, often called the greatest verse of the Quran.",
		LifeApplication: "Recall this verse when events feel out of your control.",
	}
}
