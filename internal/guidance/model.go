package guidance

// Theme is a fixed category label used to route goals to relevant
// verses and guidance templates.
type Theme string

const ThemeGuidance Theme = "guidance"

// Verse is one normalized scripture unit. It is built by the quran
// adapter and never mutated afterwards; derived per-goal fields live on
// GoalMatchResult instead.
type Verse struct {
	ID                int      `json:"id"`
	Surah             string   `json:"surah"`
	SurahNumber       int      `json:"surah_number"`
	Ayah              int      `json:"ayah"`
	TextAr            string   `json:"text_ar"`
	TextEn            string   `json:"text_en"`
	Themes            []string `json:"theme"`
	Reflection        string   `json:"reflection"`
	PracticalGuidance []string `json:"practical_guidance,omitempty"`
	Audio             string   `json:"audio,omitempty"`
	Context           string   `json:"context,omitempty"`
	LifeApplication   string   `json:"life_application,omitempty"`
}

// MatchSource reports which retrieval path produced a result, so callers
// can tell a genuine search hit from a thematic or hardcoded fallback.
type MatchSource string

const (
	SourceSearch   MatchSource = "search"
	SourceThematic MatchSource = "thematic"
	SourceRandom   MatchSource = "random"
	SourceFallback MatchSource = "fallback"
)

type GoalMatchResult struct {
	Verse             Verse       `json:"verse"`
	RelevanceScore    float64     `json:"relevance_score"`
	PracticalSteps    []string    `json:"practical_steps"`
	DuaRecommendation string      `json:"dua_recommendation,omitempty"`
	RelatedHabits     []string    `json:"related_habits"`
	Source            MatchSource `json:"source"`
}

type ThematicCollection struct {
	Theme              Theme    `json:"theme"`
	Description        string   `json:"description"`
	Verses             []Verse  `json:"verses"`
	PracticalGuidance  []string `json:"practical_guidance"`
	RecommendedActions []string `json:"recommended_actions"`
}

// DailyVerseResult wraps the verse of the day together with the path that
// produced it, so the UI can show an unobtrusive notice when the remote
// source was down and the embedded fallback was served.
type DailyVerseResult struct {
	Verse  Verse       `json:"verse"`
	Source MatchSource `json:"source"`
}

type MatchGoalRequest struct {
	GoalTitle       string `json:"goal_title"`
	GoalDescription string `json:"goal_description"`
	GoalCategory    string `json:"goal_category"`
}

type LoadMoreRequest struct {
	GoalTitle       string `json:"goal_title"`
	GoalDescription string `json:"goal_description"`
	GoalCategory    string `json:"goal_category"`
	Offset          int    `json:"offset"`
	ExcludeVerseIDs []int  `json:"exclude_verse_ids"`
}
