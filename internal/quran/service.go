package quran

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/karimosman/quranlife-api/internal/guidance"
)

const maxCollectionVerses = 5

// popularSurahs is the curated pool the random daily verse is drawn from,
// with each chapter's verse count so the pick stays in bounds.
var popularSurahs = []struct {
	Number    int
	MaxVerses int
}{
	{1, 7},     // Al-Fatiha
	{2, 286},   // Al-Baqarah
	{3, 200},   // Ali 'Imran
	{18, 110},  // Al-Kahf
	{36, 83},   // Ya-Sin
	{55, 78},   // Ar-Rahman
	{67, 30},   // Al-Mulk
	{112, 4},   // Al-Ikhlas
	{113, 5},   // Al-Falaq
	{114, 6},   // An-Nas
}

// surahContexts attaches a static thematic label and description to verses
// drawn from the curated pool.
var surahContexts = map[int]struct {
	Theme       string
	Description string
}{
	1:   {"Prayer & Worship", "The opening chapter, perfect for daily recitation and reflection"},
	2:   {"Guidance", "The longest chapter with comprehensive guidance for life"},
	3:   {"Family of Imran", "Stories of prophets and guidance for believers"},
	18:  {"Stories & Lessons", "Contains the story of the cave and other parables"},
	36:  {"Heart of Quran", "Often called the heart of the Quran"},
	55:  {"Gratitude", "Emphasizes Allah's countless blessings"},
	67:  {"Sovereignty", "About Allah's dominion and the afterlife"},
	112: {"Unity of Allah", "Declares the absolute oneness of Allah"},
	113: {"Protection", "Seeking refuge from evil"},
	114: {"Protection", "Seeking refuge in Allah from all harms"},
}

const defaultSurahTheme = "Islamic Guidance"
const defaultSurahContext = "Divine guidance for spiritual growth"

// prayerFallbackVerses are served when a search for the "prayer" theme comes
// back empty, so the most-requested collection is never blank. Embedded
// rather than fetched so an outage cannot empty it either.
var prayerFallbackVerses = []guidance.Verse{
	{ID: 52, Surah: "Al-Baqarah", SurahNumber: 2, Ayah: 45,
		TextEn:     "And seek help through patience and prayer, and indeed, it is difficult except for the humbly submissive.",
		Themes:     []string{"prayer", "patience"},
		Reflection: "Prayer is a refuge, not a burden, for the humble heart."},
	{ID: 160, Surah: "Al-Baqarah", SurahNumber: 2, Ayah: 153,
		TextEn:     "O you who have believed, seek help through patience and prayer. Indeed, Allah is with the patient.",
		Themes:     []string{"prayer", "patience"},
		Reflection: "Allah's company is promised to those who endure and pray."},
	{ID: 2107, Surah: "Al-Isra", SurahNumber: 17, Ayah: 78,
		TextEn:     "Establish prayer at the decline of the sun until the darkness of the night and the Quran of dawn.",
		Themes:     []string{"prayer"},
		Reflection: "The daily prayers mark time itself with remembrance."},
	{ID: 3385, Surah: "Al-Ankabut", SurahNumber: 29, Ayah: 45,
		TextEn:     "Recite what has been revealed to you of the Book and establish prayer. Indeed, prayer prohibits immorality and wrongdoing.",
		Themes:     []string{"prayer", "guidance"},
		Reflection: "Prayer reshapes character, not just the hour it occupies."},
	{ID: 2362, Surah: "Ta-Ha", SurahNumber: 20, Ayah: 14,
		TextEn:     "Indeed, I am Allah. There is no deity except Me, so worship Me and establish prayer for My remembrance.",
		Themes:     []string{"prayer", "faith"},
		Reflection: "Prayer exists for remembrance; remembrance steadies everything else."},
}

// Service wraps the alquran.cloud client into the engine's scripture source:
// it normalizes heterogeneous payloads into guidance.Verse records, caches
// thematic collections, and converts upstream failures into the documented
// fallbacks instead of surfacing them.
type Service struct {
	client *Client
	cache  *collectionCache
	rand   guidance.Rand
}

// Option tweaks a Service; used by tests to control time and randomness.
type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.cache = newCollectionCache(collectionTTL, now) }
}

func WithRand(r guidance.Rand) Option {
	return func(s *Service) { s.rand = r }
}

func NewService(client *Client, opts ...Option) *Service {
	s := &Service{
		client: client,
		cache:  newCollectionCache(collectionTTL, time.Now),
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// VerseByReference fetches exactly one verse. Unlike the search paths this
// one does fail: callers needing a guaranteed verse must supply their own
// fallback.
func (s *Service) VerseByReference(ctx context.Context, surah, ayah int) (guidance.Verse, error) {
	record, err := s.client.GetAyah(ctx, surah, ayah)
	if err != nil {
		return guidance.Verse{}, fmt.Errorf("verse %d:%d: %w", surah, ayah, err)
	}
	return normalizeAyah(record), nil
}

// RandomVerse picks a uniformly random verse from the curated pool and
// attaches the pool chapter's static theme label and context.
func (s *Service) RandomVerse(ctx context.Context) (guidance.Verse, error) {
	pick := popularSurahs[s.rand.Intn(len(popularSurahs))]
	ayahNumber := s.rand.Intn(pick.MaxVerses) + 1

	record, err := s.client.GetAyah(ctx, pick.Number, ayahNumber)
	if err != nil {
		return guidance.Verse{}, fmt.Errorf("random verse %d:%d: %w", pick.Number, ayahNumber, err)
	}

	verse := normalizeAyah(record)
	sc, ok := surahContexts[pick.Number]
	if !ok {
		sc.Theme = defaultSurahTheme
		sc.Description = defaultSurahContext
	}
	verse.Themes = []string{sc.Theme}
	verse.Context = sc.Description

	if audio, err := s.client.GetAudio(ctx, pick.Number, ayahNumber, ""); err == nil {
		verse.Audio = audio
	}
	return verse, nil
}

// SearchVerses delegates free-text search to the source. A failed search is
// reported through the error but always alongside an empty slice; the engine
// logs it and falls through to thematic retrieval.
func (s *Service) SearchVerses(ctx context.Context, query, language string) ([]guidance.Verse, error) {
	matches, err := s.client.Search(ctx, query, language)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	verses := make([]guidance.Verse, 0, len(matches))
	for _, match := range matches {
		verses = append(verses, guidance.Verse{
			ID:          match.GlobalNumber,
			Surah:       match.SurahName,
			SurahNumber: match.SurahNumber,
			Ayah:        match.NumberInSurah,
			TextEn:      match.Text,
		})
	}
	return verses, nil
}

// ThematicCollection builds (or serves from cache) the verse collection for
// one theme. Search failures and zero-hit searches both count as "no usable
// verses": the prayer theme then falls back to its curated list, every other
// theme yields an empty collection.
func (s *Service) ThematicCollection(ctx context.Context, theme guidance.Theme) (*guidance.ThematicCollection, error) {
	if cached, ok := s.cache.Get(theme); ok {
		return cached, nil
	}

	verses, err := s.SearchVerses(ctx, guidance.ThemeSearchPhrase(theme), "en")
	if err != nil {
		log.Printf("thematic search for %q failed: %v", theme, err)
	}
	if len(verses) > maxCollectionVerses {
		verses = verses[:maxCollectionVerses]
	}
	for i := range verses {
		if len(verses[i].Themes) == 0 {
			verses[i].Themes = []string{string(theme)}
		}
	}
	if len(verses) == 0 && theme == "prayer" {
		verses = append([]guidance.Verse(nil), prayerFallbackVerses...)
	}

	collection := &guidance.ThematicCollection{
		Theme:              theme,
		Description:        guidance.ThemeDescription(theme),
		Verses:             verses,
		PracticalGuidance:  guidance.ThemeGuidanceEntries(theme),
		RecommendedActions: guidance.ThemeRecommendedActions(theme),
	}

	// Don't pin a transient outage for the full TTL; legitimate empty
	// results and the prayer fallback are cached normally.
	if err == nil || len(verses) > 0 {
		s.cache.Set(theme, collection)
	}
	return collection, nil
}

func normalizeAyah(record *Ayah) guidance.Verse {
	return guidance.Verse{
		ID:          record.GlobalNumber,
		Surah:       record.SurahName,
		SurahNumber: record.SurahNumber,
		Ayah:        record.NumberInSurah,
		TextAr:      record.TextAr,
		TextEn:      record.TextEn,
	}
}
