package guidance

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/karimosman/quranlife-api/internal/profile"
)

const dailyVerseKeyPrefix = "quranlife-daily-verse:"

// DailyVerseKeeper pins one verse per calendar date. The engine itself is
// stateless about dates; this caller-side keeper stores the first verse
// computed for a date in the profile store and serves it for the rest of
// that day.
type DailyVerseKeeper struct {
	engine *Engine
	store  *profile.Store
	now    func() time.Time
}

func NewDailyVerseKeeper(engine *Engine, store *profile.Store, now func() time.Time) *DailyVerseKeeper {
	if now == nil {
		now = time.Now
	}
	return &DailyVerseKeeper{engine: engine, store: store, now: now}
}

func (k *DailyVerseKeeper) todayKey() string {
	return dailyVerseKeyPrefix + k.now().Format("2006-01-02")
}

// VerseForToday returns the pinned verse for the current date, computing and
// storing one if the date has not been seen yet. A broken stored entry just
// means we compute again; an embedded fallback verse means we always return
// something renderable.
func (k *DailyVerseKeeper) VerseForToday(ctx context.Context) DailyVerseResult {
	key := k.todayKey()

	if raw := k.store.Get(ctx, key, nil); raw != nil {
		var cached DailyVerseResult
		if err := json.Unmarshal(raw, &cached); err == nil && cached.Verse.SurahNumber >= 1 {
			return cached
		}
		log.Printf("stored daily verse for %s unusable, recomputing", key)
	}

	result := k.engine.DailyVerse(ctx)

	// Don't pin the hardcoded fallback for the whole day; a later call
	// should get a real verse once the source recovers.
	if result.Source != SourceFallback {
		if encoded, err := json.Marshal(result); err == nil {
			k.store.Set(ctx, key, encoded)
		}
	}
	return result
}
