package guidance

import (
	"context"
	"log"
	"time"

	"github.com/karimosman/quranlife-api/pkg/config"
)

// StartScheduler warms the daily verse in the background so the first
// request of the morning does not pay the upstream round trip.
// - In dev: runs every 10 minutes.
// - In prod: runs hourly (cheap no-op once the date is pinned).
func (k *DailyVerseKeeper) StartScheduler(ctx context.Context) {
	tickerDuration := 10 * time.Minute

	appEnv := config.GetAppEnv()
	if appEnv == "production" {
		tickerDuration = time.Hour
	}

	ticker := time.NewTicker(tickerDuration)
	defer ticker.Stop()

	log.Printf("Daily verse scheduler started (%s interval)\n", tickerDuration)

	// Warm immediately on startup, then on every tick.
	k.warm(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("Daily verse scheduler stopped gracefully")
			return
		case <-ticker.C:
			k.warm(ctx)
		}
	}
}

func (k *DailyVerseKeeper) warm(ctx context.Context) {
	result := k.VerseForToday(ctx)
	if result.Source == SourceFallback {
		log.Println("Daily verse warm-up served fallback; will retry next tick")
		return
	}
	log.Printf("Daily verse ready: %s %d:%d", result.Verse.Surah, result.Verse.SurahNumber, result.Verse.Ayah)
}
