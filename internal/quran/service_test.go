package quran

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimosman/quranlife-api/internal/guidance"
)

// seqRand replays a scripted sequence of picks.
type seqRand struct {
	values []int
	index  int
}

func (s *seqRand) Intn(n int) int {
	if s.index >= len(s.values) {
		return 0
	}
	value := s.values[s.index] % n
	s.index++
	return value
}

func TestThematicCollectionPrayerFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "data": {"count": 0, "matches": []}}`)
	}))
	defer server.Close()

	service := NewService(NewClient(server.URL, "", time.Second))

	collection, err := service.ThematicCollection(context.Background(), "prayer")
	require.NoError(t, err)
	require.NotNil(t, collection)
	require.Len(t, collection.Verses, 5)

	wantRefs := [][2]int{{2, 45}, {2, 153}, {17, 78}, {29, 45}, {20, 14}}
	for i, verse := range collection.Verses {
		assert.Equal(t, wantRefs[i][0], verse.SurahNumber)
		assert.Equal(t, wantRefs[i][1], verse.Ayah)
		assert.NotEmpty(t, verse.Themes)
	}
}

func TestThematicCollectionOtherThemesMayBeEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "data": {"count": 0, "matches": []}}`)
	}))
	defer server.Close()

	service := NewService(NewClient(server.URL, "", time.Second))

	collection, err := service.ThematicCollection(context.Background(), "wealth")
	require.NoError(t, err)
	require.NotNil(t, collection)
	assert.Empty(t, collection.Verses)
	assert.NotEmpty(t, collection.Description)
	assert.NotEmpty(t, collection.PracticalGuidance)
}

func TestThematicCollectionCapsAtFiveAndTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		matches := make([]string, 0, 8)
		for i := 1; i <= 8; i++ {
			matches = append(matches, fmt.Sprintf(
				`{"number": %d, "text": "be patient", "numberInSurah": %d, "surah": {"number": 2, "englishName": "Al-Baqarah"}}`, i, i))
		}
		fmt.Fprintf(w, `{"code": 200, "data": {"count": 8, "matches": [%s]}}`, strings.Join(matches, ","))
	}))
	defer server.Close()

	service := NewService(NewClient(server.URL, "", time.Second))

	collection, err := service.ThematicCollection(context.Background(), "patience")
	require.NoError(t, err)
	require.Len(t, collection.Verses, 5)
	for _, verse := range collection.Verses {
		assert.Equal(t, []string{"patience"}, verse.Themes)
	}
}

func TestThematicCollectionCacheHonorsTTL(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"code": 200, "data": {"count": 1, "matches": [
			{"number": 160, "text": "seek help through patience", "numberInSurah": 153, "surah": {"number": 2, "englishName": "Al-Baqarah"}}
		]}}`)
	}))
	defer server.Close()

	current := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	now := func() time.Time { return current }

	service := NewService(NewClient(server.URL, "", time.Second), WithClock(now))

	_, err := service.ThematicCollection(context.Background(), "patience")
	require.NoError(t, err)
	_, err = service.ThematicCollection(context.Background(), "patience")
	require.NoError(t, err)
	assert.Equal(t, 1, requests, "second lookup within the TTL must hit the cache")

	current = current.Add(6 * time.Minute)
	_, err = service.ThematicCollection(context.Background(), "patience")
	require.NoError(t, err)
	assert.Equal(t, 2, requests, "expired entry must be rebuilt")
}

func TestThematicCollectionDoesNotCacheFetchErrors(t *testing.T) {
	requests := 0
	healthy := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if !healthy {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"code": 200, "data": {"count": 1, "matches": [
			{"number": 160, "text": "seek help through patience", "numberInSurah": 153, "surah": {"number": 2, "englishName": "Al-Baqarah"}}
		]}}`)
	}))
	defer server.Close()

	current := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	service := NewService(NewClient(server.URL, "", time.Second), WithClock(func() time.Time { return current }))

	// Outage: the empty collection still renders but must not be pinned
	// for the full TTL.
	collection, err := service.ThematicCollection(context.Background(), "patience")
	require.NoError(t, err)
	assert.Empty(t, collection.Verses)
	assert.Equal(t, 1, requests)

	// Source recovered: the very next lookup must refetch and cache.
	healthy = true
	collection, err = service.ThematicCollection(context.Background(), "patience")
	require.NoError(t, err)
	require.Len(t, collection.Verses, 1)
	assert.Equal(t, 2, requests)

	_, err = service.ThematicCollection(context.Background(), "patience")
	require.NoError(t, err)
	assert.Equal(t, 2, requests, "recovered collection must be served from the cache")
}

func TestRandomVerseAttachesSurahContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/ayah/1:1/editions/"):
			fmt.Fprint(w, ayahEditionsPayload(1, 1, "Al-Fatihah", "1", "bismillah", "In the name of Allah"))
		case r.URL.Path == "/ayah/1:1/ar.alafasy":
			fmt.Fprint(w, `{"code": 200, "data": {"number": 1, "audio": "https://cdn.example/1.mp3", "text": "x"}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	// First pick selects the pool chapter (index 0 -> surah 1), second the
	// verse number within its bound.
	service := NewService(NewClient(server.URL, "", time.Second), WithRand(&seqRand{values: []int{0, 0}}))

	verse, err := service.RandomVerse(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, verse.SurahNumber)
	assert.Equal(t, 1, verse.Ayah)
	assert.Equal(t, []string{"Prayer & Worship"}, verse.Themes)
	assert.Equal(t, "The opening chapter, perfect for daily recitation and reflection", verse.Context)
	assert.Equal(t, "https://cdn.example/1.mp3", verse.Audio)
}

func TestRandomVerseOutageSurfacesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewService(NewClient(server.URL, "", time.Second))

	_, err := service.RandomVerse(context.Background())
	assert.Error(t, err, "the engine turns this into the fallback daily verse")
}

func TestSearchVersesNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "data": {"count": 1, "matches": [
			{"number": 2583, "text": "hearts find rest", "numberInSurah": 28, "surah": {"number": 13, "englishName": "Ar-Ra'd"}}
		]}}`)
	}))
	defer server.Close()

	service := NewService(NewClient(server.URL, "", time.Second))

	verses, err := service.SearchVerses(context.Background(), "hearts find rest", "en")
	require.NoError(t, err)
	require.Len(t, verses, 1)
	assert.Equal(t, guidance.Verse{
		ID:          2583,
		Surah:       "Ar-Ra'd",
		SurahNumber: 13,
		Ayah:        28,
		TextEn:      "hearts find rest",
	}, verses[0])
}
