package quran

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ayahEditionsPayload(global, surahNum int, surahName, inSurah, textAr, textEn string) string {
	return fmt.Sprintf(`{
		"code": 200,
		"status": "OK",
		"data": [
			{"number": %d, "text": %q, "numberInSurah": %s,
			 "surah": {"number": %d, "englishName": %q, "name": "x", "numberOfAyahs": 286},
			 "edition": {"identifier": "quran-uthmani"}},
			{"number": %d, "text": %q, "numberInSurah": %s,
			 "surah": {"number": %d, "englishName": %q, "name": "x", "numberOfAyahs": 286},
			 "edition": {"identifier": "en.asad"}}
		]
	}`, global, textAr, inSurah, surahNum, surahName, global, textEn, inSurah, surahNum, surahName)
}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, "", 2*time.Second)
	return client, server
}

func TestGetAyahCombinesEditions(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ayah/2:255/editions/quran-uthmani,en.asad", r.URL.Path)
		fmt.Fprint(w, ayahEditionsPayload(262, 2, "Al-Baqarah", "255", "arabic text", "english text"))
	})
	defer server.Close()

	ayah, err := client.GetAyah(context.Background(), 2, 255)
	require.NoError(t, err)
	assert.Equal(t, 262, ayah.GlobalNumber)
	assert.Equal(t, 255, ayah.NumberInSurah)
	assert.Equal(t, 2, ayah.SurahNumber)
	assert.Equal(t, "Al-Baqarah", ayah.SurahName)
	assert.Equal(t, "arabic text", ayah.TextAr)
	assert.Equal(t, "english text", ayah.TextEn)
}

func TestGetAyahMissingEditionIsMalformed(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "data": [
			{"number": 262, "text": "only arabic", "numberInSurah": 255,
			 "surah": {"number": 2, "englishName": "Al-Baqarah"},
			 "edition": {"identifier": "quran-uthmani"}}
		]}`)
	})
	defer server.Close()

	_, err := client.GetAyah(context.Background(), 2, 255)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestGetAyahServerErrorIsUnavailable(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.GetAyah(context.Background(), 1, 1)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestGetAyahNetworkErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // closed before use: connection refused

	client := NewClient(server.URL, "", time.Second)
	_, err := client.GetAyah(context.Background(), 1, 1)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestGetAyahGarbageBodyIsMalformed(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	})
	defer server.Close()

	_, err := client.GetAyah(context.Background(), 1, 1)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestGetSurah(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah/36", r.URL.Path)
		fmt.Fprint(w, `{"code": 200, "data": {"number": 36, "name": "yaseen", "englishName": "Ya-Sin", "numberOfAyahs": 83}}`)
	})
	defer server.Close()

	surah, err := client.GetSurah(context.Background(), 36)
	require.NoError(t, err)
	assert.Equal(t, "Ya-Sin", surah.EnglishName)
	assert.Equal(t, 83, surah.NumberOfAyahs)
}

func TestSearchZeroMatchesIsNotAnError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "data": {"count": 0, "matches": []}}`)
	})
	defer server.Close()

	matches, err := client.Search(context.Background(), "nothing here", "en")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchNotFoundIsEmptyResult(t *testing.T) {
	// The live API reports "nothing found" as a 404 envelope; that is a
	// legitimate empty search, not an outage.
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code": 404, "status": "NOT FOUND", "data": "Nothing matching your search was found"}`)
	})
	defer server.Close()

	matches, err := client.Search(context.Background(), "xylophone quasar", "en")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestGetAyahNotFoundIsUnavailable(t *testing.T) {
	// For verse lookups a 404 still means the reference could not be served.
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code": 404, "status": "NOT FOUND", "data": "Invalid ayah"}`)
	})
	defer server.Close()

	_, err := client.GetAyah(context.Background(), 2, 999)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestSearchReturnsMatches(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/patience/en.asad", r.URL.Path)
		fmt.Fprint(w, `{"code": 200, "data": {"count": 1, "matches": [
			{"number": 160, "text": "seek help through patience", "numberInSurah": 153,
			 "surah": {"number": 2, "englishName": "Al-Baqarah"}}
		]}}`)
	})
	defer server.Close()

	matches, err := client.Search(context.Background(), "patience", "en")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 160, matches[0].GlobalNumber)
	assert.Equal(t, 153, matches[0].NumberInSurah)
	assert.Equal(t, "Al-Baqarah", matches[0].SurahName)
}

func TestGetAudio(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ayah/1:1/ar.alafasy", r.URL.Path)
		fmt.Fprint(w, `{"code": 200, "data": {"number": 1, "audio": "https://cdn.example/1.mp3", "text": "x"}}`)
	})
	defer server.Close()

	audioURL, err := client.GetAudio(context.Background(), 1, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/1.mp3", audioURL)
}
