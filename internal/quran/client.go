package quran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL      = "https://api.alquran.cloud/v1"
	DefaultAudioEdition = "ar.alafasy" // Mishary Rashid Alafasy recitation

	arabicEdition  = "quran-uthmani"
	englishEdition = "en.asad" // Muhammad Asad translation

	defaultTimeout = 5 * time.Second
)

// The API answers 404 both for references that don't exist and for searches
// with no hits; getJSON reports it distinctly so Search can treat it as an
// empty result while the lookup endpoints keep it as an outage.
var errStatusNotFound = fmt.Errorf("%w: status 404", ErrSourceUnavailable)

// Client is a thin REST client for the alquran.cloud API. All failures map
// to ErrSourceUnavailable or ErrMalformedResponse; callers decide whether to
// fall back.
type Client struct {
	baseURL      string
	audioEdition string
	httpClient   *http.Client
}

func NewClient(baseURL, audioEdition string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if audioEdition == "" {
		audioEdition = DefaultAudioEdition
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:      baseURL,
		audioEdition: audioEdition,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) AudioEdition() string {
	return c.audioEdition
}

// Payload shapes for the slices of the API we consume.

type apiEnvelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
}

type apiEdition struct {
	Identifier string `json:"identifier"`
}

type apiSurahRef struct {
	Number        int    `json:"number"`
	Name          string `json:"name"`
	EnglishName   string `json:"englishName"`
	NumberOfAyahs int    `json:"numberOfAyahs"`
}

type apiAyah struct {
	Number        int         `json:"number"`
	Text          string      `json:"text"`
	NumberInSurah int         `json:"numberInSurah"`
	Audio         string      `json:"audio"`
	Surah         apiSurahRef `json:"surah"`
	Edition       apiEdition  `json:"edition"`
}

// Ayah is one verse with both scripts plus the metadata the adapter needs.
type Ayah struct {
	GlobalNumber  int
	NumberInSurah int
	SurahNumber   int
	SurahName     string
	TextAr        string
	TextEn        string
}

// SurahInfo is metadata for one chapter.
type SurahInfo struct {
	Number        int
	Name          string
	EnglishName   string
	NumberOfAyahs int
}

// SearchMatch is one hit from the free-text search endpoint.
type SearchMatch struct {
	GlobalNumber  int
	NumberInSurah int
	SurahNumber   int
	SurahName     string
	Text          string
}

// GetAyah fetches one verse in both the Arabic script and the English
// translation editions.
func (c *Client) GetAyah(ctx context.Context, surah, ayah int) (*Ayah, error) {
	endpoint := fmt.Sprintf("%s/ayah/%d:%d/editions/%s,%s", c.baseURL, surah, ayah, arabicEdition, englishEdition)

	var editions []apiAyah
	if err := c.getJSON(ctx, endpoint, &editions); err != nil {
		return nil, err
	}

	var arabic, english *apiAyah
	for i := range editions {
		switch editions[i].Edition.Identifier {
		case arabicEdition:
			arabic = &editions[i]
		case englishEdition:
			english = &editions[i]
		}
	}
	if arabic == nil || english == nil {
		return nil, fmt.Errorf("%w: missing arabic or english edition for %d:%d", ErrMalformedResponse, surah, ayah)
	}

	return &Ayah{
		GlobalNumber:  arabic.Number,
		NumberInSurah: arabic.NumberInSurah,
		SurahNumber:   arabic.Surah.Number,
		SurahName:     arabic.Surah.EnglishName,
		TextAr:        arabic.Text,
		TextEn:        english.Text,
	}, nil
}

// GetSurah fetches chapter metadata (name and verse count).
func (c *Client) GetSurah(ctx context.Context, number int) (*SurahInfo, error) {
	endpoint := fmt.Sprintf("%s/surah/%d", c.baseURL, number)

	var surah apiSurahRef
	if err := c.getJSON(ctx, endpoint, &surah); err != nil {
		return nil, err
	}
	if surah.Number == 0 || surah.NumberOfAyahs == 0 {
		return nil, fmt.Errorf("%w: incomplete surah payload for %d", ErrMalformedResponse, number)
	}

	return &SurahInfo{
		Number:        surah.Number,
		Name:          surah.Name,
		EnglishName:   surah.EnglishName,
		NumberOfAyahs: surah.NumberOfAyahs,
	}, nil
}

// Search runs the free-text search against the edition for the given
// language ("ar" or anything else for English). Zero matches is a valid
// empty result, not an error.
func (c *Client) Search(ctx context.Context, query, language string) ([]SearchMatch, error) {
	edition := englishEdition
	if language == "ar" {
		edition = arabicEdition
	}
	endpoint := fmt.Sprintf("%s/search/%s/%s", c.baseURL, url.PathEscape(query), edition)

	var payload struct {
		Matches []apiAyah `json:"matches"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		// The search endpoint reports "nothing found" as a 404 envelope.
		if errors.Is(err, errStatusNotFound) {
			return nil, nil
		}
		return nil, err
	}

	matches := make([]SearchMatch, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		matches = append(matches, SearchMatch{
			GlobalNumber:  m.Number,
			NumberInSurah: m.NumberInSurah,
			SurahNumber:   m.Surah.Number,
			SurahName:     m.Surah.EnglishName,
			Text:          m.Text,
		})
	}
	return matches, nil
}

// GetAudio resolves the streaming URL for one verse in the given recitation
// edition (empty means the client default).
func (c *Client) GetAudio(ctx context.Context, surah, ayah int, edition string) (string, error) {
	if edition == "" {
		edition = c.audioEdition
	}
	endpoint := fmt.Sprintf("%s/ayah/%d:%d/%s", c.baseURL, surah, ayah, url.PathEscape(edition))

	var verse apiAyah
	if err := c.getJSON(ctx, endpoint, &verse); err != nil {
		return "", err
	}
	if verse.Audio == "" {
		return "", fmt.Errorf("%w: no audio URL for %d:%d/%s", ErrMalformedResponse, surah, ayah, edition)
	}
	return verse.Audio, nil
}

// GlobalAyahNumber resolves the chapter:verse pair to the verse's global
// number, which the audio CDN keys its files by.
func (c *Client) GlobalAyahNumber(ctx context.Context, surah, ayah int, edition string) (int, error) {
	if edition == "" {
		edition = c.audioEdition
	}
	endpoint := fmt.Sprintf("%s/ayah/%d:%d/%s", c.baseURL, surah, ayah, url.PathEscape(edition))

	var verse apiAyah
	if err := c.getJSON(ctx, endpoint, &verse); err != nil {
		return 0, err
	}
	if verse.Number == 0 {
		return 0, fmt.Errorf("%w: verse number missing for %d:%d", ErrMalformedResponse, surah, ayah)
	}
	return verse.Number, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "QuranLife/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errStatusNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("scripture source returned %d for %s", resp.StatusCode, endpoint)
		return fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope.Code != http.StatusOK || len(envelope.Data) == 0 {
		return fmt.Errorf("%w: api code %d", ErrMalformedResponse, envelope.Code)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
