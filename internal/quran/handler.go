package quran

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/karimosman/quranlife-api/internal/guidance"
	"github.com/karimosman/quranlife-api/pkg/response"
)

// Handler exposes the scripture endpoints that bypass the guidance engine:
// the recitation audio relay, direct verse lookup, and raw verse search.
type Handler struct {
	client   *Client
	service  *Service
	audioCDN string
}

const DefaultAudioCDN = "https://cdn.islamic.network/quran/audio/128"

func NewHandler(client *Client, service *Service, audioCDN string) Handler {
	if audioCDN == "" {
		audioCDN = DefaultAudioCDN
	}
	return Handler{client: client, service: service, audioCDN: audioCDN}
}

// AudioHandler relays a verse recitation. It resolves the verse's global
// number from the source metadata, then streams the mp3 from the audio CDN,
// forwarding Range headers so seeking keeps working in the player.
func (h *Handler) AudioHandler(w http.ResponseWriter, r *http.Request) {
	surah, err1 := strconv.Atoi(r.URL.Query().Get("surah"))
	ayah, err2 := strconv.Atoi(r.URL.Query().Get("ayah"))
	if err1 != nil || err2 != nil || surah < 1 || ayah < 1 {
		response.Error(w, http.StatusBadRequest, "Missing required params: surah and ayah", nil)
		return
	}
	edition := r.URL.Query().Get("edition")
	if edition == "" {
		edition = h.client.AudioEdition()
	}

	verseNumber, err := h.client.GlobalAyahNumber(r.Context(), surah, ayah, edition)
	if err != nil {
		log.Printf("audio metadata lookup failed for %d:%d: %v", surah, ayah, err)
		response.Error(w, http.StatusBadGateway, "Failed to fetch audio metadata", err.Error())
		return
	}

	audioURL := h.audioCDN + "/" + url.PathEscape(edition) + "/" + strconv.Itoa(verseNumber) + ".mp3"

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, audioURL, nil)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to build audio request", err.Error())
		return
	}
	if rangeHeader := r.Header.Get("Range"); rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}

	audioRes, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("audio fetch failed for verse %d: %v", verseNumber, err)
		response.Error(w, http.StatusBadGateway, "Failed to fetch audio file", err.Error())
		return
	}
	defer audioRes.Body.Close()

	if audioRes.StatusCode != http.StatusOK && audioRes.StatusCode != http.StatusPartialContent {
		response.Error(w, audioRes.StatusCode, "Failed to fetch audio file", nil)
		return
	}

	for _, header := range []string{
		"Content-Type", "Content-Length", "Accept-Ranges",
		"Content-Range", "Cache-Control", "ETag", "Last-Modified",
	} {
		if value := audioRes.Header.Get(header); value != "" {
			w.Header().Set(header, value)
		}
	}
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}

	w.WriteHeader(audioRes.StatusCode)
	if _, err := io.Copy(w, audioRes.Body); err != nil {
		log.Printf("audio stream interrupted for verse %d: %v", verseNumber, err)
	}
}

// VerseHandler fetches one verse by reference. This path does fail when the
// source is down; the client falls back to whatever it has cached.
func (h *Handler) VerseHandler(w http.ResponseWriter, r *http.Request) {
	surah, err1 := strconv.Atoi(chi.URLParam(r, "surah"))
	ayah, err2 := strconv.Atoi(chi.URLParam(r, "ayah"))
	if err1 != nil || err2 != nil || surah < 1 || ayah < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid verse reference", nil)
		return
	}

	verse, err := h.service.VerseByReference(r.Context(), surah, ayah)
	if err != nil {
		log.Printf("verse lookup %d:%d failed: %v", surah, ayah, err)
		response.Error(w, http.StatusBadGateway, "Failed to fetch verse", err.Error())
		return
	}
	response.Success(w, verse, "successfully")
}

// SurahHandler returns chapter metadata (name and verse count).
func (h *Handler) SurahHandler(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 || number > 114 {
		response.Error(w, http.StatusBadRequest, "Invalid surah number", nil)
		return
	}

	surah, err := h.client.GetSurah(r.Context(), number)
	if err != nil {
		log.Printf("surah lookup %d failed: %v", number, err)
		response.Error(w, http.StatusBadGateway, "Failed to fetch surah", err.Error())
		return
	}
	response.Success(w, surah, "successfully")
}

// SearchHandler exposes raw verse search for the app's explore screen.
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		response.Error(w, http.StatusBadRequest, "Missing required param: q", nil)
		return
	}
	language := r.URL.Query().Get("lang")

	verses, err := h.service.SearchVerses(r.Context(), query, language)
	if err != nil {
		// Search failure is non-fatal by contract: return the empty list.
		log.Printf("search %q failed: %v", query, err)
	}
	if verses == nil {
		verses = []guidance.Verse{}
	}
	response.Success(w, verses, "successfully")
}
