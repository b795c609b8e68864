package queue

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleAddSong handles the submission form.
// POST /add
func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	artist := r.FormValue("artist")

	song, err := s.store.SubmitSong(title, artist)
	if err != nil {
		s.redirectError(w, r, err)
		return
	}

	s.publishEvent(r.Context(), "song.added", song)

	setFlash(w, flashSuccess, "Song hinzugefügt!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLike toggles the caller's like on a song.
// POST /like/{id}
func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	songID, err := songIDParam(r)
	if err != nil {
		s.redirectError(w, r, err)
		return
	}

	song, err := s.store.ToggleLike(songID, sessionFrom(r).SessionID)
	if err != nil {
		s.redirectError(w, r, err)
		return
	}

	s.publishEvent(r.Context(), "song.liked", song)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDislike toggles the caller's dislike on a song.
// POST /dislike/{id}
func (s *Server) handleDislike(w http.ResponseWriter, r *http.Request) {
	songID, err := songIDParam(r)
	if err != nil {
		s.redirectError(w, r, err)
		return
	}

	song, err := s.store.ToggleDislike(songID, sessionFrom(r).SessionID)
	if err != nil {
		s.redirectError(w, r, err)
		return
	}

	s.publishEvent(r.Context(), "song.disliked", song)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleRemove deletes a played song. Only the DJ capability may do this;
// removing an already-gone ID is a silent no-op.
// POST /remove/{id}
func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	songID, err := songIDParam(r)
	if err != nil {
		s.redirectError(w, r, err)
		return
	}

	if err := s.store.RemoveSong(songID, actorFrom(r)); err != nil {
		s.redirectError(w, r, err)
		return
	}

	s.publishEvent(r.Context(), "song.removed", map[string]any{"id": songID})

	setFlash(w, flashSuccess, "Song aus der Warteschlange entfernt.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func songIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	songID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || songID <= 0 {
		return 0, &notFoundError{"Song nicht gefunden."}
	}
	return songID, nil
}
