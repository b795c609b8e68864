package queue

import (
	"net/http"
)

// handleVoteGenre records the caller's genre preference. Switching genres
// moves the vote; voting the same genre again changes nothing.
// POST /vote
func (s *Server) handleVoteGenre(w http.ResponseWriter, r *http.Request) {
	genre := r.FormValue("genre")

	if err := s.store.VoteGenre(genre, sessionFrom(r).SessionID); err != nil {
		s.redirectError(w, r, err)
		return
	}

	s.publishEvent(r.Context(), "genre.voted", s.store.GenreSummary())

	setFlash(w, flashSuccess, "Danke für deine Stimme!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
