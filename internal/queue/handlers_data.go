package queue

import (
	"net/http"
)

// dataResponse is the polling snapshot the queue page refreshes from.
type dataResponse struct {
	Songs      []SongView   `json:"songs"`
	Genres     []GenreCount `json:"genres"`
	TotalVotes int          `json:"total_votes"`
	TopGenre   *string      `json:"top_genre"`
}

// handleData exposes the current queue and ballot as JSON, songs in the
// same popularity order as the page.
// GET /data
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	songs := s.store.ListSongs()
	views := make([]SongView, 0, len(songs))
	for _, song := range songs {
		views = append(views, song.View())
	}

	sum := s.store.GenreSummary()

	writeJSON(w, http.StatusOK, dataResponse{
		Songs:      views,
		Genres:     sum.Genres,
		TotalVotes: sum.TotalVotes,
		TopGenre:   sum.TopGenre,
	})
}
