package queue

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Store owns the whole party state: the song queue, the genre tally and
// the per-session voter state. Every operation is a single in-memory
// mutation, so there is no context or I/O on this interface.
type Store interface {
	SubmitSong(title, artist string) (*Song, error)
	ListSongs() []Song
	ToggleLike(songID int64, sessionID string) (*Song, error)
	ToggleDislike(songID int64, sessionID string) (*Song, error)
	RemoveSong(songID int64, actor Actor) error
	VoteGenre(genre, sessionID string) error
	GenreSummary() Summary
	SessionView(sessionID string) SessionView
}

// voterState tracks what one browsing session has done. liked and
// disliked are mutually exclusive per song; genre holds at most one
// current choice.
type voterState struct {
	liked    map[int64]bool
	disliked map[int64]bool
	genre    string
}

// MemoryStore is the process-lifetime implementation of Store. One mutex
// serializes all mutations; concurrently arriving requests never observe
// a half-applied toggle.
type MemoryStore struct {
	mu       sync.Mutex
	nextID   int64
	songs    []*Song
	votes    map[string]int
	sessions map[string]*voterState

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		votes:    make(map[string]int),
		sessions: make(map[string]*voterState),
		now:      time.Now,
	}
}

// SubmitSong validates and appends a new song. IDs are handed out by a
// monotonic counter and are never reused, even after the song with the
// highest ID has been removed.
func (s *MemoryStore) SubmitSong(title, artist string) (*Song, error) {
	title = strings.TrimSpace(title)
	artist = strings.TrimSpace(artist)
	if title == "" {
		return nil, &validationError{"Bitte gib einen Songtitel ein."}
	}
	if artist == "" {
		return nil, &validationError{"Bitte gib einen Künstlernamen ein."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	song := &Song{
		ID:        s.nextID,
		Title:     title,
		Artist:    artist,
		CreatedAt: s.now(),
	}
	s.songs = append(s.songs, song)

	out := *song
	return &out, nil
}

// ListSongs returns the queue sorted by likes descending, ties broken by
// ascending ID, so earlier submissions with equal likes stay on top.
func (s *MemoryStore) ListSongs() []Song {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Song, 0, len(s.songs))
	for _, song := range s.songs {
		out = append(out, *song)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Likes != out[j].Likes {
			return out[i].Likes > out[j].Likes
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ToggleLike flips the session's like on a song. A second call undoes the
// first; liking a song the session had disliked clears that dislike so a
// session never counts on both sides of one song.
func (s *MemoryStore) ToggleLike(songID int64, sessionID string) (*Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	song := s.findSong(songID)
	if song == nil {
		return nil, &notFoundError{"Song nicht gefunden."}
	}

	st := s.session(sessionID)
	if st.liked[songID] {
		delete(st.liked, songID)
		song.Likes = floorDec(song.Likes)
	} else {
		st.liked[songID] = true
		song.Likes++
		if st.disliked[songID] {
			delete(st.disliked, songID)
			song.Dislikes = floorDec(song.Dislikes)
		}
	}

	out := *song
	return &out, nil
}

// ToggleDislike is ToggleLike with the two sides swapped.
func (s *MemoryStore) ToggleDislike(songID int64, sessionID string) (*Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	song := s.findSong(songID)
	if song == nil {
		return nil, &notFoundError{"Song nicht gefunden."}
	}

	st := s.session(sessionID)
	if st.disliked[songID] {
		delete(st.disliked, songID)
		song.Dislikes = floorDec(song.Dislikes)
	} else {
		st.disliked[songID] = true
		song.Dislikes++
		if st.liked[songID] {
			delete(st.liked, songID)
			song.Likes = floorDec(song.Likes)
		}
	}

	out := *song
	return &out, nil
}

// RemoveSong deletes a song once the DJ has played it. Removing an ID
// that is not in the queue is a silent no-op: repeated delete clicks on
// the same song should not surface an error to the DJ.
func (s *MemoryStore) RemoveSong(songID int64, actor Actor) error {
	if !actor.DJ {
		return &forbiddenError{"DJ login required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.songs[:0]
	for _, song := range s.songs {
		if song.ID != songID {
			kept = append(kept, song)
		}
	}
	s.songs = kept
	return nil
}

// VoteGenre records the session's current genre choice. A changed vote
// moves the count from the old genre to the new one; re-voting the same
// genre decrements and increments the same counter and nets to no change.
func (s *MemoryStore) VoteGenre(genre, sessionID string) error {
	if !validGenre(genre) {
		return &validationError{"Unbekanntes Genre."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sessionID)
	if st.genre != "" {
		s.votes[st.genre] = floorDec(s.votes[st.genre])
	}
	s.votes[genre]++
	st.genre = genre
	return nil
}

// GenreSummary tallies the ballot in enumeration order. TopGenre is the
// first genre holding the maximum count, and nil while the total is zero.
func (s *MemoryStore) GenreSummary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{Genres: make([]GenreCount, 0, len(Genres))}
	for _, g := range Genres {
		sum.TotalVotes += s.votes[g]
	}

	var top string
	topVotes := 0
	for _, g := range Genres {
		votes := s.votes[g]
		pct := 0.0
		if sum.TotalVotes > 0 {
			pct = float64(votes) / float64(sum.TotalVotes) * 100
		}
		sum.Genres = append(sum.Genres, GenreCount{Genre: g, Votes: votes, Percentage: pct})
		if votes > topVotes {
			top = g
			topVotes = votes
		}
	}
	if sum.TotalVotes > 0 && top != "" {
		sum.TopGenre = &top
	}
	return sum
}

// SessionView returns copies of the session's toggle sets and genre
// choice for rendering; the zero view is returned for unknown sessions.
func (s *MemoryStore) SessionView(sessionID string) SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		Liked:    make(map[int64]bool),
		Disliked: make(map[int64]bool),
	}
	st, ok := s.sessions[sessionID]
	if !ok {
		return view
	}
	for id := range st.liked {
		view.Liked[id] = true
	}
	for id := range st.disliked {
		view.Disliked[id] = true
	}
	view.Genre = st.genre
	return view
}

// findSong and session expect s.mu to be held.

func (s *MemoryStore) findSong(songID int64) *Song {
	for _, song := range s.songs {
		if song.ID == songID {
			return song
		}
	}
	return nil
}

func (s *MemoryStore) session(sessionID string) *voterState {
	st, ok := s.sessions[sessionID]
	if !ok {
		st = &voterState{
			liked:    make(map[int64]bool),
			disliked: make(map[int64]bool),
		}
		s.sessions[sessionID] = st
	}
	return st
}

func validGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

func floorDec(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}
