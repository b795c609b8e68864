package queue

import "time"

// Genres is the fixed ballot guests vote on. The order is load-bearing:
// summaries are reported in this order and top-genre ties resolve to the
// earlier entry.
var Genres = []string{
	"Pop",
	"Rock",
	"Hip-Hop",
	"R&B",
	"Electronic",
	"House",
	"Techno",
	"Latin",
	"Schlager",
	"Indie",
}

// Song is one entry in the party queue. Title and Artist are fixed after
// submission; only the counters change, and removal is permanent.
type Song struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	CreatedAt time.Time `json:"createdAt"`
}

// timestampLayout renders submission times to the second for /data and
// the queue page.
const timestampLayout = "2006-01-02 15:04:05"

// SongView is the wire shape of a song in the /data snapshot.
type SongView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Likes     int    `json:"likes"`
	Dislikes  int    `json:"dislikes"`
	Timestamp string `json:"timestamp"`
}

func (s Song) View() SongView {
	return SongView{
		ID:        s.ID,
		Title:     s.Title,
		Artist:    s.Artist,
		Likes:     s.Likes,
		Dislikes:  s.Dislikes,
		Timestamp: s.CreatedAt.Format(timestampLayout),
	}
}

// GenreCount is one row of the genre tally.
type GenreCount struct {
	Genre      string  `json:"genre"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

// Summary is the full ballot state. TopGenre is nil while nobody has voted.
type Summary struct {
	Genres     []GenreCount `json:"genres"`
	TotalVotes int          `json:"total_votes"`
	TopGenre   *string      `json:"top_genre"`
}

// Actor identifies the caller of a privileged operation. DJ is the
// capability that gates song removal; it comes from the session claims,
// not from any server-side account.
type Actor struct {
	SessionID string
	DJ        bool
}

// SessionView is what the queue page needs to render the caller's own
// toggle state and genre choice.
type SessionView struct {
	Liked    map[int64]bool
	Disliked map[int64]bool
	Genre    string
}
