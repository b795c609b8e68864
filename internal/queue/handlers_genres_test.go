package queue

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleVoteGenre(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := NewMemoryStore()
		pub := &capturePublisher{}
		r := newTestServer(store, pub).Router()

		req := formRequest("POST", "/vote", url.Values{"genre": {"Pop"}})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		flash := flashFrom(t, rec.Result())
		require.NotNil(t, flash)
		assert.Equal(t, flashSuccess, flash.Category)

		sum := store.GenreSummary()
		assert.Equal(t, 1, sum.TotalVotes)
		assert.Equal(t, []string{"genre.voted"}, pub.types())
	})

	t.Run("unknown genre", func(t *testing.T) {
		store := NewMemoryStore()
		pub := &capturePublisher{}
		r := newTestServer(store, pub).Router()

		req := formRequest("POST", "/vote", url.Values{"genre": {"Polka"}})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		flash := flashFrom(t, rec.Result())
		require.NotNil(t, flash)
		assert.Equal(t, flashError, flash.Category)
		assert.Equal(t, "Unbekanntes Genre.", flash.Message)

		assert.Equal(t, 0, store.GenreSummary().TotalVotes)
		assert.Empty(t, pub.types())
	})

	t.Run("switching genres moves the session vote", func(t *testing.T) {
		store := NewMemoryStore()
		r := newTestServer(store, nil).Router()

		first := formRequest("POST", "/vote", url.Values{"genre": {"Pop"}})
		firstRec := httptest.NewRecorder()
		r.ServeHTTP(firstRec, first)
		cookie := sessionCookieFrom(t, firstRec.Result())
		require.NotNil(t, cookie)

		second := formRequest("POST", "/vote", url.Values{"genre": {"Rock"}})
		second.AddCookie(cookie)
		secondRec := httptest.NewRecorder()
		r.ServeHTTP(secondRec, second)

		sum := store.GenreSummary()
		assert.Equal(t, 1, sum.TotalVotes)
		assert.Equal(t, 0, genreVotes(sum, "Pop"))
		assert.Equal(t, 1, genreVotes(sum, "Rock"))
	})
}
