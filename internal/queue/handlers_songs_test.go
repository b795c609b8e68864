package queue

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleAddSong(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockStore := new(MockStore)
		pub := &capturePublisher{}
		r := newTestServer(mockStore, pub).Router()

		song := &Song{ID: 1, Title: "Mr. Brightside", Artist: "The Killers", CreatedAt: time.Now()}
		mockStore.On("SubmitSong", "Mr. Brightside", "The Killers").Return(song, nil)

		req := formRequest("POST", "/add", url.Values{
			"title":  {"Mr. Brightside"},
			"artist": {"The Killers"},
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		flash := flashFrom(t, rec.Result())
		require.NotNil(t, flash)
		assert.Equal(t, flashSuccess, flash.Category)
		assert.Equal(t, "Song hinzugefügt!", flash.Message)

		assert.Equal(t, []string{"song.added"}, pub.types())
		mockStore.AssertExpectations(t)
	})

	t.Run("validation error becomes an error flash", func(t *testing.T) {
		mockStore := new(MockStore)
		r := newTestServer(mockStore, nil).Router()

		mockStore.On("SubmitSong", "", "The Killers").
			Return(nil, &validationError{"Bitte gib einen Songtitel ein."})

		req := formRequest("POST", "/add", url.Values{"artist": {"The Killers"}})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		flash := flashFrom(t, rec.Result())
		require.NotNil(t, flash)
		assert.Equal(t, flashError, flash.Category)
		assert.Equal(t, "Bitte gib einen Songtitel ein.", flash.Message)
	})
}

func TestHandleLike(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockStore := new(MockStore)
		pub := &capturePublisher{}
		r := newTestServer(mockStore, pub).Router()

		mockStore.On("ToggleLike", int64(5), mock.Anything).
			Return(&Song{ID: 5, Likes: 1}, nil)

		req := formRequest("POST", "/like/5", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Equal(t, []string{"song.liked"}, pub.types())
	})

	t.Run("unknown song", func(t *testing.T) {
		mockStore := new(MockStore)
		r := newTestServer(mockStore, nil).Router()

		mockStore.On("ToggleLike", int64(99), mock.Anything).
			Return(nil, &notFoundError{"Song nicht gefunden."})

		req := formRequest("POST", "/like/99", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		flash := flashFrom(t, rec.Result())
		require.NotNil(t, flash)
		assert.Equal(t, flashError, flash.Category)
	})

	t.Run("non-numeric id never reaches the store", func(t *testing.T) {
		mockStore := new(MockStore)
		r := newTestServer(mockStore, nil).Router()

		req := formRequest("POST", "/like/abc", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		mockStore.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything)
	})
}

func TestHandleDislike(t *testing.T) {
	mockStore := new(MockStore)
	pub := &capturePublisher{}
	r := newTestServer(mockStore, pub).Router()

	mockStore.On("ToggleDislike", int64(3), mock.Anything).
		Return(&Song{ID: 3, Dislikes: 1}, nil)

	req := formRequest("POST", "/dislike/3", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"song.disliked"}, pub.types())
}

func TestHandleRemove(t *testing.T) {
	t.Run("without DJ capability redirects to login", func(t *testing.T) {
		mockStore := new(MockStore)
		pub := &capturePublisher{}
		r := newTestServer(mockStore, pub).Router()

		mockStore.On("RemoveSong", int64(5), mock.Anything).
			Return(&forbiddenError{"DJ login required"})

		req := formRequest("POST", "/remove/5", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		flash := flashFrom(t, rec.Result())
		require.NotNil(t, flash)
		assert.Equal(t, flashError, flash.Category)
		assert.Equal(t, "DJ login required", flash.Message)
		assert.Empty(t, pub.types())
	})

	t.Run("success", func(t *testing.T) {
		mockStore := new(MockStore)
		pub := &capturePublisher{}
		r := newTestServer(mockStore, pub).Router()

		mockStore.On("RemoveSong", int64(5), mock.Anything).Return(nil)

		req := formRequest("POST", "/remove/5", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		flash := flashFrom(t, rec.Result())
		require.NotNil(t, flash)
		assert.Equal(t, "Song aus der Warteschlange entfernt.", flash.Message)
		assert.Equal(t, []string{"song.removed"}, pub.types())
	})
}
