package queue

import (
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) SubmitSong(title, artist string) (*Song, error) {
	args := m.Called(title, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Song), args.Error(1)
}

func (m *MockStore) ListSongs() []Song {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]Song)
}

func (m *MockStore) ToggleLike(songID int64, sessionID string) (*Song, error) {
	args := m.Called(songID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Song), args.Error(1)
}

func (m *MockStore) ToggleDislike(songID int64, sessionID string) (*Song, error) {
	args := m.Called(songID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Song), args.Error(1)
}

func (m *MockStore) RemoveSong(songID int64, actor Actor) error {
	args := m.Called(songID, actor)
	return args.Error(0)
}

func (m *MockStore) VoteGenre(genre, sessionID string) error {
	args := m.Called(genre, sessionID)
	return args.Error(0)
}

func (m *MockStore) GenreSummary() Summary {
	args := m.Called()
	return args.Get(0).(Summary)
}

func (m *MockStore) SessionView(sessionID string) SessionView {
	args := m.Called(sessionID)
	return args.Get(0).(SessionView)
}
