/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package state

import (
	"sync"
	"sync/atomic"
)

// Store tracks which users have interacted with the bot and how many
// downloads completed. It is process-wide, constructed once at startup and
// passed to every handler. Nothing here is persisted; a restart loses it.
type Store struct {
	mu    sync.RWMutex
	users map[int64]struct{}

	downloads atomic.Int64
}

// Snapshot is a point-in-time read of the counters. There is no isolation
// guarantee against concurrent mutation; it is only used for status display.
type Snapshot struct {
	UserCount     int
	DownloadCount int64
}

func NewStore() *Store {
	return &Store{users: make(map[int64]struct{})}
}

// RecordUser inserts a user identifier. Idempotent.
func (s *Store) RecordUser(id int64) {
	s.mu.Lock()
	s.users[id] = struct{}{}
	s.mu.Unlock()
}

// IncrementDownloads bumps the completed-download counter by one. It is
// only called after a confirmed successful delivery.
func (s *Store) IncrementDownloads() {
	s.downloads.Add(1)
}

// Users returns a copy of the known user set, so callers iterating it (the
// broadcast fan-out) are not affected by concurrent joins.
func (s *Store) Users() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	count := len(s.users)
	s.mu.RUnlock()

	return Snapshot{
		UserCount:     count,
		DownloadCount: s.downloads.Load(),
	}
}
