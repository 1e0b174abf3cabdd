/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package auth

// Outcome is the result of an authorization check. The caller decides what
// Denied looks like to the user; every admin command here drops it silently
// so the admin surface stays invisible to regular users.
type Outcome int

const (
	Denied Outcome = iota
	Authorized
)

// Gate restricts admin operations to a fixed allow list configured at
// startup. It is immutable after construction, so lookups need no locking.
type Gate struct {
	allowed map[int64]struct{}
}

func NewGate(ids []int64) *Gate {
	allowed := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}
	return &Gate{allowed: allowed}
}

// Check returns Authorized only for members of the allow list.
func (g *Gate) Check(id int64) Outcome {
	if _, ok := g.allowed[id]; ok {
		return Authorized
	}
	return Denied
}

// IsAdmin is a convenience wrapper around Check.
func (g *Gate) IsAdmin(id int64) bool {
	return g.Check(id) == Authorized
}
