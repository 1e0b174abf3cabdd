/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package pipeline

import "errors"

var (
	// ErrEmptyQuery rejects blank input before the extractor is invoked.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrNoArtifact means the search nominally succeeded but no playable
	// file was materialized in the staging directory.
	ErrNoArtifact = errors.New("no playable audio file was produced")
)

// SearchError wraps a failure from the extraction adapter.
type SearchError struct {
	Query string
	Err   error
}

func (e *SearchError) Error() string {
	return "search " + quote(e.Query) + ": " + e.Err.Error()
}

func (e *SearchError) Unwrap() error { return e.Err }

// DeliveryError wraps a failure from the delivery transport, including a
// request cancelled before the deliver step.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return "delivery: " + e.Err.Error() }

func (e *DeliveryError) Unwrap() error { return e.Err }

func quote(s string) string {
	if len(s) > 64 {
		s = s[:64] + "…"
	}
	return "\"" + s + "\""
}
