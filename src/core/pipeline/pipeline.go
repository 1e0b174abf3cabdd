/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package pipeline

import (
	"context"
	"os"
	"strings"
	"time"

	"melodx/tunebot/src/core/dl"
	"melodx/tunebot/src/core/state"
	"melodx/tunebot/src/logger"
	"melodx/tunebot/src/utils"
)

// Extractor turns a free-text query into a downloaded audio file in the
// staging directory. The call is slow (network plus remote processing) and
// blocking; the pipeline never runs it on the caller's goroutine directly.
type Extractor interface {
	Fetch(ctx context.Context, query string) (dl.MediaResult, error)
}

// Audio is the payload handed to the delivery transport.
type Audio struct {
	Path     string
	Title    string
	Duration int // seconds, 0 means unknown
}

// Transport sends a binary audio payload plus metadata to a chat.
type Transport interface {
	SendAudio(ctx context.Context, chatID int64, audio Audio) error
}

// Pipeline orchestrates one music request: search, download, locate the
// staged file, deliver it, clean up, count. Requests from different users
// are independent and unordered; within one request the steps are strictly
// sequential.
type Pipeline struct {
	extractor Extractor
	transport Transport
	store     *state.Store

	// sem bounds how many extractor calls run at once, so a burst of
	// requests cannot spawn unbounded downloads.
	sem     chan struct{}
	timeout time.Duration
}

func New(extractor Extractor, transport Transport, store *state.Store, workers int, timeout time.Duration) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		extractor: extractor,
		transport: transport,
		store:     store,
		sem:       make(chan struct{}, workers),
		timeout:   timeout,
	}
}

// Fulfill turns a query into a delivered audio message for the requester.
// The staging file, if one was created, is removed after the delivery
// attempt whether or not delivery succeeded. The completed-download counter
// moves only on confirmed success.
func (p *Pipeline) Fulfill(ctx context.Context, query string, requester int64) (dl.MediaResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return dl.MediaResult{}, ErrEmptyQuery
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	res, err := p.offload(ctx, query)
	if err != nil {
		return dl.MediaResult{}, &SearchError{Query: query, Err: err}
	}

	path, ok := res.Resolve()
	if !ok {
		return res, ErrNoArtifact
	}

	defer func() {
		// Removing an already-gone file is a no-op, not an error.
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn("staging cleanup failed", logger.String("path", path), logger.Err(err))
		}
	}()

	if res.Duration == 0 {
		res.Duration = utils.ProbeDuration(path)
	}

	// Abort before the deliver step when the request was cancelled while
	// the download was in flight.
	if err := ctx.Err(); err != nil {
		return res, &DeliveryError{Err: err}
	}

	audio := Audio{Path: path, Title: res.Title, Duration: res.Duration}
	if err := p.transport.SendAudio(ctx, requester, audio); err != nil {
		return res, &DeliveryError{Err: err}
	}

	p.store.IncrementDownloads()
	return res, nil
}

// offload runs the extractor on the bounded worker pool and awaits the
// result. When the request context expires first, the in-flight download is
// abandoned and its artifact, should one still appear, is removed.
func (p *Pipeline) offload(ctx context.Context, query string) (dl.MediaResult, error) {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return dl.MediaResult{}, ctx.Err()
	}

	type outcome struct {
		res dl.MediaResult
		err error
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() { <-p.sem }()
		res, err := p.extractor.Fetch(ctx, query)
		done <- outcome{res: res, err: err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		go func() {
			if o := <-done; o.err == nil {
				if path, ok := o.res.Resolve(); ok {
					_ = os.Remove(path)
				}
			}
		}()
		return dl.MediaResult{}, ctx.Err()
	}
}
