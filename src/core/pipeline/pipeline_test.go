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
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"melodx/tunebot/src/core/dl"
	"melodx/tunebot/src/core/state"
)

type fakeExtractor struct {
	dir     string
	id      string
	title   string
	dur     int
	noFile  bool
	err     error
	queries []string
}

func (f *fakeExtractor) Fetch(ctx context.Context, query string) (dl.MediaResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return dl.MediaResult{}, f.err
	}

	res := dl.MediaResult{
		ID:          f.id,
		Title:       f.title,
		Duration:    f.dur,
		StagingBase: filepath.Join(f.dir, f.id+".tok"),
	}
	if !f.noFile {
		path := res.StagingBase + ".mp3"
		if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
			return dl.MediaResult{}, err
		}
		res.FilePath = path
	}
	return res, nil
}

type fakeTransport struct {
	err   error
	sent  []Audio
	chats []int64
}

func (f *fakeTransport) SendAudio(ctx context.Context, chatID int64, audio Audio) error {
	if f.err != nil {
		return f.err
	}
	f.chats = append(f.chats, chatID)
	f.sent = append(f.sent, audio)
	return nil
}

func newPipeline(ex Extractor, tr Transport, store *state.Store) *Pipeline {
	return New(ex, tr, store, 2, 5*time.Second)
}

func TestFulfillDeliversAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	ex := &fakeExtractor{dir: dir, id: "abc123", title: "Kesariya", dur: 258}
	tr := &fakeTransport{}
	store := state.NewStore()

	res, err := newPipeline(ex, tr, store).Fulfill(context.Background(), "Kesariya", 777)
	if err != nil {
		t.Fatalf("Fulfill: %v", err)
	}

	if res.Title != "Kesariya" {
		t.Errorf("Title = %q, want Kesariya", res.Title)
	}
	if len(ex.queries) != 1 || ex.queries[0] != "Kesariya" {
		t.Errorf("extractor saw queries %v", ex.queries)
	}
	if len(tr.sent) != 1 {
		t.Fatalf("sent %d audios, want 1", len(tr.sent))
	}
	if tr.chats[0] != 777 {
		t.Errorf("delivered to chat %d, want 777", tr.chats[0])
	}
	if tr.sent[0].Duration != 258 {
		t.Errorf("Duration = %d, want 258", tr.sent[0].Duration)
	}

	if _, err := os.Stat(filepath.Join(dir, "abc123.tok.mp3")); !os.IsNotExist(err) {
		t.Error("staging file still exists after fulfill")
	}
	if got := store.Snapshot().DownloadCount; got != 1 {
		t.Errorf("DownloadCount = %d, want 1", got)
	}
}

func TestFulfillEmptyQuery(t *testing.T) {
	ex := &fakeExtractor{dir: t.TempDir(), id: "x"}
	store := state.NewStore()
	p := newPipeline(ex, &fakeTransport{}, store)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := p.Fulfill(context.Background(), query, 1)
		if !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Fulfill(%q) = %v, want ErrEmptyQuery", query, err)
		}
	}

	if len(ex.queries) != 0 {
		t.Errorf("extractor was invoked for blank input: %v", ex.queries)
	}
}

func TestFulfillNoArtifact(t *testing.T) {
	ex := &fakeExtractor{dir: t.TempDir(), id: "abc123", title: "Kesariya", dur: 258, noFile: true}
	store := state.NewStore()

	_, err := newPipeline(ex, &fakeTransport{}, store).Fulfill(context.Background(), "Kesariya", 1)
	if !errors.Is(err, ErrNoArtifact) {
		t.Fatalf("Fulfill = %v, want ErrNoArtifact", err)
	}

	if got := store.Snapshot().DownloadCount; got != 0 {
		t.Errorf("DownloadCount = %d, want 0", got)
	}
}

func TestFulfillSearchFailure(t *testing.T) {
	ex := &fakeExtractor{dir: t.TempDir(), err: errors.New("no search results")}
	store := state.NewStore()

	_, err := newPipeline(ex, &fakeTransport{}, store).Fulfill(context.Background(), "Kesariya", 1)

	var searchErr *SearchError
	if !errors.As(err, &searchErr) {
		t.Fatalf("Fulfill = %v, want *SearchError", err)
	}
	if got := store.Snapshot().DownloadCount; got != 0 {
		t.Errorf("DownloadCount = %d, want 0", got)
	}
}

func TestFulfillDeliveryFailureStillCleansUp(t *testing.T) {
	dir := t.TempDir()
	ex := &fakeExtractor{dir: dir, id: "abc123", title: "Kesariya", dur: 258}
	tr := &fakeTransport{err: errors.New("payload too large")}
	store := state.NewStore()

	_, err := newPipeline(ex, tr, store).Fulfill(context.Background(), "Kesariya", 1)

	var dErr *DeliveryError
	if !errors.As(err, &dErr) {
		t.Fatalf("Fulfill = %v, want *DeliveryError", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "abc123.tok.mp3")); !os.IsNotExist(err) {
		t.Error("staging file still exists after failed delivery")
	}
	if got := store.Snapshot().DownloadCount; got != 0 {
		t.Errorf("DownloadCount = %d, want 0", got)
	}
}

func TestFulfillCancelledBeforeDelivery(t *testing.T) {
	ex := &fakeExtractor{dir: t.TempDir(), id: "abc123", title: "Kesariya", dur: 258}
	tr := &fakeTransport{}
	store := state.NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newPipeline(ex, tr, store).Fulfill(ctx, "Kesariya", 1)
	if err == nil {
		t.Fatal("Fulfill succeeded on a cancelled context")
	}
	if len(tr.sent) != 0 {
		t.Error("audio was delivered despite cancellation")
	}
	if got := store.Snapshot().DownloadCount; got != 0 {
		t.Errorf("DownloadCount = %d, want 0", got)
	}
}

func TestFulfillCountsOncePerSuccess(t *testing.T) {
	dir := t.TempDir()
	store := state.NewStore()
	tr := &fakeTransport{}

	for i := 0; i < 3; i++ {
		ex := &fakeExtractor{dir: dir, id: "abc123", title: "Kesariya", dur: 258}
		if _, err := newPipeline(ex, tr, store).Fulfill(context.Background(), "Kesariya", 1); err != nil {
			t.Fatalf("Fulfill #%d: %v", i, err)
		}
	}

	if got := store.Snapshot().DownloadCount; got != 3 {
		t.Errorf("DownloadCount = %d, want 3", got)
	}
}
