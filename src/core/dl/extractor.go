/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package dl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"
)

var errNoResults = errors.New("no search results")

// Extractor resolves a free-text query to a downloaded audio file via
// yt-dlp. Always the top search result; there is no disambiguation step.
type Extractor struct {
	dir string
}

func NewExtractor(dir string) *Extractor {
	return &Extractor{dir: dir}
}

// Fetch searches for the query and downloads the best available audio into
// the staging directory. Staging filenames carry a per-request token next to
// the media identifier, so two concurrent requests for the same song never
// collide on one path.
func (e *Extractor) Fetch(ctx context.Context, query string) (MediaResult, error) {
	token := uuid.NewString()

	dl := ytdlp.New().
		NoWarnings().
		NoPlaylist().
		ForceOverwrites().
		RestrictFilenames().
		ExtractAudio().
		AudioFormat("best").
		Output(stagingTemplate(e.dir, token))

	result, err := dl.Run(ctx, "ytsearch1:"+query)
	if err != nil {
		return MediaResult{}, fmt.Errorf("yt-dlp run: %w", err)
	}

	info, err := result.GetExtractedInfo()
	if err != nil {
		return MediaResult{}, fmt.Errorf("parse yt-dlp output: %w", err)
	}

	entry := firstTrack(info)
	if entry == nil {
		return MediaResult{}, errNoResults
	}

	m := MediaResult{
		ID:          entry.ID,
		Title:       strings.TrimSpace(deref(entry.Title)),
		StagingBase: stagingBase(e.dir, entry.ID, token),
	}
	if entry.Duration != nil && *entry.Duration > 0 {
		m.Duration = int(*entry.Duration + 0.5)
	}
	if entry.Filename != nil {
		m.FilePath = *entry.Filename
	}

	return m, nil
}

// firstTrack picks the first real media entry, skipping the search playlist
// wrapper yt-dlp emits for ytsearch queries.
func firstTrack(info []*ytdlp.ExtractedInfo) *ytdlp.ExtractedInfo {
	for _, entry := range info {
		if entry == nil || entry.ID == "" {
			continue
		}
		if entry.Type == "playlist" {
			continue
		}
		return entry
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
