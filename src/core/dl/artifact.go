/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package dl

import (
	"os"
	"path/filepath"
)

// audioExtensions is the probe order when yt-dlp does not report the final
// path: lossy formats first, then the raw container fallbacks.
var audioExtensions = []string{".mp3", ".m4a", ".webm", ".opus"}

// MediaResult is the extractor's answer for one query. FilePath is set when
// yt-dlp reported where it put the file; otherwise the artifact has to be
// located by probing StagingBase with the known audio extensions.
type MediaResult struct {
	ID       string
	Title    string
	Duration int // seconds, 0 means unknown

	FilePath    string
	StagingBase string
}

// Resolve returns the on-disk path of the downloaded audio. The reported
// path wins when it exists; extension probing is only the compatibility
// fallback for builds of yt-dlp that don't print the final filepath.
func (m MediaResult) Resolve() (string, bool) {
	if m.FilePath != "" && exists(m.FilePath) {
		return m.FilePath, true
	}

	for _, ext := range audioExtensions {
		path := m.StagingBase + ext
		if exists(path) {
			return path, true
		}
	}

	return "", false
}

func stagingTemplate(dir, token string) string {
	return filepath.Join(dir, "%(id)s."+token+".%(ext)s")
}

func stagingBase(dir, id, token string) string {
	return filepath.Join(dir, id+"."+token)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
