/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package utils

import "testing"

func TestSecToMin(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{-5, "0:00"},
		{42, "0:42"},
		{258, "4:18"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{90061, "1d 01:01:01"},
	}

	for _, tt := range tests {
		if got := SecToMin(tt.seconds); got != tt.want {
			t.Errorf("SecToMin(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
