/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("API_ID", "12345")
	t.Setenv("API_HASH", "deadbeef")
	t.Setenv("ADMIN_IDS", "8541949664,42")
	t.Setenv("DOWNLOADS_DIR", filepath.Join(dir, "staging"))
	t.Setenv("DOWNLOAD_TIMEOUT", "30s")

	if err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if Conf.Token != "123:abc" {
		t.Errorf("Token = %q, want %q", Conf.Token, "123:abc")
	}
	if Conf.ApiId != 12345 {
		t.Errorf("ApiId = %d, want 12345", Conf.ApiId)
	}
	if len(Conf.AdminIds) != 2 || Conf.AdminIds[0] != 8541949664 || Conf.AdminIds[1] != 42 {
		t.Errorf("AdminIds = %v, want [8541949664 42]", Conf.AdminIds)
	}
	if Conf.DownloadTimeout != 30*time.Second {
		t.Errorf("DownloadTimeout = %v, want 30s", Conf.DownloadTimeout)
	}
	if Conf.MaxWorkers != 4 {
		t.Errorf("MaxWorkers = %d, want default 4", Conf.MaxWorkers)
	}
}

func TestLoadConfigRejectsZeroWorkers(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("API_ID", "12345")
	t.Setenv("API_HASH", "deadbeef")
	t.Setenv("DOWNLOADS_DIR", t.TempDir())
	t.Setenv("MAX_WORKERS", "0")

	if err := LoadConfig(); err == nil {
		t.Fatal("expected error for MAX_WORKERS=0, got nil")
	}
}
