/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration. Values come from the process
// environment, optionally seeded from a .env file.
type Config struct {
	Token   string `envconfig:"BOT_TOKEN" required:"true"`
	ApiId   int32  `envconfig:"API_ID" required:"true"`
	ApiHash string `envconfig:"API_HASH" required:"true"`

	// AdminIds is the fixed allow list for admin commands. It is immutable
	// for the process lifetime.
	AdminIds []int64 `envconfig:"ADMIN_IDS"`

	DownloadsDir    string        `envconfig:"DOWNLOADS_DIR" default:"downloads"`
	DownloadTimeout time.Duration `envconfig:"DOWNLOAD_TIMEOUT" default:"150s"`
	MaxWorkers      int           `envconfig:"MAX_WORKERS" default:"4"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`
}

var Conf *Config

// LoadConfig reads the .env file (if present) and the environment, then
// prepares the downloads staging directory.
func LoadConfig() error {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return fmt.Errorf("process env: %w", err)
	}

	if c.MaxWorkers < 1 {
		return fmt.Errorf("MAX_WORKERS must be at least 1, got %d", c.MaxWorkers)
	}

	if err := os.MkdirAll(c.DownloadsDir, 0755); err != nil {
		return fmt.Errorf("create downloads dir: %w", err)
	}

	Conf = &c
	return nil
}
