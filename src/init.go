/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package src

import (
	"melodx/tunebot/src/config"
	"melodx/tunebot/src/core/auth"
	"melodx/tunebot/src/core/delivery"
	"melodx/tunebot/src/core/dl"
	"melodx/tunebot/src/core/pipeline"
	"melodx/tunebot/src/core/state"
	"melodx/tunebot/src/handlers"

	tg "github.com/amarnathcjd/gogram/telegram"
)

// Init wires the usage store, admin gate, extraction adapter, delivery
// transport and download pipeline, then registers the command handlers.
func Init(client *tg.Client) error {
	store := state.NewStore()
	gate := auth.NewGate(config.Conf.AdminIds)
	sender := delivery.NewTelegram(client)

	pipe := pipeline.New(
		dl.NewExtractor(config.Conf.DownloadsDir),
		sender,
		store,
		config.Conf.MaxWorkers,
		config.Conf.DownloadTimeout,
	)

	handlers.LoadModules(client, &handlers.App{
		Pipeline: pipe,
		Store:    store,
		Gate:     gate,
		Sender:   sender,
	})

	return nil
}
