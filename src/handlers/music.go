/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"melodx/tunebot/src/core/pipeline"
	"melodx/tunebot/src/logger"
	"melodx/tunebot/src/utils"

	"github.com/amarnathcjd/gogram/telegram"
)

// musicHandler handles the /music command: search, download, send, cleanup.
// Pipeline failures reach the user only as one generic notice; the cause is
// logged server-side.
func musicHandler(m *telegram.NewMessage) error {
	app.Store.RecordUser(m.SenderID())

	query := strings.TrimSpace(m.Args())
	if query == "" {
		_, err := m.Reply("❌ Song name required.\nExample: <code>/music Senorita</code>")
		return err
	}

	updater, err := m.Reply(fmt.Sprintf("🔍 Searching: <b>%s</b>", query))
	if err != nil {
		logger.Warn("failed to send progress reply", logger.Err(err))
		return telegram.EndGroup
	}

	res, err := app.Pipeline.Fulfill(context.Background(), query, m.ChannelID())
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyQuery) {
			_, err = updater.Edit("❌ Song name required.\nExample: <code>/music Senorita</code>")
			return err
		}

		logger.Error("music request failed",
			logger.String("query", query),
			logger.Int64("chat_id", m.ChannelID()),
			logger.Err(err),
		)
		_, err = updater.Edit("❌ Download failed. Try another song.")
		return err
	}

	_, err = updater.Edit(fmt.Sprintf(
		"✅ <b>Sent:</b> %s (%s)", res.Title, utils.SecToMin(res.Duration),
	))
	return err
}
