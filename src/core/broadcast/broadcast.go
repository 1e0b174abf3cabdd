/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package broadcast

import (
	"melodx/tunebot/src/logger"
)

// Sender delivers one text message to one recipient.
type Sender interface {
	SendText(chatID int64, text string) error
}

// FanOut sends text to every recipient, best effort. A failed send (blocked
// bot, deactivated account) is logged and skipped; it never aborts the rest
// of the fan-out. Returns the number of successful sends.
func FanOut(s Sender, recipients []int64, text string) int {
	sent := 0
	for _, id := range recipients {
		if err := s.SendText(id, text); err != nil {
			logger.Warn("broadcast send failed", logger.Int64("chat_id", id), logger.Err(err))
			continue
		}
		sent++
	}
	return sent
}
