/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package delivery

import (
	"context"
	"fmt"

	"melodx/tunebot/src/core/pipeline"

	tg "github.com/amarnathcjd/gogram/telegram"
)

// Telegram sends pipeline output and broadcast text through the bot client.
// It is the only place that knows how audio metadata maps onto Telegram
// document attributes.
type Telegram struct {
	client *tg.Client
}

func NewTelegram(client *tg.Client) *Telegram {
	return &Telegram{client: client}
}

// SendAudio uploads the staged file as an audio message. A zero duration is
// passed through as-is; Telegram then shows the file without a length.
func (t *Telegram) SendAudio(ctx context.Context, chatID int64, audio pipeline.Audio) error {
	attrs := []tg.DocumentAttribute{
		&tg.DocumentAttributeAudio{
			Title:    audio.Title,
			Duration: int32(audio.Duration),
		},
	}

	_, err := t.client.SendMedia(chatID, audio.Path, &tg.MediaOptions{
		Caption:    fmt.Sprintf("🎵 %s", audio.Title),
		Attributes: attrs,
	})
	if err != nil {
		return fmt.Errorf("send audio to %d: %w", chatID, err)
	}
	return nil
}

// SendText delivers one plain message, used by the broadcast fan-out.
func (t *Telegram) SendText(chatID int64, text string) error {
	_, err := t.client.SendMessage(chatID, text)
	return err
}
