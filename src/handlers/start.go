/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package handlers

import (
	"fmt"
	"runtime"
	"time"

	"github.com/amarnathcjd/gogram/telegram"
)

// startHandler handles the /start command.
func startHandler(m *telegram.NewMessage) error {
	app.Store.RecordUser(m.SenderID())

	bot := m.Client.Me()
	response := fmt.Sprintf(
		"🎵 Hello %s! I am <b>%s</b>, a music downloader bot.\n\n"+
			"<b>Commands:</b>\n"+
			"• <code>/music [song name]</code> — Download music\n"+
			"• <code>/help</code> — Help\n\n"+
			"<b>Example:</b>\n<code>/music Kesariya</code>",
		m.Sender.FirstName, bot.FirstName,
	)

	_, err := m.Reply(response)
	return err
}

// helpHandler handles the /help command.
func helpHandler(m *telegram.NewMessage) error {
	app.Store.RecordUser(m.SenderID())

	response := "📌 <b>Available Commands</b>\n\n" +
		"• <code>/music [song]</code> — Download audio\n" +
		"• <code>/ping</code> — Bot latency\n\n" +
		"👑 <b>Admin Commands</b>\n" +
		"• <code>/broadcast [msg]</code>\n" +
		"• <code>/status</code>\n" +
		"• <code>/users</code>"

	_, err := m.Reply(response)
	return err
}

// pingHandler handles the /ping command.
func pingHandler(m *telegram.NewMessage) error {
	start := time.Now()

	msg, err := m.Reply("⏱️ Pinging...")
	if err != nil {
		return err
	}

	latency := time.Since(start).Milliseconds()
	uptime := time.Since(startTime).Truncate(time.Second)
	response := fmt.Sprintf(
		"<b>🏓 Pong!</b>\n\n"+
			"⏱️ <b>Latency:</b> <code>%d ms</code>\n"+
			"🕒 <b>Uptime:</b> <code>%s</code>\n"+
			"⚙️ <b>Go Routines:</b> <code>%d</code>",
		latency, uptime, runtime.NumGoroutine(),
	)

	_, err = msg.Edit(response)
	return err
}
