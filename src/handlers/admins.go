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
	"strings"
	"time"

	"melodx/tunebot/src/core/broadcast"
	"melodx/tunebot/src/logger"

	"github.com/amarnathcjd/gogram/telegram"
	"github.com/shirou/gopsutil/mem"
)

// broadcastHandler handles the /broadcast command. The fan-out walks a copy
// of the known-user set; users joining mid-broadcast are not included.
func broadcastHandler(m *telegram.NewMessage) error {
	text := strings.TrimSpace(m.Args())
	if text == "" {
		_, err := m.Reply("Usage: /broadcast [message]")
		return err
	}

	recipients := app.Store.Users()
	sent := broadcast.FanOut(app.Sender, recipients, fmt.Sprintf("📢 <b>Broadcast:</b>\n%s", text))

	logger.Info("broadcast finished",
		logger.Int("recipients", len(recipients)),
		logger.Int("sent", sent),
	)

	_, err := m.Reply(fmt.Sprintf("✅ Broadcast sent to %d users", sent))
	return err
}

// statusHandler handles the /status command.
func statusHandler(m *telegram.NewMessage) error {
	snap := app.Store.Snapshot()
	uptime := time.Since(startTime).Round(time.Second)

	var sb strings.Builder
	sb.WriteString("📊 <b>Bot Status</b>\n\n")
	sb.WriteString(fmt.Sprintf("👥 <b>Users:</b> %d\n", snap.UserCount))
	sb.WriteString(fmt.Sprintf("⬇️ <b>Downloads:</b> %d\n\n", snap.DownloadCount))
	sb.WriteString(fmt.Sprintf("🕒 <b>Uptime:</b> %s\n", uptime))
	sb.WriteString(fmt.Sprintf("⚙️ <b>Go Routines:</b> %d\n", runtime.NumGoroutine()))

	if vm, err := mem.VirtualMemory(); err == nil {
		sb.WriteString(fmt.Sprintf(
			"🧠 <b>Host Memory:</b> %s / %s (%.1f%%)\n",
			humanBytes(vm.Used), humanBytes(vm.Total), vm.UsedPercent,
		))
	}

	_, err := m.Reply(sb.String())
	return err
}

// usersHandler handles the /users command.
func usersHandler(m *telegram.NewMessage) error {
	snap := app.Store.Snapshot()
	_, err := m.Reply(fmt.Sprintf("👥 Total users: %d", snap.UserCount))
	return err
}

func humanBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
