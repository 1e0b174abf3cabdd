/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package handlers

import (
	"time"

	"melodx/tunebot/src/core/auth"
	"melodx/tunebot/src/core/broadcast"
	"melodx/tunebot/src/core/pipeline"
	"melodx/tunebot/src/core/state"

	tg "github.com/amarnathcjd/gogram/telegram"
)

var startTime = time.Now()

// App bundles the collaborators every handler needs. It is wired once in
// src.Init and shared through the package; gogram invokes handlers from many
// goroutines, so everything in here must be safe for concurrent use.
type App struct {
	Pipeline *pipeline.Pipeline
	Store    *state.Store
	Gate     *auth.Gate
	Sender   broadcast.Sender
}

var app *App

// LoadModules registers all command handlers on the client.
func LoadModules(c *tg.Client, a *App) {
	_, _ = c.UpdatesGetState()
	app = a

	c.On("command:start", startHandler)
	c.On("command:help", helpHandler)
	c.On("command:ping", pingHandler)
	c.On("command:music", musicHandler)

	c.On("command:broadcast", broadcastHandler, tg.FilterFunc(adminOnly))
	c.On("command:status", statusHandler, tg.FilterFunc(adminOnly))
	c.On("command:users", usersHandler, tg.FilterFunc(adminOnly))
}

// adminOnly drops admin commands from anyone outside the allow list. The
// drop is silent on purpose: non-admins get no reply, so nothing reveals
// which commands are admin-gated.
func adminOnly(m *tg.NewMessage) bool {
	return app.Gate.Check(m.SenderID()) == auth.Authorized
}
