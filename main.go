/*
 * TuneBot - Telegram Music Downloader Bot
 *  Copyright (c) 2026 Melodx
 *
 *  Licensed under GNU GPL v3
 *  See https://github.com/melodx/tunebot
 */

package main

import (
	"fmt"
	"log"
	"time"

	"melodx/tunebot/src"
	"melodx/tunebot/src/config"
	"melodx/tunebot/src/logger"

	tg "github.com/amarnathcjd/gogram/telegram"
)

// main initializes configuration, logging and the Telegram client, then
// starts the bot and waits for a shutdown signal.
func main() {
	if err := config.LoadConfig(); err != nil {
		panic(err)
	}

	logger.Init(logger.Config{
		Level:      config.Conf.LogLevel,
		OutputPath: config.Conf.LogFile,
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     14,
	})

	clientConfig := tg.ClientConfig{
		AppID:        config.Conf.ApiId,
		AppHash:      config.Conf.ApiHash,
		FloodHandler: handleFlood,
		SessionName:  "bot",
	}

	client, err := tg.NewClient(clientConfig)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Conn()
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	err = client.LoginBot(config.Conf.Token)
	if err != nil {
		log.Fatalf("failed to login: %v", err)
	}

	if err = src.Init(client); err != nil {
		log.Fatalf("failed to init: %v", err)
	}

	client.Log.Info(fmt.Sprintf("The bot is running as @%s.", client.Me().Username))
	logger.Info("bot started", logger.String("username", client.Me().Username))

	client.Idle()
	log.Println("The bot is shutting down...")
	_ = client.Stop()
}

// handleFlood manages flood wait errors by pausing execution for the
// reported duration.
func handleFlood(err error) bool {
	if wait := tg.GetFloodWait(err); wait > 0 {
		log.Printf("A flood wait has been detected. Sleeping for %ds.", wait)
		time.Sleep(time.Duration(wait) * time.Second)
		return true
	}
	return false
}
