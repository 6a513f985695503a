// Package main is the entry point for the Linux-BOT application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goerrors "errors"

	"github.com/world-compute/LinuxBotGo/internal/commands"
	"github.com/world-compute/LinuxBotGo/internal/events"
	"github.com/world-compute/LinuxBotGo/pkg/admins"
	"github.com/world-compute/LinuxBotGo/pkg/config"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/errors"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
	"github.com/world-compute/LinuxBotGo/pkg/warns"
	"github.com/world-compute/LinuxBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting Linux-BOT...", "Main")
	logger.Info(fmt.Sprintf("Working directory: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Load the admin registry from disk. A corrupt file is fatal so a
	// bad deploy never silently wipes existing admin assignments.
	registry, err := admins.Load(cfg.AdminFile)
	if err != nil {
		if goerrors.Is(err, admins.ErrStorageCorrupt) {
			logger.Critical(fmt.Sprintf("Admin storage is corrupt, refusing to start: %v", err), "Main")
			os.Exit(1)
		}
		logger.Critical(fmt.Sprintf("Error loading admin registry: %v", err), "Main")
		os.Exit(1)
	}
	logger.Info(fmt.Sprintf("Admin registry loaded: %d guilds", registry.Size()), "Main")

	// Warnings live in memory only and reset on restart
	store := warns.NewStore()

	// Initialize web server
	webServer := web.Init()
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken, registry, store)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands using the commands package
	commands.RegisterAll(discordClient)

	// Register events using the events package
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		if err := discordClient.Stop(); err != nil {
			logger.Error(fmt.Sprintf("Error stopping Discord client: %v", err), "Main")
		}
	}(discordClient)

	logger.Success("Linux-BOT started successfully!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down Linux-BOT...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
