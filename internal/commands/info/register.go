// Package info provides informational commands.
package info

import (
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// RegisterInfoCommands registers all info commands
func RegisterInfoCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createUserInfoCommand())
	client.CommandHandler.RegisterCommand(createServerInfoCommand())
}
