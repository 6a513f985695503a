// Package mod provides moderation commands.
// Each command is in its own file for better organization
package mod

import (
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// RegisterModCommands registers all moderation commands
func RegisterModCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createSetAdminCommand())
	client.CommandHandler.RegisterCommand(createKickCommand())
	client.CommandHandler.RegisterCommand(createBanCommand())
	client.CommandHandler.RegisterCommand(createWarnCommand())
}
