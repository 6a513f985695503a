// Package util provides utility commands.
package util

import (
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// RegisterUtilCommands registers all utility commands
func RegisterUtilCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createPingCommand())
	client.CommandHandler.RegisterCommand(createHelloCommand())
	client.CommandHandler.RegisterCommand(createListCommandsCommand())
	client.CommandHandler.RegisterCommand(createHelpCommand())
	client.CommandHandler.RegisterCommand(createTermsCommand())
}
