// Package media provides poll, vote and media commands.
package media

import (
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// RegisterMediaCommands registers all media commands
func RegisterMediaCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createVoteCommand())
	client.CommandHandler.RegisterCommand(createPollCommand())
	client.CommandHandler.RegisterCommand(createTuxCommand())
	client.CommandHandler.RegisterCommand(createCatCommand())
	client.CommandHandler.RegisterCommand(createDogCommand())
	client.CommandHandler.RegisterCommand(createMemeCommand())
}
