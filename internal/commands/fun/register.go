// Package fun provides recreational commands.
package fun

import (
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// RegisterFunCommands registers all fun commands
func RegisterFunCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createEightBallCommand())
	client.CommandHandler.RegisterCommand(createCoinflipCommand())
	client.CommandHandler.RegisterCommand(createTrueFalseCommand())
	client.CommandHandler.RegisterCommand(createRollCommand())
	client.CommandHandler.RegisterCommand(createSayCommand())
	client.CommandHandler.RegisterCommand(createSlotsCommand())
	client.CommandHandler.RegisterCommand(createUptimeCommand())
}
