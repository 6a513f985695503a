// Package events registers the bot's gateway event handlers.
package events

import (
	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
)

// RegisterAll registers every event handler with the client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registering bot events...", "Events")

	RegisterReadyEvents(client)
	RegisterGuildEvents(client)
	RegisterMemberEvents(client)

	logger.Success("✅ All events registered", "Events")
}
