// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (mod, fun, info, media, util)
package commands

import (
	"github.com/world-compute/LinuxBotGo/internal/commands/fun"
	"github.com/world-compute/LinuxBotGo/internal/commands/info"
	"github.com/world-compute/LinuxBotGo/internal/commands/media"
	"github.com/world-compute/LinuxBotGo/internal/commands/mod"
	"github.com/world-compute/LinuxBotGo/internal/commands/util"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Moderation commands (setadmin, kick, ban, warn)
	mod.RegisterModCommands(client)

	// Fun commands (8ball, coinflip, truefalse, roll, say, slots, uptime)
	fun.RegisterFunCommands(client)

	// Info commands (userinfo, serverinfo)
	info.RegisterInfoCommands(client)

	// Media commands (vote, poll, tux, cat, dog, meme)
	media.RegisterMediaCommands(client)

	// Utility commands (ping, hello, listcommands, help, terms)
	util.RegisterUtilCommands(client)
}
