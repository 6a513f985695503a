// Package util - ping command
package util

import (
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// createPingCommand creates the ping command
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"Check the bot's latency.",
		"util",
		func(ctx *discord.CommandContext) error {
			latency := ctx.Session.HeartbeatLatency().Milliseconds()
			return ctx.Replyf("🏓 Pong! %dms", latency)
		},
	)
}
