// Package fun - uptime command
package fun

import (
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// createUptimeCommand creates the uptime command
func createUptimeCommand() *discord.Command {
	return discord.NewCommand(
		"uptime",
		"bots uptime",
		"fun",
		uptimeHandler,
	)
}

// uptimeHandler handles the uptime command
func uptimeHandler(ctx *discord.CommandContext) error {
	seconds := int(ctx.Client.Uptime().Seconds())

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60

	return ctx.Replyf("⏱️ Uptime: %dh %dm %ds", hours, minutes, seconds)
}
