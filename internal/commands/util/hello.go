// Package util - hello command
package util

import (
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// createHelloCommand creates the hello command
func createHelloCommand() *discord.Command {
	return discord.NewCommand(
		"hello",
		"Say hello to the bot.",
		"util",
		func(ctx *discord.CommandContext) error {
			return ctx.Replyf("👋 Hello, <@%s>!", ctx.Author().ID)
		},
	)
}
