// Package fun - 8ball command
package fun

import (
	"math/rand"

	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

var eightBallResponses = []string{
	"Yes.", "No.", "Maybe.", "Definitely!",
	"Ask again later.", "I'm not sure.", "Absolutely!", "Not likely.",
}

// createEightBallCommand creates the 8ball command
func createEightBallCommand() *discord.Command {
	return discord.NewCommand(
		"8ball",
		"Ask the magic 8-ball a question.",
		"fun",
		eightBallHandler,
	).WithUsage("8ball <question>")
}

// eightBallHandler handles the 8ball command
func eightBallHandler(ctx *discord.CommandContext) error {
	if ctx.ArgsFrom(0) == "" {
		return ctx.Reply("🎱 Ask me a question, e.g. `8ball Will it rain tomorrow?`")
	}
	return ctx.Replyf("🎱 %s", eightBallResponses[rand.Intn(len(eightBallResponses))])
}
