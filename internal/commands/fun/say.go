// Package fun - say command
package fun

import (
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// createSayCommand creates the say command
func createSayCommand() *discord.Command {
	return discord.NewCommand(
		"say",
		"the bot will say text you enter",
		"fun",
		sayHandler,
	).WithUsage("say <text>")
}

// sayHandler handles the say command
func sayHandler(ctx *discord.CommandContext) error {
	text := ctx.ArgsFrom(0)
	if text == "" {
		return ctx.Reply("💬 Give me something to say, e.g. `say hello world`.")
	}

	return ctx.Replyf("%s says: %s", ctx.AuthorName(), text)
}
