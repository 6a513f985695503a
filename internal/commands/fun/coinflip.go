// Package fun - coinflip and truefalse commands
package fun

import (
	"math/rand"

	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// createCoinflipCommand creates the coinflip command
func createCoinflipCommand() *discord.Command {
	return discord.NewCommand(
		"coinflip",
		"Flip a coin.",
		"fun",
		func(ctx *discord.CommandContext) error {
			sides := []string{"Heads", "Tails"}
			return ctx.Replyf("🪙 %s", sides[rand.Intn(len(sides))])
		},
	)
}

// createTrueFalseCommand creates the truefalse command
func createTrueFalseCommand() *discord.Command {
	return discord.NewCommand(
		"truefalse",
		"true or false",
		"fun",
		func(ctx *discord.CommandContext) error {
			answers := []string{"True", "False"}
			return ctx.Replyf("hmm true or false %s", answers[rand.Intn(len(answers))])
		},
	)
}
