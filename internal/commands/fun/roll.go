// Package fun - roll command
package fun

import (
	"math/rand"

	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// defaultRollMax is used when no upper bound is given.
const defaultRollMax = 100

// createRollCommand creates the roll command
func createRollCommand() *discord.Command {
	return discord.NewCommand(
		"roll",
		"Roll a number between 1 and the given max (default 100).",
		"fun",
		rollHandler,
	).WithUsage("roll [max]")
}

// rollHandler handles the roll command
func rollHandler(ctx *discord.CommandContext) error {
	max, err := ctx.IntArg(0, defaultRollMax)
	if err != nil || max < 1 {
		return ctx.Reply("🎲 Give me a whole number of at least 1, e.g. `roll 20`.")
	}

	return ctx.Replyf("🎲 You rolled: %d", rollNumber(max))
}

// rollNumber returns a uniform random integer in [1, max].
func rollNumber(max int) int {
	return rand.Intn(max) + 1
}
