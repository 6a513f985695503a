// Package fun - slots command
package fun

import (
	"fmt"
	"math/rand"

	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

var slotEmojis = []string{"🍒", "🍋", "🍊", "🍉", "⭐", "🔔"}

// createSlotsCommand creates the slots command
func createSlotsCommand() *discord.Command {
	return discord.NewCommand(
		"slots",
		"slots game",
		"fun",
		slotsHandler,
	)
}

// slotsHandler handles the slots command
func slotsHandler(ctx *discord.CommandContext) error {
	slot1 := slotEmojis[rand.Intn(len(slotEmojis))]
	slot2 := slotEmojis[rand.Intn(len(slotEmojis))]
	slot3 := slotEmojis[rand.Intn(len(slotEmojis))]

	result := fmt.Sprintf("%s | %s | %s", slot1, slot2, slot3)

	switch {
	case slot1 == slot2 && slot2 == slot3:
		return ctx.Replyf("%s\n🎉 JACKPOT! You won! 🎉", result)
	case slot1 == slot2 || slot2 == slot3 || slot1 == slot3:
		return ctx.Replyf("%s\n✨ Nice! You got two of a kind!", result)
	default:
		return ctx.Replyf("%s\n💔 You lost. Try again!", result)
	}
}
