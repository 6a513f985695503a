// Package mod - ban command
package mod

import (
	"fmt"

	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
	"github.com/world-compute/LinuxBotGo/pkg/warns"
)

// createBanCommand creates the ban command
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Ban a member from the server.",
		"mod",
		banHandler,
	).WithUsage("ban <member> [reason]").AsAdminOnly()
}

// banHandler handles the ban command
func banHandler(ctx *discord.CommandContext) error {
	member, err := ctx.ResolveMember(ctx.Arg(0))
	if err != nil {
		return ctx.Reply("❌ I couldn't find that member.")
	}

	reason := ctx.ArgsFrom(1)
	if reason == "" {
		reason = warns.DefaultReason
	}

	if err := ctx.Session.GuildBanCreateWithReason(ctx.GuildID(), member.User.ID, reason, 0); err != nil {
		logger.Error(fmt.Sprintf("Ban of %s in guild %s rejected: %v", member.User.ID, ctx.GuildID(), err), "CMD-Ban")
		return ctx.Replyf("❌ Failed to ban %s, the platform rejected the action.", member.User.Username)
	}

	return ctx.Replyf("🔨 %s was banned. Reason: %s", member.User.Username, reason)
}
