// Package mod - kick command
package mod

import (
	"fmt"

	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
	"github.com/world-compute/LinuxBotGo/pkg/warns"
)

// createKickCommand creates the kick command
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Kick a member from the server.",
		"mod",
		kickHandler,
	).WithUsage("kick <member> [reason]").AsAdminOnly()
}

// kickHandler handles the kick command
func kickHandler(ctx *discord.CommandContext) error {
	member, err := ctx.ResolveMember(ctx.Arg(0))
	if err != nil {
		return ctx.Reply("❌ I couldn't find that member.")
	}

	reason := ctx.ArgsFrom(1)
	if reason == "" {
		reason = warns.DefaultReason
	}

	if err := ctx.Session.GuildMemberDeleteWithReason(ctx.GuildID(), member.User.ID, reason); err != nil {
		logger.Error(fmt.Sprintf("Kick of %s in guild %s rejected: %v", member.User.ID, ctx.GuildID(), err), "CMD-Kick")
		return ctx.Replyf("❌ Failed to kick %s, the platform rejected the action.", member.User.Username)
	}

	return ctx.Replyf("👢 %s was kicked. Reason: %s", member.User.Username, reason)
}
