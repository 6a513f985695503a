// Package mod - warn command
package mod

import (
	"errors"

	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/warns"
)

// createWarnCommand creates the warn command
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Warn a user (stored in memory).",
		"mod",
		warnHandler,
	).WithUsage("warn <member> [reason]").AsAdminOnly()
}

// warnHandler handles the warn command
func warnHandler(ctx *discord.CommandContext) error {
	member, err := ctx.ResolveMember(ctx.Arg(0))
	if err != nil {
		return ctx.Reply("❌ I couldn't find that member.")
	}

	reason := ctx.ArgsFrom(1)

	count, err := ctx.Client.Warns.Warn(member.User.ID, ctx.Author().ID, reason, member.User.Bot)
	if err != nil {
		switch {
		case errors.Is(err, warns.ErrInvalidTarget):
			return ctx.Reply("🤖 You can't warn a bot.")
		case errors.Is(err, warns.ErrSelfWarn):
			return ctx.Reply("❌ You can't warn yourself.")
		}
		return err
	}

	if reason == "" {
		reason = warns.DefaultReason
	}

	return ctx.Replyf("⚠️ <@%s> has been warned. Reason: %s (Total warnings: %d)", member.User.ID, reason, count)
}
