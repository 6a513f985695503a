// Package mod - setadmin command
package mod

import (
	"fmt"

	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
)

// createSetAdminCommand creates the setadmin command. Only the
// configured bot owner passes the dispatcher's gate for it.
func createSetAdminCommand() *discord.Command {
	return discord.NewCommand(
		"setadmin",
		"Set the admin for this server (bot owner only).",
		"mod",
		setAdminHandler,
	).WithUsage("setadmin <member>").AsOwnerOnly()
}

// setAdminHandler handles the setadmin command
func setAdminHandler(ctx *discord.CommandContext) error {
	member, err := ctx.ResolveMember(ctx.Arg(0))
	if err != nil {
		return ctx.Reply("❌ I couldn't find that member.")
	}

	guildName := ctx.GuildID()
	if guild, err := ctx.Guild(); err == nil {
		guildName = guild.Name
	}

	if err := ctx.Client.Admins.SetAdmin(ctx.GuildID(), member.User.ID, guildName); err != nil {
		logger.Error(fmt.Sprintf("Failed to persist admin for guild %s: %v", ctx.GuildID(), err), "CMD-SetAdmin")
		return ctx.Reply("❌ Failed to save the admin assignment.")
	}

	return ctx.Replyf("✅ %s is now the admin for **%s**.", member.User.Username, guildName)
}
