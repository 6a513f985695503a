// Package info - userinfo command
package info

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// createUserInfoCommand creates the userinfo command
func createUserInfoCommand() *discord.Command {
	return discord.NewCommand(
		"userinfo",
		"Show information about a user.",
		"info",
		userInfoHandler,
	).WithUsage("userinfo [member]")
}

// userInfoHandler handles the userinfo command. With no argument it
// describes the invoker.
func userInfoHandler(ctx *discord.CommandContext) error {
	arg := ctx.Arg(0)
	if arg == "" {
		arg = ctx.Author().ID
	}

	member, err := ctx.ResolveMember(arg)
	if err != nil {
		return ctx.Reply("❌ I couldn't find that member.")
	}

	status := "offline"
	if presence, err := ctx.Session.State.Presence(ctx.GuildID(), member.User.ID); err == nil {
		status = string(presence.Status)
	}

	joined := "unknown"
	if !member.JoinedAt.IsZero() {
		joined = member.JoinedAt.Format("2006-01-02")
	}

	embed := &discordgo.MessageEmbed{
		Title: "👤 User Info",
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Name", Value: member.User.Username, Inline: true},
			{Name: "ID", Value: member.User.ID, Inline: true},
			{Name: "Status", Value: status, Inline: true},
			{Name: "Joined", Value: joined, Inline: true},
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: member.User.AvatarURL("256"),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", ctx.AuthorName()),
		},
	}

	return ctx.ReplyEmbed(embed)
}
