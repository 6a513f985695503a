// Package info - serverinfo command
package info

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// createServerInfoCommand creates the serverinfo command
func createServerInfoCommand() *discord.Command {
	return discord.NewCommand(
		"serverinfo",
		"Show information about the server.",
		"info",
		serverInfoHandler,
	)
}

// serverInfoHandler handles the serverinfo command
func serverInfoHandler(ctx *discord.CommandContext) error {
	guild, err := ctx.Guild()
	if err != nil {
		return ctx.Reply("❌ I couldn't fetch this server's information.")
	}

	created := "unknown"
	if ts, err := discordgo.SnowflakeTimestamp(guild.ID); err == nil {
		created = ts.Format("2006-01-02")
	}

	embed := &discordgo.MessageEmbed{
		Title: "🏠 Server Info",
		Color: 0xFFD700,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Name", Value: guild.Name, Inline: true},
			{Name: "Owner", Value: fmt.Sprintf("<@%s>", guild.OwnerID), Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "Created", Value: created, Inline: true},
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: guild.IconURL("256"),
		},
	}

	return ctx.ReplyEmbed(embed)
}
