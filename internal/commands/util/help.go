// Package util - help command
package util

import (
	"sort"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// createHelpCommand creates the help command
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Show this help message.",
		"util",
		helpHandler,
	)
}

// helpHandler handles the help command
func helpHandler(ctx *discord.CommandContext) error {
	prefix := ctx.Client.Prefix
	all := ctx.Client.Commands.All()

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	embed := &discordgo.MessageEmbed{
		Title: "🐧 Linux-BOT Help",
		Color: 0x2ECC71,
	}

	for _, name := range names {
		cmd := all[name]
		description := cmd.Description
		if description == "" {
			description = "No description."
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  prefix + name,
			Value: description,
		})
	}

	return ctx.ReplyEmbed(embed)
}
