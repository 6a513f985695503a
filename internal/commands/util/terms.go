// Package util - terms command
package util

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// createTermsCommand creates the terms command
func createTermsCommand() *discord.Command {
	return discord.NewCommand(
		"terms",
		"Display the Terms of Service and Privacy Policy.",
		"util",
		termsHandler,
	)
}

// termsHandler handles the terms command
func termsHandler(ctx *discord.CommandContext) error {
	cfg := ctx.Client.GetConfig()

	embed := &discordgo.MessageEmbed{
		Title:       "📄 Terms of Service & Privacy Policy",
		Description: "Please read our Terms of Service and Privacy Policy at the links below.",
		Color:       0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "📘 Terms of Service",
				Value: fmt.Sprintf("[View Terms of Service](%s)", cfg.TermsURL),
			},
			{
				Name:  "🔐 Privacy Policy",
				Value: fmt.Sprintf("[View Privacy Policy](%s)", cfg.PrivacyURL),
			},
		},
	}

	return ctx.ReplyEmbed(embed)
}
