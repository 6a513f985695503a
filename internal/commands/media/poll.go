// Package media - poll command
package media

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
)

// createPollCommand creates the poll command. Unlike vote, a poll is
// never tallied by the bot; the reactions speak for themselves.
func createPollCommand() *discord.Command {
	return discord.NewCommand(
		"poll",
		"Create a yes/no poll.",
		"media",
		pollHandler,
	).WithUsage("poll <question>")
}

// pollHandler handles the poll command
func pollHandler(ctx *discord.CommandContext) error {
	question := ctx.ArgsFrom(0)
	if question == "" {
		return ctx.Reply("📊 Give me a question to poll, e.g. `poll Tabs or spaces?`")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📊 Poll",
		Description: question,
		Color:       0x9B59B6,
	}

	msg, err := ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, embed)
	if err != nil {
		return err
	}

	for _, marker := range []string{"👍", "👎"} {
		if err := ctx.Session.MessageReactionAdd(ctx.Message.ChannelID, msg.ID, marker); err != nil {
			logger.Warn(fmt.Sprintf("Failed to attach %s to poll message %s: %v", marker, msg.ID, err), "CMD-Poll")
		}
	}

	return nil
}
