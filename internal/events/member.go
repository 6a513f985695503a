package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
)

// RegisterMemberEvents registers member join and leave handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMemberAdd)
	client.Session.AddHandler(onMemberRemove)
}

// onMemberAdd greets new members in the guild's system channel, falling
// back to the first text channel the bot can send to.
func onMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.User == nil || m.User.Bot {
		return
	}

	logger.Info(fmt.Sprintf("👤 Member joined %s: %s", m.GuildID, m.User.Username), "Member")

	channelID := welcomeChannel(s, m.GuildID)
	if channelID == "" {
		return
	}

	welcome := fmt.Sprintf("👋 Welcome to the server, <@%s>!", m.User.ID)
	if _, err := s.ChannelMessageSend(channelID, welcome); err != nil {
		logger.Error("Failed to send welcome message: "+err.Error(), "Member")
	}
}

func onMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	if m.User == nil {
		return
	}
	logger.Info(fmt.Sprintf("👤 Member left %s: %s", m.GuildID, m.User.Username), "Member")
}

// welcomeChannel picks the channel for greeting messages. Returns an
// empty string when the guild has no usable text channel.
func welcomeChannel(s *discordgo.Session, guildID string) string {
	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		guild, err = s.Guild(guildID)
		if err != nil || guild == nil {
			return ""
		}
	}

	if guild.SystemChannelID != "" {
		return guild.SystemChannelID
	}

	channels := guild.Channels
	if len(channels) == 0 {
		channels, err = s.GuildChannels(guildID)
		if err != nil {
			return ""
		}
	}

	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		perms, err := s.UserChannelPermissions(s.State.User.ID, ch.ID)
		if err != nil {
			continue
		}
		if perms&discordgo.PermissionSendMessages != 0 {
			return ch.ID
		}
	}

	return ""
}
