package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
)

// RegisterGuildEvents registers guild join and leave handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildCreate)
	client.Session.AddHandler(onGuildDelete)
}

func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	logger.Info(fmt.Sprintf("📥 Joined guild: %s (%s, %d members)", g.Name, g.ID, g.MemberCount), "Guild")
}

func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		logger.Warn(fmt.Sprintf("⚠️ Guild unavailable: %s", g.ID), "Guild")
		return
	}
	logger.Info(fmt.Sprintf("📤 Left guild: %s", g.ID), "Guild")
}
