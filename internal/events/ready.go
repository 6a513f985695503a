package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
)

// RegisterReadyEvents registers ready and resume handlers
func RegisterReadyEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(makeOnReady(client))
	client.Session.AddHandler(onResumed)
}

func makeOnReady(client *discord.ExtendedClient) func(*discordgo.Session, *discordgo.Ready) {
	return func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Success(fmt.Sprintf("🐧 Logged in as %s, serving %d guilds", r.User.Username, len(r.Guilds)), "Ready")

		status := fmt.Sprintf("%shelp | Powered by Tux", client.Prefix)
		if err := s.UpdateGameStatus(0, status); err != nil {
			logger.Error("Failed to set presence: "+err.Error(), "Ready")
		}
	}
}

func onResumed(s *discordgo.Session, event *discordgo.Resumed) {
	logger.Info("🔄 Gateway session resumed", "Ready")
}
