package discord

import (
	"path/filepath"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/admins"
	"github.com/world-compute/LinuxBotGo/pkg/warns"
)

func TestNewClientIntents(t *testing.T) {
	registry := admins.New(filepath.Join(t.TempDir(), "admins.json"))
	c, err := NewClient("test-token", registry, warns.NewStore())
	if err != nil {
		t.Fatalf("NewClient() returned error: %v", err)
	}

	tests := []struct {
		name   string
		intent discordgo.Intent
	}{
		{"guilds", discordgo.IntentsGuilds},
		{"guild messages", discordgo.IntentsGuildMessages},
		{"guild members", discordgo.IntentsGuildMembers},
		{"guild message reactions", discordgo.IntentsGuildMessageReactions},
		{"guild presences", discordgo.IntentsGuildPresences},
		{"message content", discordgo.IntentMessageContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c.Session.Identify.Intents&tt.intent == 0 {
				t.Errorf("intent %s not set", tt.name)
			}
		})
	}
}

func TestNewClientWiresStores(t *testing.T) {
	registry := admins.New(filepath.Join(t.TempDir(), "admins.json"))
	store := warns.NewStore()

	c, err := NewClient("test-token", registry, store)
	if err != nil {
		t.Fatalf("NewClient() returned error: %v", err)
	}

	if c.Admins != registry {
		t.Error("Admins registry not wired into the client")
	}
	if c.Warns != store {
		t.Error("Warning store not wired into the client")
	}
	if c.CommandHandler == nil {
		t.Error("CommandHandler not initialized")
	}
	if c.Commands == nil {
		t.Error("CommandCollection not initialized")
	}
}
