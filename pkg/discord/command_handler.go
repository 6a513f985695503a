// Package discord provides the command handler for registering and
// dispatching prefix commands.
package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/errors"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
)

const deniedMessage = "❌ You are not authorized to use this command."

// CommandHandler manages command registration and message dispatch
type CommandHandler struct {
	client *ExtendedClient
}

// NewCommandHandler creates a new CommandHandler
func NewCommandHandler(client *ExtendedClient) *CommandHandler {
	return &CommandHandler{client: client}
}

// RegisterCommand adds a command to the registry
func (ch *CommandHandler) RegisterCommand(cmd *Command) {
	ch.client.Commands.Set(cmd.Name, cmd)
	logger.Debug("Command registered: "+cmd.Name, "CommandHandler")
}

// parseCommand splits a raw message into a command name and arguments.
// ok is false when the message does not carry the prefix or names no
// command at all.
func parseCommand(content, prefix string) (name string, args []string, ok bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	return strings.ToLower(fields[0]), fields[1:], true
}

// handleMessage is the MessageCreate handler: it parses the prefix,
// looks up the command, applies the authorization gate and runs the
// handler. discordgo calls it on its own goroutine per event, so a
// handler that sleeps (the timed vote) never blocks other commands.
func (ch *CommandHandler) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	name, args, ok := parseCommand(m.Content, ch.client.Prefix)
	if !ok {
		return
	}

	cmd, found := ch.client.Commands.Get(name)
	if !found {
		// Unknown command names are silently ignored
		return
	}

	ctx := &CommandContext{
		Session: s,
		Message: m,
		Client:  ch.client,
		Args:    args,
	}

	defer errors.RecoverMiddleware()()

	if !ch.authorize(cmd, ctx) {
		if err := ctx.Reply(deniedMessage); err != nil {
			logger.Error("Failed to send denial for "+name+": "+err.Error(), "CommandHandler")
		}
		return
	}

	if err := cmd.Run(ctx); err != nil {
		logger.Error("Error executing command "+name+": "+err.Error(), "CommandHandler")
		if h := errors.Get(); h != nil {
			h.IncrementError()
		}
		_ = ctx.Reply("❌ Something went wrong running that command.")
	}
}

// authorize is the single authorization gate: owner-only commands need
// the configured owner identity, admin-only commands need the guild's
// registered admin. Denial is a normal negative outcome, not an error.
func (ch *CommandHandler) authorize(cmd *Command, ctx *CommandContext) bool {
	guildAdmin := false
	if cmd.AdminOnly {
		guildAdmin = ch.client.Admins.IsAuthorized(ctx.GuildID(), ctx.Author().ID)
	}
	return allowed(cmd, ctx.Author().ID, ch.client.GetConfig().OwnerID, guildAdmin)
}

// allowed decides whether authorID may run cmd. An empty ownerID means
// owner-only commands deny everyone.
func allowed(cmd *Command, authorID, ownerID string, guildAdmin bool) bool {
	if cmd.OwnerOnly {
		return ownerID != "" && authorID == ownerID
	}
	if cmd.AdminOnly {
		return guildAdmin
	}
	return true
}
