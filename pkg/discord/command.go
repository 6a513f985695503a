// Package discord provides command types and structures.
package discord

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ErrMemberNotFound is returned when a target argument does not resolve
// to a member of the guild (malformed mention, unknown ID, and so on).
var ErrMemberNotFound = errors.New("member not found")

// CommandContext provides context for command execution
type CommandContext struct {
	Session *discordgo.Session
	Message *discordgo.MessageCreate
	Client  *ExtendedClient
	Args    []string
}

// Command represents a prefix text command
type Command struct {
	Name        string
	Description string
	Category    string
	Usage       string
	OwnerOnly   bool
	AdminOnly   bool
	Run         CommandRunFunc
}

// CommandRunFunc is the function type for command execution
type CommandRunFunc func(ctx *CommandContext) error

// NewCommand creates a new Command with required fields
func NewCommand(name, description, category string, run CommandRunFunc) *Command {
	return &Command{
		Name:        name,
		Description: description,
		Category:    category,
		Run:         run,
	}
}

// WithUsage sets the usage hint shown in help output
func (c *Command) WithUsage(usage string) *Command {
	c.Usage = usage
	return c
}

// AsOwnerOnly restricts the command to the configured bot owner
func (c *Command) AsOwnerOnly() *Command {
	c.OwnerOnly = true
	return c
}

// AsAdminOnly restricts the command to the guild's designated admin
func (c *Command) AsAdminOnly() *Command {
	c.AdminOnly = true
	return c
}

// Reply sends a plain text message to the invoking channel
func (ctx *CommandContext) Reply(content string) error {
	_, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, content)
	return err
}

// Replyf sends a formatted text message to the invoking channel
func (ctx *CommandContext) Replyf(format string, a ...interface{}) error {
	return ctx.Reply(fmt.Sprintf(format, a...))
}

// ReplyEmbed sends an embed to the invoking channel
func (ctx *CommandContext) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	_, err := ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, embed)
	return err
}

// Author returns the user who invoked the command
func (ctx *CommandContext) Author() *discordgo.User {
	return ctx.Message.Author
}

// AuthorName returns the invoker's display name in the guild
func (ctx *CommandContext) AuthorName() string {
	if ctx.Message.Member != nil && ctx.Message.Member.Nick != "" {
		return ctx.Message.Member.Nick
	}
	return ctx.Message.Author.Username
}

// GuildID returns the guild where the command was invoked
func (ctx *CommandContext) GuildID() string {
	return ctx.Message.GuildID
}

// Guild returns the guild where the command was invoked, preferring the
// state cache and falling back to the REST API
func (ctx *CommandContext) Guild() (*discordgo.Guild, error) {
	guild, err := ctx.Session.State.Guild(ctx.Message.GuildID)
	if err == nil {
		return guild, nil
	}
	return ctx.Session.Guild(ctx.Message.GuildID)
}

// Arg returns the argument at position i, or "" when absent
func (ctx *CommandContext) Arg(i int) string {
	if i < 0 || i >= len(ctx.Args) {
		return ""
	}
	return ctx.Args[i]
}

// ArgsFrom joins the arguments from position i onward into a single
// free-text string, as used for reasons and questions
func (ctx *CommandContext) ArgsFrom(i int) string {
	if i < 0 || i >= len(ctx.Args) {
		return ""
	}
	return strings.Join(ctx.Args[i:], " ")
}

// IntArg parses the argument at position i as an integer, returning
// def when the argument is absent
func (ctx *CommandContext) IntArg(i int, def int) (int, error) {
	raw := ctx.Arg(i)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)
var idPattern = regexp.MustCompile(`^\d+$`)

// ResolveMember resolves a `<@id>` / `<@!id>` mention or a raw user ID
// to a member of the invoking guild. Anything that does not resolve
// yields ErrMemberNotFound.
func (ctx *CommandContext) ResolveMember(arg string) (*discordgo.Member, error) {
	if arg == "" {
		return nil, ErrMemberNotFound
	}

	id := arg
	if m := mentionPattern.FindStringSubmatch(arg); m != nil {
		id = m[1]
	} else if !idPattern.MatchString(arg) {
		return nil, ErrMemberNotFound
	}

	member, err := ctx.Session.State.Member(ctx.Message.GuildID, id)
	if err == nil {
		return member, nil
	}

	member, err = ctx.Session.GuildMember(ctx.Message.GuildID, id)
	if err != nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}
