// Package discord provides the Discord bot client and related structures.
// It wraps discordgo with additional functionality for prefix command handling.
package discord

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/admins"
	"github.com/world-compute/LinuxBotGo/pkg/config"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
	"github.com/world-compute/LinuxBotGo/pkg/warns"
)

// DiscordGoLogger wraps the custom logger to implement discordgo.Logger
// Note: discordgo.Logger is a function, not an interface
func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		logger.Info(fmt.Sprintf(format, a...), "DiscordGo")
	}
}

// ExtendedClient wraps discordgo.Session with the command registry and
// the stores the handlers depend on. The admin registry and the warning
// store are owned here and injected into every command invocation, not
// kept as package globals.
type ExtendedClient struct {
	Session        *discordgo.Session
	Commands       *CommandCollection
	CommandHandler *CommandHandler
	Admins         *admins.Registry
	Warns          *warns.Store
	Prefix         string
	StartTime      time.Time

	mu      sync.RWMutex
	isReady bool
	runCtx  context.Context
	cancel  context.CancelFunc
}

// CommandCollection holds registered commands
type CommandCollection struct {
	commands map[string]*Command
	mu       sync.RWMutex
}

// NewCommandCollection creates a new CommandCollection
func NewCommandCollection() *CommandCollection {
	return &CommandCollection{
		commands: make(map[string]*Command),
	}
}

// Set adds or updates a command
func (cc *CommandCollection) Set(name string, cmd *Command) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.commands[name] = cmd
}

// Get retrieves a command by name
func (cc *CommandCollection) Get(name string) (*Command, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	cmd, ok := cc.commands[name]
	return cmd, ok
}

// Size returns the number of commands
func (cc *CommandCollection) Size() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.commands)
}

// All returns all commands
func (cc *CommandCollection) All() map[string]*Command {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	result := make(map[string]*Command)
	for k, v := range cc.commands {
		result[k] = v
	}
	return result
}

var (
	client *ExtendedClient
	once   sync.Once
)

// Init initializes the global Discord client
func Init(token string, registry *admins.Registry, store *warns.Store) (*ExtendedClient, error) {
	var err error
	once.Do(func() {
		client, err = NewClient(token, registry, store)
	})
	return client, err
}

// Get returns the global Discord client
func Get() *ExtendedClient {
	return client
}

// NewClient creates a new ExtendedClient
func NewClient(token string, registry *admins.Registry, store *warns.Store) (*ExtendedClient, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	// Set intents. Message content and reactions are required for prefix
	// commands and the vote tally; members for welcome and moderation;
	// presences for the userinfo status field.
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildPresences |
		discordgo.IntentMessageContent

	// Configure session
	session.SyncEvents = false
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning

	c := &ExtendedClient{
		Session:  session,
		Commands: NewCommandCollection(),
		Admins:   registry,
		Warns:    store,
		Prefix:   config.Get().Prefix,
		isReady:  false,
	}

	c.CommandHandler = NewCommandHandler(c)

	return c, nil
}

// Start opens the gateway connection and begins dispatching commands
func (c *ExtendedClient) Start() error {
	c.runCtx, c.cancel = context.WithCancel(context.Background())

	// Add ready handler
	c.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.mu.Lock()
		c.isReady = true
		c.mu.Unlock()

		logger.Success("Bot connected as: "+r.User.Username, "Client")
	})

	// Add prefix command handler
	c.Session.AddHandler(c.CommandHandler.handleMessage)

	// Set start time
	c.StartTime = time.Now()

	return c.Session.Open()
}

// Stop stops the bot and closes the session. Cancelling the run context
// releases any in-flight timed polls.
func (c *ExtendedClient) Stop() error {
	c.mu.Lock()
	c.isReady = false
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	if c.Session != nil {
		return c.Session.Close()
	}
	return nil
}

// Context returns the client's run context. It is cancelled on Stop.
func (c *ExtendedClient) Context() context.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.runCtx == nil {
		return context.Background()
	}
	return c.runCtx
}

// IsReady returns true if the bot is ready
func (c *ExtendedClient) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// Uptime returns how long the bot has been running
func (c *ExtendedClient) Uptime() time.Duration {
	return time.Since(c.StartTime)
}

// GuildCount returns the number of guilds the bot is in
func (c *ExtendedClient) GuildCount() int {
	if c.Session == nil || c.Session.State == nil {
		return 0
	}
	c.Session.State.RLock()
	defer c.Session.State.RUnlock()
	return len(c.Session.State.Guilds)
}

// GetConfig returns the bot configuration
func (c *ExtendedClient) GetConfig() *config.Config {
	return config.Get()
}
