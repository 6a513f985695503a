// Package media - timed vote command
package media

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
)

const (
	voteDuration = 480 * time.Second
	yesMarker    = "✅"
	noMarker     = "❌"

	// reactionPageSize is Discord's per-request cap on reactor listings.
	reactionPageSize = 100
)

// pollState tracks a session through its lifecycle. There is no
// cancellation command; a session only leaves awaitingExpiry early when
// the client's run context is cancelled at shutdown, in which case the
// poll is dropped without a result.
type pollState int

const (
	pollAnnounced pollState = iota
	pollAwaitingExpiry
	pollTallied
)

// pollSession is the transient state of one timed vote. Nothing is
// persisted: a restart while a session waits loses the poll.
type pollSession struct {
	question  string
	channelID string
	messageID string
	starter   string
	duration  time.Duration
	state     pollState
}

// createVoteCommand creates the vote command
func createVoteCommand() *discord.Command {
	return discord.NewCommand(
		"vote",
		"Start a timed vote. Example: vote Do you like pizza?",
		"media",
		voteHandler,
	).WithUsage("vote <question>")
}

// voteHandler announces the vote, waits out the fixed window and then
// reports the tally. discordgo runs each handler on its own goroutine,
// so the long wait here never blocks other commands.
func voteHandler(ctx *discord.CommandContext) error {
	question := ctx.ArgsFrom(0)
	if question == "" {
		return ctx.Reply("🗳️ Give me a question to vote on, e.g. `vote Do you like pizza?`")
	}

	announce := &discordgo.MessageEmbed{
		Title:       "🗳️ Vote Started",
		Description: question,
		Color:       0x3498DB,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Vote ends in 8 mins...",
		},
	}

	msg, err := ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, announce)
	if err != nil {
		return err
	}

	session := &pollSession{
		question:  question,
		channelID: ctx.Message.ChannelID,
		messageID: msg.ID,
		starter:   ctx.AuthorName(),
		duration:  voteDuration,
		state:     pollAnnounced,
	}

	for _, marker := range []string{yesMarker, noMarker} {
		if err := ctx.Session.MessageReactionAdd(session.channelID, session.messageID, marker); err != nil {
			logger.Warn(fmt.Sprintf("Failed to attach %s to vote message %s: %v", marker, session.messageID, err), "CMD-Vote")
		}
	}

	if !session.wait(ctx.Client.Context()) {
		// Shutdown while waiting: the poll is silently dropped
		logger.Info(fmt.Sprintf("Vote %q dropped during shutdown", session.question), "CMD-Vote")
		return nil
	}

	yes, no, err := session.tally(ctx.Session)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to tally vote message %s: %v", session.messageID, err), "CMD-Vote")
		return ctx.Reply("❌ I couldn't read the vote message back, the results are lost. Was it deleted?")
	}

	result := &discordgo.MessageEmbed{
		Title:       "🗳️ Vote Results",
		Description: session.question,
		Color:       0x2ECC71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: yesMarker + " Yes", Value: fmt.Sprintf("%d", yes), Inline: true},
			{Name: noMarker + " No", Value: fmt.Sprintf("%d", no), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Vote started by %s", session.starter),
		},
	}

	return ctx.ReplyEmbed(result)
}

// wait blocks until the vote window elapses. It returns false when ctx
// is cancelled first.
func (p *pollSession) wait(ctx context.Context) bool {
	p.state = pollAwaitingExpiry

	timer := time.NewTimer(p.duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// tally re-fetches the vote message and counts non-bot reactors per
// marker. The original in-memory handle is not trusted to carry live
// reaction state.
func (p *pollSession) tally(s *discordgo.Session) (yes int, no int, err error) {
	if _, err = s.ChannelMessage(p.channelID, p.messageID); err != nil {
		return 0, 0, fmt.Errorf("fetching vote message: %w", err)
	}

	yesUsers, err := p.reactors(s, yesMarker)
	if err != nil {
		return 0, 0, fmt.Errorf("listing %s reactors: %w", yesMarker, err)
	}

	noUsers, err := p.reactors(s, noMarker)
	if err != nil {
		return 0, 0, fmt.Errorf("listing %s reactors: %w", noMarker, err)
	}

	p.state = pollTallied
	return countHumans(yesUsers), countHumans(noUsers), nil
}

// reactors lists every user who reacted with the given marker.
func (p *pollSession) reactors(s *discordgo.Session, marker string) ([]*discordgo.User, error) {
	return collectReactors(func(afterID string) ([]*discordgo.User, error) {
		return s.MessageReactions(p.channelID, p.messageID, marker, reactionPageSize, "", afterID)
	})
}

// collectReactors drains a paged reactor listing. Each page holds at
// most reactionPageSize users; a short page ends the listing.
func collectReactors(fetch func(afterID string) ([]*discordgo.User, error)) ([]*discordgo.User, error) {
	var all []*discordgo.User
	afterID := ""
	for {
		page, err := fetch(afterID)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < reactionPageSize {
			return all, nil
		}
		afterID = page[len(page)-1].ID
	}
}

// countHumans counts the users in a reactor list that are not bots.
func countHumans(users []*discordgo.User) int {
	count := 0
	for _, u := range users {
		if u != nil && !u.Bot {
			count++
		}
	}
	return count
}
