// Package media - random GIF and meme commands
package media

import (
	"math/rand"

	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

var tuxGifs = []string{
	"https://tenor.com/v6VaAYimPea.gif",
	"https://tenor.com/innH4NpIbfY.gif",
	"https://tenor.com/bQfNc.gif",
	"https://tenor.com/cZRwLAu0pmc.gif",
}

var catGifs = []string{
	"https://tenor.com/mzF1AfLuqUT.gif",
	"https://tenor.com/tnE6JF92xi3.gif",
	"https://tenor.com/p56hT64wfgG.gif",
	"https://tenor.com/cva1i1Mjp8m.gif",
}

var dogGifs = []string{
	"https://tenor.com/sHLmJqelnfS.gif",
	"https://tenor.com/bHcwj.gif",
}

var memes = []string{
	"https://i.redd.it/a0v87gwzoge61.jpg",
	"https://i.redd.it/3v0fkrj0cs541.jpg",
	"https://i.imgur.com/f9XH9Zz.jpeg",
}

// pickRandom returns a random entry from a URL list.
func pickRandom(urls []string) string {
	return urls[rand.Intn(len(urls))]
}

// createTuxCommand creates the tux command
func createTuxCommand() *discord.Command {
	return discord.NewCommand(
		"tux",
		"Send a random tux GIF.",
		"media",
		func(ctx *discord.CommandContext) error {
			return ctx.Reply(pickRandom(tuxGifs))
		},
	)
}

// createCatCommand creates the cat command
func createCatCommand() *discord.Command {
	return discord.NewCommand(
		"cat",
		"Send a random cat GIF.",
		"media",
		func(ctx *discord.CommandContext) error {
			return ctx.Reply(pickRandom(catGifs))
		},
	)
}

// createDogCommand creates the dog command
func createDogCommand() *discord.Command {
	return discord.NewCommand(
		"dog",
		"Send a random dog GIF.",
		"media",
		func(ctx *discord.CommandContext) error {
			return ctx.Reply(pickRandom(dogGifs))
		},
	)
}

// createMemeCommand creates the meme command
func createMemeCommand() *discord.Command {
	return discord.NewCommand(
		"meme",
		"Send a random meme.",
		"media",
		func(ctx *discord.CommandContext) error {
			return ctx.Reply(pickRandom(memes))
		},
	)
}
