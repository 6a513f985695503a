// Package util - listcommands command
package util

import (
	"fmt"
	"sort"
	"strings"

	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// createListCommandsCommand creates the listcommands command
func createListCommandsCommand() *discord.Command {
	return discord.NewCommand(
		"listcommands",
		"List all command names.",
		"util",
		listCommandsHandler,
	)
}

// listCommandsHandler handles the listcommands command
func listCommandsHandler(ctx *discord.CommandContext) error {
	prefix := ctx.Client.Prefix

	names := make([]string, 0, ctx.Client.Commands.Size())
	for name := range ctx.Client.Commands.All() {
		names = append(names, fmt.Sprintf("`%s%s`", prefix, name))
	}
	sort.Strings(names)

	return ctx.Replyf("📜 Commands: %s", strings.Join(names, ", "))
}
