package discord

import (
	"path/filepath"
	"testing"

	"github.com/world-compute/LinuxBotGo/pkg/admins"
)

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "test" {
		t.Errorf("Name = %v, want %v", cmd.Name, "test")
	}

	if cmd.Description != "Test command" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Test command")
	}

	if cmd.Category != "test" {
		t.Errorf("Category = %v, want %v", cmd.Category, "test")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

// TestCommandRestrictions verifies the owner/admin builder methods
func TestCommandRestrictions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler)
	if cmd.OwnerOnly || cmd.AdminOnly {
		t.Error("new commands should be unrestricted by default")
	}

	cmd = cmd.AsAdminOnly()
	if !cmd.AdminOnly {
		t.Error("AdminOnly should be true after calling AsAdminOnly()")
	}

	owner := NewCommand("setadmin", "Set the admin", "mod", handler).AsOwnerOnly()
	if !owner.OwnerOnly {
		t.Error("OwnerOnly should be true after calling AsOwnerOnly()")
	}
}

// TestCommandCollection verifies registry set/get behavior
func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	if cc.Size() != 0 {
		t.Errorf("Size() = %v, want 0", cc.Size())
	}

	cmd := NewCommand("ping", "Check latency", "util", func(ctx *CommandContext) error { return nil })
	cc.Set(cmd.Name, cmd)

	got, ok := cc.Get("ping")
	if !ok {
		t.Fatal("Get(ping) not found after Set")
	}
	if got != cmd {
		t.Error("Get(ping) returned a different command")
	}

	if _, ok := cc.Get("missing"); ok {
		t.Error("Get(missing) should not be found")
	}

	// Set with the same name overwrites
	cmd2 := NewCommand("ping", "Other", "util", func(ctx *CommandContext) error { return nil })
	cc.Set(cmd2.Name, cmd2)
	if cc.Size() != 1 {
		t.Errorf("Size() = %v, want 1 after overwrite", cc.Size())
	}
}

func TestAllowed(t *testing.T) {
	run := func(ctx *CommandContext) error { return nil }
	open := NewCommand("ping", "Check latency", "util", run)
	ownerOnly := NewCommand("setadmin", "Set the admin", "mod", run).AsOwnerOnly()
	adminOnly := NewCommand("kick", "Kick a member", "mod", run).AsAdminOnly()

	tests := []struct {
		name       string
		cmd        *Command
		authorID   string
		ownerID    string
		guildAdmin bool
		want       bool
	}{
		{"open command, anyone", open, "user1", "", false, true},
		{"owner-only, matching owner", ownerOnly, "owner", "owner", false, true},
		{"owner-only, mismatching user", ownerOnly, "user1", "owner", false, false},
		{"owner-only, empty owner denies everyone", ownerOnly, "user1", "", false, false},
		{"owner-only, empty owner denies empty author", ownerOnly, "", "", false, false},
		{"admin-only, guild admin", adminOnly, "admin", "", true, true},
		{"admin-only, non-admin denied", adminOnly, "user1", "", false, false},
		{"admin-only, owner identity alone does not pass", adminOnly, "owner", "owner", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allowed(tt.cmd, tt.authorID, tt.ownerID, tt.guildAdmin); got != tt.want {
				t.Errorf("allowed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllowedAgainstRegistry(t *testing.T) {
	run := func(ctx *CommandContext) error { return nil }
	kick := NewCommand("kick", "Kick a member", "mod", run).AsAdminOnly()

	registry := admins.New(filepath.Join(t.TempDir(), "admins.json"))
	if err := registry.SetAdmin("guild1", "admin1", "Test Server"); err != nil {
		t.Fatalf("SetAdmin() returned error: %v", err)
	}

	if !allowed(kick, "admin1", "", registry.IsAuthorized("guild1", "admin1")) {
		t.Error("registered admin should pass the gate")
	}
	if allowed(kick, "user1", "", registry.IsAuthorized("guild1", "user1")) {
		t.Error("non-admin should be denied")
	}
	if allowed(kick, "admin1", "", registry.IsAuthorized("guild2", "admin1")) {
		t.Error("admin of another guild should be denied")
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		prefix   string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{"simple", "!ping", "!", "ping", nil, true},
		{"with args", "!roll 50", "!", "roll", []string{"50"}, true},
		{"free text", "!vote Do you like pizza?", "!", "vote", []string{"Do", "you", "like", "pizza?"}, true},
		{"uppercase name", "!PING", "!", "ping", nil, true},
		{"no prefix", "ping", "!", "", nil, false},
		{"prefix only", "!", "!", "", nil, false},
		{"prefix and spaces", "!   ", "!", "", nil, false},
		{"other prefix", "?ping", "!", "", nil, false},
		{"multi-char prefix", "!?help", "!?", "help", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, ok := parseCommand(tt.content, tt.prefix)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if name != tt.wantName {
				t.Errorf("name = %v, want %v", name, tt.wantName)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}
