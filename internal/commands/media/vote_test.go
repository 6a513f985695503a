package media

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

func TestCountHumans(t *testing.T) {
	tests := []struct {
		name  string
		users []*discordgo.User
		want  int
	}{
		{"empty", nil, 0},
		{
			"all humans",
			[]*discordgo.User{{ID: "1"}, {ID: "2"}, {ID: "3"}},
			3,
		},
		{
			"bots excluded",
			[]*discordgo.User{{ID: "1"}, {ID: "2", Bot: true}, {ID: "3"}, {ID: "4", Bot: true}},
			2,
		},
		{
			"only bots",
			[]*discordgo.User{{ID: "1", Bot: true}},
			0,
		},
		{
			"nil entries skipped",
			[]*discordgo.User{nil, {ID: "1"}},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countHumans(tt.users); got != tt.want {
				t.Errorf("countHumans() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollectReactorsPaginates(t *testing.T) {
	// Three full pages and a short tail; every reactor must be seen
	// exactly once and each request must resume after the previous page.
	total := 3*reactionPageSize + 17
	users := make([]*discordgo.User, total)
	for i := range users {
		users[i] = &discordgo.User{ID: fmt.Sprintf("u%05d", i)}
	}

	var afterIDs []string
	fetch := func(afterID string) ([]*discordgo.User, error) {
		afterIDs = append(afterIDs, afterID)
		start := 0
		if afterID != "" {
			for i, u := range users {
				if u.ID == afterID {
					start = i + 1
					break
				}
			}
		}
		end := start + reactionPageSize
		if end > total {
			end = total
		}
		return users[start:end], nil
	}

	got, err := collectReactors(fetch)
	if err != nil {
		t.Fatalf("collectReactors() returned error: %v", err)
	}
	if len(got) != total {
		t.Fatalf("collectReactors() returned %d users, want %d", len(got), total)
	}
	for i, u := range got {
		if u.ID != users[i].ID {
			t.Fatalf("reactor %d = %s, want %s", i, u.ID, users[i].ID)
		}
	}

	wantCalls := []string{"", users[reactionPageSize-1].ID, users[2*reactionPageSize-1].ID, users[3*reactionPageSize-1].ID}
	if len(afterIDs) != len(wantCalls) {
		t.Fatalf("fetch called %d times, want %d", len(afterIDs), len(wantCalls))
	}
	for i, want := range wantCalls {
		if afterIDs[i] != want {
			t.Errorf("call %d afterID = %q, want %q", i, afterIDs[i], want)
		}
	}
}

func TestCollectReactorsEmpty(t *testing.T) {
	got, err := collectReactors(func(afterID string) ([]*discordgo.User, error) {
		return nil, nil
	})
	if err != nil {
		t.Fatalf("collectReactors() returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("collectReactors() returned %d users, want 0", len(got))
	}
}

func TestCollectReactorsExactPageBoundary(t *testing.T) {
	// Exactly one full page: the follow-up request returns nothing and
	// the listing ends without duplicating anyone.
	users := make([]*discordgo.User, reactionPageSize)
	for i := range users {
		users[i] = &discordgo.User{ID: fmt.Sprintf("u%05d", i)}
	}

	calls := 0
	fetch := func(afterID string) ([]*discordgo.User, error) {
		calls++
		if afterID == "" {
			return users, nil
		}
		return nil, nil
	}

	got, err := collectReactors(fetch)
	if err != nil {
		t.Fatalf("collectReactors() returned error: %v", err)
	}
	if len(got) != reactionPageSize {
		t.Errorf("collectReactors() returned %d users, want %d", len(got), reactionPageSize)
	}
	if calls != 2 {
		t.Errorf("fetch called %d times, want 2", calls)
	}
}

func TestPollSessionWaitExpires(t *testing.T) {
	session := &pollSession{
		question: "test?",
		duration: 5 * time.Millisecond,
		state:    pollAnnounced,
	}

	if !session.wait(context.Background()) {
		t.Fatal("wait() = false, want true when the window expires normally")
	}

	if session.state != pollAwaitingExpiry {
		t.Errorf("state = %v, want %v (tally not yet run)", session.state, pollAwaitingExpiry)
	}
}

func TestPollSessionWaitCancelled(t *testing.T) {
	session := &pollSession{
		question: "test?",
		duration: time.Hour,
		state:    pollAnnounced,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan bool, 1)
	go func() {
		done <- session.wait(ctx)
	}()

	select {
	case got := <-done:
		if got {
			t.Error("wait() = true, want false when context is cancelled")
		}
	case <-time.After(time.Second):
		t.Fatal("wait() did not return after cancellation")
	}
}

func TestVoteDuration(t *testing.T) {
	if voteDuration != 480*time.Second {
		t.Errorf("voteDuration = %v, want 480s", voteDuration)
	}
}
