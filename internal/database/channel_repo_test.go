package database

import (
	"context"
	"testing"

	"github.com/victorivanov/famhub/internal/models"
)

func createTestChannel(t *testing.T, repo ChannelRepository, createdBy int64, private bool) *models.Channel {
	t.Helper()

	ch := &models.Channel{
		Name:      uniq("channel"),
		CreatedBy: createdBy,
		IsPrivate: private,
	}
	if err := repo.Create(context.Background(), ch); err != nil {
		t.Fatalf("creating channel: %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Delete(context.Background(), ch.ID)
	})
	return ch
}

func TestChannelRepo_CreateAddsCreatorMembership(t *testing.T) {
	pool := testPool(t)
	users := NewUserRepository(pool)
	channels := NewChannelRepository(pool)
	ctx := context.Background()

	owner := createTestUser(t, users)
	ch := createTestChannel(t, channels, owner.ID, false)

	if ch.ID == 0 {
		t.Fatal("expected generated id")
	}

	member, err := channels.IsMember(ctx, ch.ID, owner.ID)
	if err != nil {
		t.Fatalf("IsMember: %v", err)
	}
	if !member {
		t.Error("expected creator to be a member of the new channel")
	}
}

func TestChannelRepo_AddMemberIdempotent(t *testing.T) {
	pool := testPool(t)
	users := NewUserRepository(pool)
	channels := NewChannelRepository(pool)
	ctx := context.Background()

	owner := createTestUser(t, users)
	joiner := createTestUser(t, users)
	ch := createTestChannel(t, channels, owner.ID, false)

	for i := 0; i < 3; i++ {
		if err := channels.AddMember(ctx, ch.ID, joiner.ID); err != nil {
			t.Fatalf("AddMember attempt %d: %v", i+1, err)
		}
	}

	var count int
	err := pool.QueryRow(ctx,
		`SELECT count(*) FROM channel_members WHERE channel_id = $1 AND user_id = $2`,
		ch.ID, joiner.ID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("counting memberships: %v", err)
	}
	if count != 1 {
		t.Errorf("membership rows = %d, want 1", count)
	}
}

func TestChannelRepo_GetMissingReturnsNil(t *testing.T) {
	pool := testPool(t)
	channels := NewChannelRepository(pool)

	got, err := channels.GetByID(context.Background(), -1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing channel, got %+v", got)
	}
}

func TestChannelRepo_ListNewestFirst(t *testing.T) {
	pool := testPool(t)
	users := NewUserRepository(pool)
	channels := NewChannelRepository(pool)
	ctx := context.Background()

	owner := createTestUser(t, users)
	older := createTestChannel(t, channels, owner.ID, false)
	newer := createTestChannel(t, channels, owner.ID, true)

	list, err := channels.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	posOlder, posNewer := -1, -1
	for i, ch := range list {
		switch ch.ID {
		case older.ID:
			posOlder = i
		case newer.ID:
			posNewer = i
		}
	}
	if posOlder == -1 || posNewer == -1 {
		t.Fatalf("created channels missing from list (older=%d newer=%d)", posOlder, posNewer)
	}
	if posNewer > posOlder {
		t.Errorf("expected newer channel before older one, got positions %d and %d", posNewer, posOlder)
	}
}
