package session

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "abc-123_X", NormalizeID("abc-123_X"))
	assert.Equal(t, "abc123", NormalizeID("  abc 123 !?"))
	assert.Equal(t, "", NormalizeID("!!! ???"))
	assert.Equal(t, "", NormalizeID(""))

	long := strings.Repeat("a", 100)
	assert.Len(t, NormalizeID(long), 64)
}

func TestStoreRememberAndRecentUserTexts(t *testing.T) {
	store := NewStore(0)

	store.Remember("s1", RoleUser, "bonjour")
	store.Remember("s1", RoleAI, "salut")
	store.Remember("s1", RoleUser, "parle moi de ses projets")

	texts := store.RecentUserTexts("s1")
	require.Len(t, texts, 2)
	assert.Equal(t, "bonjour", texts[0])
	assert.Equal(t, "parle moi de ses projets", texts[1])
}

func TestStoreEvictsOldestBeyondCapacity(t *testing.T) {
	store := NewStore(0)

	for i := 1; i <= 7; i++ {
		store.Remember("s1", RoleUser, fmt.Sprintf("msg-%d", i))
	}

	turns := store.Turns("s1")
	require.Len(t, turns, MaxTurns)
	// Oldest evicted first: msg-1 is gone, msg-2..msg-7 remain in order.
	assert.Equal(t, "msg-2", turns[0].Text)
	assert.Equal(t, "msg-7", turns[len(turns)-1].Text)
}

func TestStoreEmptySessionIDIsNoop(t *testing.T) {
	store := NewStore(0)

	store.Remember("", RoleUser, "hello")

	assert.Empty(t, store.RecentUserTexts(""))
	assert.Empty(t, store.Turns(""))
}

func TestStoreUnknownSession(t *testing.T) {
	store := NewStore(0)
	assert.Empty(t, store.RecentUserTexts("ghost"))
}

func TestStoreClearExpired(t *testing.T) {
	store := NewStore(time.Minute)

	store.Remember("old", RoleUser, "hello")
	store.Remember("fresh", RoleUser, "salut")

	deleted := store.ClearExpired(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 2, deleted)
	assert.Empty(t, store.RecentUserTexts("old"))
}

func TestStoreClearExpiredWithoutTTL(t *testing.T) {
	store := NewStore(0)
	store.Remember("s1", RoleUser, "hello")

	deleted := store.ClearExpired(time.Now().Add(24 * time.Hour))
	assert.Zero(t, deleted)
	assert.Len(t, store.RecentUserTexts("s1"), 1)
}

func TestStoreConcurrentSessionsDoNotInterfere(t *testing.T) {
	store := NewStore(0)

	var wg sync.WaitGroup
	for s := 0; s < 8; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", s)
			for i := 0; i < 20; i++ {
				store.Remember(id, RoleUser, fmt.Sprintf("msg-%d", i))
				store.RecentUserTexts(id)
			}
		}(s)
	}
	wg.Wait()

	for s := 0; s < 8; s++ {
		turns := store.Turns(fmt.Sprintf("session-%d", s))
		require.Len(t, turns, MaxTurns)
		assert.Equal(t, "msg-19", turns[len(turns)-1].Text)
	}
}
