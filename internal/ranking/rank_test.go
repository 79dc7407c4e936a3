package ranking

import (
	"reflect"
	"testing"
	"time"

	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

func ts(hour, min int) *time.Time {
	t := time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
	return &t
}

func TestRankDense(t *testing.T) {
	ranked := Rank([]types.LeaderboardEntry{
		{UserID: "a", Score: 300},
		{UserID: "b", Score: 300},
		{UserID: "c", Score: 200},
		{UserID: "d", Score: 200},
		{UserID: "e", Score: 100},
	})

	wantRanks := []int{1, 1, 2, 2, 3}
	for i, entry := range ranked {
		if entry.Rank != wantRanks[i] {
			t.Errorf("ranked[%d] (%s) rank = %d, want %d", i, entry.UserID, entry.Rank, wantRanks[i])
		}
	}
}

func TestRankTiebreakByCompletionTime(t *testing.T) {
	ranked := Rank([]types.LeaderboardEntry{
		{UserID: "late", Score: 400, LastCompletedAt: ts(10, 30)},
		{UserID: "early", Score: 400, LastCompletedAt: ts(10, 0)},
		{UserID: "mid", Score: 400, LastCompletedAt: ts(10, 15)},
	})

	wantOrder := []string{"early", "mid", "late"}
	for i, entry := range ranked {
		if entry.UserID != wantOrder[i] {
			t.Errorf("ranked[%d] = %s, want %s", i, entry.UserID, wantOrder[i])
		}
		if entry.Rank != 1 {
			t.Errorf("ranked[%d] rank = %d, want 1 for tied score", i, entry.Rank)
		}
	}
}

func TestRankMissingTimeSortsLast(t *testing.T) {
	ranked := Rank([]types.LeaderboardEntry{
		{UserID: "no-time", Score: 400},
		{UserID: "timed", Score: 400, LastCompletedAt: ts(23, 59)},
	})

	if ranked[0].UserID != "timed" || ranked[1].UserID != "no-time" {
		t.Errorf("order = [%s %s], want timestamped entry first", ranked[0].UserID, ranked[1].UserID)
	}
}

func TestRankFinalTiebreakByUserID(t *testing.T) {
	ranked := Rank([]types.LeaderboardEntry{
		{UserID: "zz", Score: 400, LastCompletedAt: ts(12, 0)},
		{UserID: "aa", Score: 400, LastCompletedAt: ts(12, 0)},
		{UserID: "mm", Score: 400},
		{UserID: "bb", Score: 400},
	})

	wantOrder := []string{"aa", "zz", "bb", "mm"}
	for i, entry := range ranked {
		if entry.UserID != wantOrder[i] {
			t.Errorf("ranked[%d] = %s, want %s", i, entry.UserID, wantOrder[i])
		}
	}
}

func TestRankEdgeCases(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", got)
	}

	single := Rank([]types.LeaderboardEntry{{UserID: "only", Score: 42}})
	if single[0].Rank != 1 {
		t.Errorf("single entry rank = %d, want 1", single[0].Rank)
	}

	tied := Rank([]types.LeaderboardEntry{
		{UserID: "a", Score: 7},
		{UserID: "b", Score: 7},
		{UserID: "c", Score: 7},
	})
	for i, entry := range tied {
		if entry.Rank != 1 {
			t.Errorf("tied[%d] rank = %d, want 1", i, entry.Rank)
		}
	}
}

func TestRankIdempotent(t *testing.T) {
	entries := []types.LeaderboardEntry{
		{UserID: "a", Score: 300, LastCompletedAt: ts(9, 0)},
		{UserID: "b", Score: 300},
		{UserID: "c", Score: 250},
		{UserID: "d", Score: 100},
	}

	once := Rank(entries)
	twice := Rank(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("re-ranking changed the result:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	entries := []types.LeaderboardEntry{
		{UserID: "b", Score: 100},
		{UserID: "a", Score: 200},
	}

	Rank(entries)

	if entries[0].UserID != "b" || entries[0].Rank != 0 {
		t.Errorf("input mutated: %+v", entries)
	}
}
