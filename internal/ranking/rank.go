package ranking

import (
	"sort"

	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

// Rank sorts entries and assigns dense ranks. The input slice is not
// modified; a ranked copy is returned.
//
// Sort order: score descending, then completion time ascending (a missing
// time sorts after every timestamped entry), then user id ascending as the
// final deterministic tiebreak. Ranks are dense: tied scores share a rank
// and the next distinct score continues from the next integer. Re-ranking
// an already-ranked list produces the same result.
func Rank(entries []types.LeaderboardEntry) []types.LeaderboardEntry {
	ranked := make([]types.LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(&ranked[i], &ranked[j])
	})

	for i := range ranked {
		if i == 0 {
			ranked[i].Rank = 1
			continue
		}
		if ranked[i].Score == ranked[i-1].Score {
			ranked[i].Rank = ranked[i-1].Rank
			continue
		}
		ranked[i].Rank = ranked[i-1].Rank + 1
	}

	return ranked
}

func less(a, b *types.LeaderboardEntry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}

	switch {
	case a.LastCompletedAt != nil && b.LastCompletedAt != nil:
		if !a.LastCompletedAt.Equal(*b.LastCompletedAt) {
			return a.LastCompletedAt.Before(*b.LastCompletedAt)
		}
	case a.LastCompletedAt != nil:
		// timestamped sorts before missing
		return true
	case b.LastCompletedAt != nil:
		return false
	}

	return a.UserID < b.UserID
}
