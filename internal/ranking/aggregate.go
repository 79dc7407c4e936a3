package ranking

import (
	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

// Aggregate sums normalized scores across game modes for one user's day.
// Attempts are walked in the given order; only the first attempt seen for
// each mode counts (first attempt per day wins, not best score). Repeat
// attempts for an already-seen mode are ignored.
func Aggregate(attempts []types.Attempt) types.DailyScoreResult {
	result := types.DailyScoreResult{
		Breakdown: []types.NormalizedScore{},
	}

	seen := map[types.GameMode]bool{}

	for _, attempt := range attempts {
		if seen[attempt.GameMode] {
			continue
		}
		seen[attempt.GameMode] = true

		score := Normalize(attempt.GameMode, attempt.Metadata)
		result.TotalScore += score
		result.GamesPlayed++
		result.Breakdown = append(result.Breakdown, types.NormalizedScore{
			GameMode:  attempt.GameMode,
			Score:     score,
			Completed: true,
		})
	}

	return result
}
