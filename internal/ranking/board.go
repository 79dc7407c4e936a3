package ranking

import (
	"time"

	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

// BuildBoard turns one day's raw attempts into a ranked leaderboard.
// Attempts must arrive in completion order; each user's attempts are
// aggregated first-seen-wins, profile rows fill in display fields, and the
// ranker assigns dense ranks.
func BuildBoard(attempts []types.Attempt, profiles map[string]types.Profile) []types.LeaderboardEntry {
	byUser := map[string][]types.Attempt{}
	order := []string{}

	for _, attempt := range attempts {
		if _, ok := byUser[attempt.UserID]; !ok {
			order = append(order, attempt.UserID)
		}
		byUser[attempt.UserID] = append(byUser[attempt.UserID], attempt)
	}

	entries := make([]types.LeaderboardEntry, 0, len(order))

	for _, userID := range order {
		userAttempts := byUser[userID]
		daily := Aggregate(userAttempts)

		entry := types.LeaderboardEntry{
			UserID:          userID,
			Score:           daily.TotalScore,
			GamesPlayed:     daily.GamesPlayed,
			LastCompletedAt: lastCompletion(userAttempts),
		}

		if profile, ok := profiles[userID]; ok {
			entry.DisplayName = profile.DisplayName
			entry.AvatarURL = profile.AvatarURL
		}

		entries = append(entries, entry)
	}

	return Rank(entries)
}

// lastCompletion is the time the user finished their day's play: the latest
// completion among the attempts that counted. Ignored repeat attempts do
// not push it back.
func lastCompletion(attempts []types.Attempt) *time.Time {
	var last *time.Time
	seen := map[types.GameMode]bool{}

	for i := range attempts {
		if seen[attempts[i].GameMode] {
			continue
		}
		seen[attempts[i].GameMode] = true

		if last == nil || attempts[i].CompletedAt.After(*last) {
			last = &attempts[i].CompletedAt
		}
	}

	return last
}

// FindUserRank locates a user on a ranked board. Nil when the user has no
// entry.
func FindUserRank(board []types.LeaderboardEntry, userID string, totalPlayers int) *types.UserRank {
	for i := range board {
		if board[i].UserID == userID {
			return &types.UserRank{
				Rank:         board[i].Rank,
				Score:        board[i].Score,
				TotalPlayers: totalPlayers,
			}
		}
	}
	return nil
}
