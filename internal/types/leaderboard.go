package types

import (
	"encoding/json"
	"time"
)

// GameMode identifies one of the fixed daily puzzle types.
type GameMode string

const (
	ModeCareerPath      GameMode = "career_path"
	ModeDailyTrivia     GameMode = "daily_trivia"
	ModeTransferTracker GameMode = "transfer_tracker"
	ModeMatchResult     GameMode = "match_result"
	ModeGuessTheGrid    GameMode = "guess_the_grid"
)

// AllModes in display order.
var AllModes = []GameMode{
	ModeCareerPath,
	ModeDailyTrivia,
	ModeTransferTracker,
	ModeMatchResult,
	ModeGuessTheGrid,
}

func (m GameMode) Known() bool {
	for _, mode := range AllModes {
		if m == mode {
			return true
		}
	}
	return false
}

// Attempt is one user's completion record for one mode on one day.
// Metadata shape depends on the game mode; it is only interpreted by the
// score normalizer.
type Attempt struct {
	UserID      string          `db:"user_id" json:"user_id"`
	GameMode    GameMode        `db:"game_mode" json:"game_mode"`
	Day         string          `db:"day" json:"day"` // YYYY-MM-DD
	Metadata    json.RawMessage `db:"metadata" json:"metadata"`
	CompletedAt time.Time       `db:"completed_at" json:"completed_at"`
}

// NormalizedScore is an attempt's score on the common 0-100 scale.
type NormalizedScore struct {
	GameMode  GameMode `json:"game_mode"`
	Score     int      `json:"score"`
	Completed bool     `json:"completed"`
}

// DailyScoreResult is a user's aggregate for one day across all modes.
type DailyScoreResult struct {
	TotalScore  int               `json:"total_score"`
	GamesPlayed int               `json:"games_played"`
	Breakdown   []NormalizedScore `json:"breakdown"`
}

// Profile is a user row as supplied by the remote backend.
type Profile struct {
	UserID      string `db:"user_id" json:"user_id"`
	DisplayName string `db:"display_name" json:"display_name"`
	AvatarURL   string `db:"avatar_url" json:"avatar_url"`
}

// LeaderboardEntry is one ranked row. Rank is dense: tied scores share a
// rank and the next distinct score continues from the next integer.
type LeaderboardEntry struct {
	Rank            int        `json:"rank"`
	UserID          string     `json:"user_id"`
	DisplayName     string     `json:"display_name,omitempty"`
	AvatarURL       string     `json:"avatar_url,omitempty"`
	Score           int        `json:"score"`
	GamesPlayed     int        `json:"games_played,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

// UserRank is a user's own standing, used when their row falls outside the
// fetched entry window.
type UserRank struct {
	Rank         int `json:"rank"`
	Score        int `json:"score"`
	TotalPlayers int `json:"total_players"`
}

// VisibleRange is the index window currently on screen, inclusive on both
// ends.
type VisibleRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// StickyInput is everything the sticky-indicator decision needs.
type StickyInput struct {
	CurrentUserID string
	Entries       []LeaderboardEntry
	VisibleRange  VisibleRange
	UserRank      *UserRank
}

// StickyResult says whether the user's own row is on screen and whether the
// sticky rank bar should be shown instead.
type StickyResult struct {
	IsUserVisible       bool `json:"is_user_visible"`
	UserIndex           int  `json:"user_index"`
	ShouldShowStickyBar bool `json:"should_show_sticky_bar"`
}
