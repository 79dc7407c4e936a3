package fetcher

import (
	"encoding/json"
	"log"
	"time"

	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

type AttemptRow struct {
	UserID      string          `json:"user_id"`
	GameMode    string          `json:"game_mode"`
	Day         string          `json:"day"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CompletedAt time.Time       `json:"completed_at"`
}

type ProfileRow struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

func ToAttempts(rows []*AttemptRow) []types.Attempt {
	attempts := make([]types.Attempt, 0, len(rows))

	for _, row := range rows {
		if row == nil {
			continue
		}

		// Unknown modes still normalize to 0 downstream; log so corrupt
		// rows are at least visible somewhere.
		if !types.GameMode(row.GameMode).Known() {
			log.Printf("WARN: Unknown game mode %q for user %s\n", row.GameMode, row.UserID)
		}

		attempts = append(attempts, types.Attempt{
			UserID:      row.UserID,
			GameMode:    types.GameMode(row.GameMode),
			Day:         row.Day,
			Metadata:    row.Metadata,
			CompletedAt: row.CompletedAt,
		})
	}

	return attempts
}

func ToProfiles(rows []*ProfileRow) []types.Profile {
	profiles := make([]types.Profile, 0, len(rows))

	for _, row := range rows {
		if row == nil {
			continue
		}

		profiles = append(profiles, types.Profile{
			UserID:      row.ID,
			DisplayName: row.DisplayName,
			AvatarURL:   row.AvatarURL,
		})
	}

	return profiles
}
