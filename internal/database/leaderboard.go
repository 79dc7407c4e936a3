package database

import (
	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

// StoreProfiles upserts the profile rows attached to leaderboard entries.
func (d *DatabaseInst) StoreProfiles(profiles []types.Profile) error {
	d.dbLock.Lock()
	defer d.dbLock.Unlock()

	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}

	present := map[string]bool{}

	rows, err := tx.Query("SELECT user_id FROM profile")
	if err != nil {
		tx.Rollback()
		return err
	}
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			tx.Rollback()
			return err
		}
		present[id] = true
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		tx.Rollback()
		return err
	}
	// release the result set before writing on the same connection
	rows.Close()

	for _, profile := range profiles {
		if present[profile.UserID] {
			_, err = tx.Exec("UPDATE profile SET display_name = ?, avatar_url = ? WHERE user_id = ?;",
				profile.DisplayName, profile.AvatarURL, profile.UserID)
			if err != nil {
				tx.Rollback()
				return err
			}
			continue
		}

		_, err = tx.Exec("INSERT INTO profile (user_id, display_name, avatar_url) VALUES (?, ?, ?);",
			profile.UserID, profile.DisplayName, profile.AvatarURL)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// GetProfiles returns every stored profile keyed by user id.
func (d *DatabaseInst) GetProfiles() (map[string]types.Profile, error) {
	d.dbLock.Lock()
	defer d.dbLock.Unlock()

	rows := []types.Profile{}

	err := d.db.Select(&rows, "SELECT user_id, display_name, avatar_url FROM profile")
	if err != nil {
		return nil, err
	}

	profiles := map[string]types.Profile{}
	for _, profile := range rows {
		profiles[profile.UserID] = profile
	}

	return profiles, nil
}

// CountPlayers returns the number of distinct users with an attempt on the
// given day.
func (d *DatabaseInst) CountPlayers(day string) (int, error) {
	d.dbLock.Lock()
	defer d.dbLock.Unlock()

	var count int

	err := d.db.Get(&count, "SELECT COUNT(DISTINCT user_id) FROM attempt WHERE day = ?", day)
	if err != nil {
		return 0, err
	}

	return count, nil
}
