package database

import (
	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

// StoreAttempts mirrors fetched attempt records. The attempt table keeps at
// most one row per (user, mode, day); a conflicting insert only replaces the
// stored row when the incoming attempt completed earlier, so the first
// attempt of the day always wins regardless of fetch order.
func (d *DatabaseInst) StoreAttempts(attempts []types.Attempt) error {
	d.dbLock.Lock()
	defer d.dbLock.Unlock()

	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}

	for _, attempt := range attempts {
		_, err = tx.Exec(`INSERT INTO attempt (user_id, game_mode, day, metadata, completed_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(user_id, game_mode, day) DO UPDATE SET
				metadata = excluded.metadata,
				completed_at = excluded.completed_at
			WHERE excluded.completed_at < attempt.completed_at;`,
			attempt.UserID, string(attempt.GameMode), attempt.Day, string(attempt.Metadata), attempt.CompletedAt.UTC())
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// GetDayAttempts returns every stored attempt for one day, ordered by
// completion time so downstream aggregation sees attempts first-seen-first.
func (d *DatabaseInst) GetDayAttempts(day string) ([]types.Attempt, error) {
	d.dbLock.Lock()
	defer d.dbLock.Unlock()

	attempts := []types.Attempt{}

	err := d.db.Select(&attempts, `SELECT user_id, game_mode, day, metadata, completed_at
		FROM attempt WHERE day = ? ORDER BY completed_at ASC, user_id ASC`, day)
	if err != nil {
		return nil, err
	}

	return attempts, nil
}

// GetUserDayAttempts returns one user's attempts for one day in completion
// order.
func (d *DatabaseInst) GetUserDayAttempts(day string, userID string) ([]types.Attempt, error) {
	d.dbLock.Lock()
	defer d.dbLock.Unlock()

	attempts := []types.Attempt{}

	err := d.db.Select(&attempts, `SELECT user_id, game_mode, day, metadata, completed_at
		FROM attempt WHERE day = ? AND user_id = ? ORDER BY completed_at ASC`, day, userID)
	if err != nil {
		return nil, err
	}

	return attempts, nil
}
