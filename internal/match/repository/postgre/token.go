package postgre

import (
	"context"
	"database/sql"

	repo "wishlist-matching/internal/match/repository"
)

// GetPushToken returns the user's push token, or "" when no device is
// registered.
func (r *implRepository) GetPushToken(ctx context.Context, userID string) (string, error) {
	const query = `SELECT token FROM device_tokens WHERE user_id = $1 LIMIT 1`

	var token string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil // no registered device, not an error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPushToken"), err)
		return "", repo.ErrFailedToken
	}
	return token, nil
}

// UpsertPushToken stores or replaces the user's push token.
func (r *implRepository) UpsertPushToken(ctx context.Context, userID, token string) error {
	const query = `
		INSERT INTO device_tokens (user_id, token, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, userID, token); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPushToken"), err)
		return repo.ErrFailedToken
	}
	return nil
}
