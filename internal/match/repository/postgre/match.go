package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	repo "wishlist-matching/internal/match/repository"
	"wishlist-matching/internal/model"
)

const matchColumns = `id, wishlist_item_id, listing_id, matched_at, confidence, reason, notification_sent, notification_sent_at`

func scanMatch(row interface{ Scan(...any) error }) (model.Match, error) {
	var m model.Match
	err := row.Scan(
		&m.ID, &m.WishlistItemID, &m.ListingID, &m.MatchedAt,
		&m.Confidence, &m.Reason, &m.NotificationSent, &m.NotificationSentAt,
	)
	return m, err
}

// CreateIfAbsent inserts a match for the (item, listing) pair. The
// unique constraint on the pair makes the insert a no-op when a match
// already exists; in that case the existing row is returned with
// created=false.
func (r *implRepository) CreateIfAbsent(ctx context.Context, opt repo.CreateMatchOptions) (model.Match, bool, error) {
	const query = `
		INSERT INTO wishlist_matches (id, wishlist_item_id, listing_id, matched_at, confidence, reason, notification_sent)
		VALUES ($1, $2, $3, NOW(), $4, $5, FALSE)
		ON CONFLICT (wishlist_item_id, listing_id) DO NOTHING
		RETURNING ` + matchColumns

	m, err := scanMatch(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.WishlistItemID, opt.ListingID, opt.Confidence, opt.Reason,
	))
	if err == sql.ErrNoRows {
		// Conflict: the pair is already matched. Fetch the winner.
		existing, err := r.getByPair(ctx, opt.WishlistItemID, opt.ListingID)
		if err != nil {
			return model.Match{}, false, err
		}
		return existing, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIfAbsent"), err)
		return model.Match{}, false, repo.ErrFailedToInsert
	}
	return m, true, nil
}

func (r *implRepository) getByPair(ctx context.Context, itemID, listingID string) (model.Match, error) {
	query := fmt.Sprintf(`SELECT %s FROM wishlist_matches WHERE wishlist_item_id = $1 AND listing_id = $2 LIMIT 1`, matchColumns)

	m, err := scanMatch(r.db.QueryRowContext(ctx, query, itemID, listingID))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("getByPair"), err)
		return model.Match{}, repo.ErrFailedToGet
	}
	return m, nil
}

// GetMatch retrieves a single match by ID.
// Returns zero-value match (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetMatch(ctx context.Context, id string) (model.Match, error) {
	query := fmt.Sprintf(`SELECT %s FROM wishlist_matches WHERE id = $1 LIMIT 1`, matchColumns)

	m, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Match{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMatch"), err)
		return model.Match{}, repo.ErrFailedToGet
	}
	return m, nil
}

// ListMatchedItemIDs returns the wishlist item IDs already matched to
// the listing.
func (r *implRepository) ListMatchedItemIDs(ctx context.Context, listingID string) ([]string, error) {
	const query = `SELECT wishlist_item_id FROM wishlist_matches WHERE listing_id = $1`

	rows, err := r.db.QueryContext(ctx, query, listingID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMatchedItemIDs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, repo.ErrFailedToList
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ListUnsent returns matches whose notification has not been sent,
// oldest first.
func (r *implRepository) ListUnsent(ctx context.Context, limit int) ([]model.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM wishlist_matches
		WHERE notification_sent = FALSE
		ORDER BY matched_at
		LIMIT $1`, matchColumns)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUnsent"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// ListByOwner returns matches for items owned by the user, joined with
// item name and listing title.
func (r *implRepository) ListByOwner(ctx context.Context, opt repo.ListByOwnerOptions) ([]repo.MatchRow, int, error) {
	where := `wi.owner_id = $1`
	if opt.UnsentOnly {
		where += ` AND m.notification_sent = FALSE`
	}

	// 1. Count total (without pagination)
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM wishlist_matches m
		JOIN wishlist_items wi ON wi.id = m.wishlist_item_id
		WHERE %s`, where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, opt.OwnerID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListByOwner"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	query := fmt.Sprintf(`
		SELECT m.id, m.wishlist_item_id, m.listing_id, m.matched_at, m.confidence, m.reason,
		       m.notification_sent, m.notification_sent_at, wi.name, l.title
		FROM wishlist_matches m
		JOIN wishlist_items wi ON wi.id = m.wishlist_item_id
		JOIN listings l ON l.id = m.listing_id
		WHERE %s
		ORDER BY m.matched_at DESC
		LIMIT $2 OFFSET $3`, where)

	rows, err := r.db.QueryContext(ctx, query, opt.OwnerID, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListByOwner"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []repo.MatchRow
	for rows.Next() {
		var row repo.MatchRow
		m := &row.Match
		if err := rows.Scan(
			&m.ID, &m.WishlistItemID, &m.ListingID, &m.MatchedAt, &m.Confidence, &m.Reason,
			&m.NotificationSent, &m.NotificationSentAt, &row.ItemName, &row.ListingTitle,
		); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		out = append(out, row)
	}
	return out, total, nil
}

// MarkNotified flips notification_sent false to true. The guard on the
// current value makes the transition happen at most once.
func (r *implRepository) MarkNotified(ctx context.Context, id string) (bool, error) {
	const query = `
		UPDATE wishlist_matches
		SET notification_sent = TRUE, notification_sent_at = NOW()
		WHERE id = $1 AND notification_sent = FALSE`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkNotified"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("MarkNotified"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n == 1, nil
}
