package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wishlist-matching/internal/model"
	repo "wishlist-matching/internal/wishlist/repository"
)

const itemColumns = `id, owner_id, name, description, category, active, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (model.WishlistItem, error) {
	var item model.WishlistItem
	err := row.Scan(
		&item.ID, &item.OwnerID, &item.Name, &item.Description,
		&item.Category, &item.Active, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

// CreateItem inserts a new wishlist item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.WishlistItem, error) {
	const query = `
		INSERT INTO wishlist_items (id, owner_id, name, description, category, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		RETURNING ` + itemColumns

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.Name, opt.Description, opt.Category,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.WishlistItem{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem retrieves a single item by the provided filters (AND condition).
// Returns zero-value item (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.WishlistItem, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM wishlist_items WHERE %s LIMIT 1`, itemColumns, mods)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.WishlistItem{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.WishlistItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns a paginated list of items and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.WishlistItem, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM wishlist_items WHERE %s`, countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM wishlist_items %s`, itemColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.WishlistItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	return items, total, nil
}

// ListActiveItems returns every active item across all users.
func (r *implRepository) ListActiveItems(ctx context.Context) ([]model.WishlistItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM wishlist_items WHERE active = TRUE ORDER BY created_at`, itemColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActiveItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.WishlistItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateItem applies a partial update. Empty option fields keep the
// current column value.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.WishlistItem, error) {
	const query = `
		UPDATE wishlist_items
		SET name        = COALESCE(NULLIF($1, ''), name),
		    description = COALESCE(NULLIF($2, ''), description),
		    category    = COALESCE(NULLIF($3, ''), category),
		    updated_at  = $4
		WHERE id = $5
		RETURNING ` + itemColumns

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.Category, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.WishlistItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.WishlistItem{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// DeactivateItem soft-deletes an item. Match rows are never touched.
func (r *implRepository) DeactivateItem(ctx context.Context, id string) error {
	const query = `UPDATE wishlist_items SET active = FALSE, updated_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeactivateItem"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
