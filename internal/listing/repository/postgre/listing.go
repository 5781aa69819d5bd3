package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "wishlist-matching/internal/listing/repository"
	"wishlist-matching/internal/model"
)

const listingColumns = `id, owner_id, title, description, categories, location, created_at, updated_at`

func scanListing(row interface{ Scan(...any) error }) (model.Listing, error) {
	var listing model.Listing
	err := row.Scan(
		&listing.ID, &listing.OwnerID, &listing.Title, &listing.Description,
		pq.Array(&listing.Categories), &listing.Location,
		&listing.CreatedAt, &listing.UpdatedAt,
	)
	return listing, err
}

// CreateListing inserts a new listing row and returns the created entity.
func (r *implRepository) CreateListing(ctx context.Context, opt repo.CreateListingOptions) (model.Listing, error) {
	const query = `
		INSERT INTO listings (id, owner_id, title, description, categories, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + listingColumns

	listing, err := scanListing(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.Title, opt.Description,
		pq.Array(opt.Categories), opt.Location,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateListing"), err)
		return model.Listing{}, repo.ErrFailedToInsert
	}
	return listing, nil
}

// GetOneListing retrieves a single listing by ID.
// Returns zero-value listing (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneListing(ctx context.Context, id string) (model.Listing, error) {
	query := fmt.Sprintf(`SELECT %s FROM listings WHERE id = $1 LIMIT 1`, listingColumns)

	listing, err := scanListing(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Listing{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneListing"), err)
		return model.Listing{}, repo.ErrFailedToGet
	}
	return listing, nil
}

// ListListings returns a paginated list of listings and the total count.
func (r *implRepository) ListListings(ctx context.Context, opt repo.ListListingsOptions) ([]model.Listing, int, error) {
	where, args := r.buildWhere(opt)

	// 1. Count total (without pagination)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM listings %s`, where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListListings"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, pageArgs := r.buildPage(opt, len(args))
	query := fmt.Sprintf(`SELECT %s FROM listings %s ORDER BY created_at DESC %s`, listingColumns, where, mods)
	rows, err := r.db.QueryContext(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListListings"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var listings []model.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		listings = append(listings, listing)
	}
	return listings, total, nil
}

// buildWhere builds the WHERE clause + args for list queries.
func (r *implRepository) buildWhere(opt repo.ListListingsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(categories)", len(args)+1))
		args = append(args, opt.Category)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// buildPage builds LIMIT/OFFSET modifiers, continuing arg numbering
// after the WHERE args.
func (r *implRepository) buildPage(opt repo.ListListingsOptions, offset int) (string, []any) {
	var parts []string
	var args []any
	idx := offset + 1

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}
	return strings.Join(parts, " "), args
}
