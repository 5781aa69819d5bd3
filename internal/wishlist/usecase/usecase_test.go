package usecase_test

import (
	"context"
	"errors"
	"testing"

	"wishlist-matching/internal/model"
	"wishlist-matching/internal/wishlist"
	"wishlist-matching/internal/wishlist/repository"
	"wishlist-matching/internal/wishlist/usecase"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	failCreate  bool
	items       map[string]model.WishlistItem
	deactivated []string
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[string]model.WishlistItem)}
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.WishlistItem, error) {
	if m.failCreate {
		return model.WishlistItem{}, errors.New("db error")
	}
	item := model.WishlistItem{
		ID:          "item-1",
		OwnerID:     opt.OwnerID,
		Name:        opt.Name,
		Description: opt.Description,
		Category:    opt.Category,
		Active:      true,
	}
	m.items[item.ID] = item
	return item, nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (model.WishlistItem, error) {
	item, ok := m.items[opt.ID]
	if !ok {
		return model.WishlistItem{}, nil
	}
	if opt.OwnerID != "" && item.OwnerID != opt.OwnerID {
		return model.WishlistItem{}, nil
	}
	return item, nil
}

func (m *mockRepo) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.WishlistItem, int, error) {
	var out []model.WishlistItem
	for _, item := range m.items {
		if opt.OwnerID != "" && item.OwnerID != opt.OwnerID {
			continue
		}
		out = append(out, item)
	}
	return out, len(out), nil
}

func (m *mockRepo) ListActiveItems(ctx context.Context) ([]model.WishlistItem, error) {
	var out []model.WishlistItem
	for _, item := range m.items {
		if item.Active {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.WishlistItem, error) {
	item, ok := m.items[opt.ID]
	if !ok {
		return model.WishlistItem{}, nil
	}
	if opt.Name != "" {
		item.Name = opt.Name
	}
	if opt.Description != "" {
		item.Description = opt.Description
	}
	if opt.Category != "" {
		item.Category = opt.Category
	}
	m.items[opt.ID] = item
	return item, nil
}

func (m *mockRepo) DeactivateItem(ctx context.Context, id string) error {
	item, ok := m.items[id]
	if !ok {
		return repository.ErrFailedToUpdate
	}
	item.Active = false
	m.items[id] = item
	m.deactivated = append(m.deactivated, id)
	return nil
}

var testCategories = []string{"furniture", "kitchen", "electronics"}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("success", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(&mockLogger{}, repo, testCategories)

		out, err := uc.Create(ctx, sc, wishlist.CreateItemInput{
			Name:        "  Wine glass set  ",
			Description: "crystal preferred",
			Category:    "kitchen",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.Name != "Wine glass set" {
			t.Errorf("expected trimmed name, got %q", out.Item.Name)
		}
		if out.Item.OwnerID != "user-1" {
			t.Errorf("owner must come from scope, got %q", out.Item.OwnerID)
		}
		if !out.Item.Active {
			t.Errorf("new items must be active")
		}
	})

	t.Run("empty name", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMockRepo(), testCategories)

		_, err := uc.Create(ctx, sc, wishlist.CreateItemInput{Name: "   "})
		if !errors.Is(err, wishlist.ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMockRepo(), testCategories)

		_, err := uc.Create(ctx, sc, wishlist.CreateItemInput{Name: "lamp", Category: "vehicles"})
		if !errors.Is(err, wishlist.ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("category optional", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMockRepo(), testCategories)

		if _, err := uc.Create(ctx, sc, wishlist.CreateItemInput{Name: "lamp"}); err != nil {
			t.Fatalf("empty category must be allowed: %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("soft deactivate keeps the row", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(&mockLogger{}, repo, testCategories)

		out, err := uc.Create(ctx, model.Scope{UserID: "user-1"}, wishlist.CreateItemInput{Name: "lamp"})
		if err != nil {
			t.Fatalf("setup create: %v", err)
		}

		if err := uc.Delete(ctx, model.Scope{UserID: "user-1"}, out.Item.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored := repo.items[out.Item.ID]
		if stored.Active {
			t.Errorf("expected item to be deactivated")
		}
		if stored.ID == "" {
			t.Errorf("row must not be removed")
		}

		// deactivated items no longer feed the matcher
		active, _ := repo.ListActiveItems(ctx)
		for _, item := range active {
			if item.ID == out.Item.ID {
				t.Errorf("deactivated item still listed as active")
			}
		}
	})

	t.Run("not owner", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(&mockLogger{}, repo, testCategories)

		out, err := uc.Create(ctx, model.Scope{UserID: "user-1"}, wishlist.CreateItemInput{Name: "lamp"})
		if err != nil {
			t.Fatalf("setup create: %v", err)
		}

		err = uc.Delete(ctx, model.Scope{UserID: "user-2"}, out.Item.ID)
		if !errors.Is(err, wishlist.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound for foreign item, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	repo := newMockRepo()
	uc := usecase.New(&mockLogger{}, repo, testCategories)

	out, err := uc.Create(ctx, sc, wishlist.CreateItemInput{Name: "lamp", Category: "furniture"})
	if err != nil {
		t.Fatalf("setup create: %v", err)
	}

	updated, err := uc.Update(ctx, sc, wishlist.UpdateItemInput{ID: out.Item.ID, Name: "brass lamp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Item.Name != "brass lamp" {
		t.Errorf("expected updated name, got %q", updated.Item.Name)
	}
	if updated.Item.Category != "furniture" {
		t.Errorf("untouched fields must persist, got %q", updated.Item.Category)
	}

	_, err = uc.Update(ctx, sc, wishlist.UpdateItemInput{ID: "missing", Name: "x"})
	if !errors.Is(err, wishlist.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
