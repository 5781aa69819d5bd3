package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	listingRepo "wishlist-matching/internal/listing/repository"
	"wishlist-matching/internal/match"
	"wishlist-matching/internal/match/repository"
	"wishlist-matching/internal/match/usecase"
	"wishlist-matching/internal/matching"
	"wishlist-matching/internal/model"
	wishlistRepo "wishlist-matching/internal/wishlist/repository"
	"wishlist-matching/pkg/push"
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

// mockMatchRepo is an in-memory match store enforcing the pair unique
// constraint the way the database does.
type mockMatchRepo struct {
	mu         sync.Mutex
	matches    map[string]model.Match // by ID
	pairs      map[string]string      // "item|listing" -> match ID
	tokens     map[string]string
	failInsert bool
	tokenReads int
}

func newMockMatchRepo() *mockMatchRepo {
	return &mockMatchRepo{
		matches: make(map[string]model.Match),
		pairs:   make(map[string]string),
		tokens:  make(map[string]string),
	}
}

func pairKey(itemID, listingID string) string { return itemID + "|" + listingID }

func (m *mockMatchRepo) CreateIfAbsent(ctx context.Context, opt repository.CreateMatchOptions) (model.Match, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failInsert {
		return model.Match{}, false, repository.ErrFailedToInsert
	}
	key := pairKey(opt.WishlistItemID, opt.ListingID)
	if id, ok := m.pairs[key]; ok {
		return m.matches[id], false, nil
	}
	created := model.Match{
		ID:             fmt.Sprintf("match-%d", len(m.matches)+1),
		WishlistItemID: opt.WishlistItemID,
		ListingID:      opt.ListingID,
		Confidence:     opt.Confidence,
		Reason:         opt.Reason,
	}
	m.matches[created.ID] = created
	m.pairs[key] = created.ID
	return created, true, nil
}

func (m *mockMatchRepo) GetMatch(ctx context.Context, id string) (model.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matches[id], nil
}

func (m *mockMatchRepo) ListMatchedItemIDs(ctx context.Context, listingID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for _, mt := range m.matches {
		if mt.ListingID == listingID {
			ids = append(ids, mt.WishlistItemID)
		}
	}
	return ids, nil
}

func (m *mockMatchRepo) ListUnsent(ctx context.Context, limit int) ([]model.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Match
	for _, mt := range m.matches {
		if !mt.NotificationSent {
			out = append(out, mt)
		}
	}
	return out, nil
}

func (m *mockMatchRepo) ListByOwner(ctx context.Context, opt repository.ListByOwnerOptions) ([]repository.MatchRow, int, error) {
	return nil, 0, nil
}

func (m *mockMatchRepo) MarkNotified(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mt, ok := m.matches[id]
	if !ok || mt.NotificationSent {
		return false, nil
	}
	mt.NotificationSent = true
	m.matches[id] = mt
	return true, nil
}

func (m *mockMatchRepo) GetPushToken(ctx context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokenReads++
	return m.tokens[userID], nil
}

func (m *mockMatchRepo) UpsertPushToken(ctx context.Context, userID, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[userID] = token
	return nil
}

type mockItemRepo struct {
	items    map[string]model.WishlistItem
	failList bool
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt wishlistRepo.CreateItemOptions) (model.WishlistItem, error) {
	return model.WishlistItem{}, nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt wishlistRepo.GetOneItemOptions) (model.WishlistItem, error) {
	return m.items[opt.ID], nil
}

func (m *mockItemRepo) ListItems(ctx context.Context, opt wishlistRepo.ListItemsOptions) ([]model.WishlistItem, int, error) {
	return nil, 0, nil
}

func (m *mockItemRepo) ListActiveItems(ctx context.Context) ([]model.WishlistItem, error) {
	if m.failList {
		return nil, wishlistRepo.ErrFailedToList
	}
	var out []model.WishlistItem
	for _, item := range m.items {
		if item.Active {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, opt wishlistRepo.UpdateItemOptions) (model.WishlistItem, error) {
	return model.WishlistItem{}, nil
}

func (m *mockItemRepo) DeactivateItem(ctx context.Context, id string) error { return nil }

type mockListingRepo struct {
	listings map[string]model.Listing
}

func (m *mockListingRepo) CreateListing(ctx context.Context, opt listingRepo.CreateListingOptions) (model.Listing, error) {
	return model.Listing{}, nil
}

func (m *mockListingRepo) GetOneListing(ctx context.Context, id string) (model.Listing, error) {
	return m.listings[id], nil
}

func (m *mockListingRepo) ListListings(ctx context.Context, opt listingRepo.ListListingsOptions) ([]model.Listing, int, error) {
	return nil, 0, nil
}

// mockDecider matches every item whose ID is in the positive set.
type mockDecider struct {
	mu       sync.Mutex
	positive map[string]bool
	calls    []string
}

func (m *mockDecider) Decide(ctx context.Context, item model.WishlistItem, listing model.Listing) matching.Verdict {
	m.mu.Lock()
	m.calls = append(m.calls, item.ID)
	m.mu.Unlock()
	if m.positive[item.ID] {
		return matching.Verdict{IsMatch: true, Confidence: model.ConfidenceHigh, Reason: "Keyword match: bike"}
	}
	return matching.Verdict{IsMatch: false, Confidence: model.ConfidenceMedium, Reason: "No match"}
}

type mockSender struct {
	mu   sync.Mutex
	sent []push.Message
	fail bool
}

func (m *mockSender) Send(ctx context.Context, msg push.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("push gateway down")
	}
	m.sent = append(m.sent, msg)
	return nil
}

// fixtures

func fixtures() (*mockMatchRepo, *mockItemRepo, *mockListingRepo) {
	matches := newMockMatchRepo()
	items := &mockItemRepo{items: map[string]model.WishlistItem{
		"item-1": {ID: "item-1", OwnerID: "buyer-1", Name: "mountain bike", Active: true},
		"item-2": {ID: "item-2", OwnerID: "buyer-2", Name: "record player", Active: true},
	}}
	listings := &mockListingRepo{listings: map[string]model.Listing{
		"listing-1": {ID: "listing-1", OwnerID: "seller-1", Title: "Trek mountain bike"},
	}}
	return matches, items, listings
}

func TestProcessListing(t *testing.T) {
	listing := model.Listing{ID: "listing-1", OwnerID: "seller-1", Title: "Trek mountain bike"}

	t.Run("positive verdict creates match and notifies", func(t *testing.T) {
		matches, items, listings := fixtures()
		matches.tokens["buyer-1"] = "ExponentPushToken[abc]"
		decider := &mockDecider{positive: map[string]bool{"item-1": true}}
		sender := &mockSender{}
		uc := usecase.New(&mockLogger{}, matches, items, listings, decider, sender, 2)

		if err := uc.ProcessListing(context.Background(), listing); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches.matches) != 1 {
			t.Fatalf("matches = %d, want 1", len(matches.matches))
		}
		if len(sender.sent) != 1 {
			t.Fatalf("sent = %d, want 1", len(sender.sent))
		}
		msg := sender.sent[0]
		if msg.Title != "Found: mountain bike!" {
			t.Errorf("title = %q", msg.Title)
		}
		if msg.Body != `"Trek mountain bike" may have what you're looking for!` {
			t.Errorf("body = %q", msg.Body)
		}
		for _, m := range matches.matches {
			if !m.NotificationSent {
				t.Error("match not marked notified after confirmed send")
			}
		}
	})

	t.Run("reprocessing skips matched pairs without re-deciding", func(t *testing.T) {
		matches, items, listings := fixtures()
		decider := &mockDecider{positive: map[string]bool{"item-1": true}}
		uc := usecase.New(&mockLogger{}, matches, items, listings, decider, &mockSender{}, 2)

		if err := uc.ProcessListing(context.Background(), listing); err != nil {
			t.Fatalf("first run: %v", err)
		}
		firstCalls := len(decider.calls)

		if err := uc.ProcessListing(context.Background(), listing); err != nil {
			t.Fatalf("second run: %v", err)
		}
		if len(matches.matches) != 1 {
			t.Errorf("matches = %d, want 1 after reprocessing", len(matches.matches))
		}
		for _, id := range decider.calls[firstCalls:] {
			if id == "item-1" {
				t.Error("engine re-invoked for an already matched pair")
			}
		}
	})

	t.Run("own items are skipped", func(t *testing.T) {
		matches, items, listings := fixtures()
		items.items["item-3"] = model.WishlistItem{ID: "item-3", OwnerID: "seller-1", Name: "mountain bike", Active: true}
		decider := &mockDecider{positive: map[string]bool{"item-3": true}}
		uc := usecase.New(&mockLogger{}, matches, items, listings, decider, &mockSender{}, 2)

		if err := uc.ProcessListing(context.Background(), listing); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches.matches) != 0 {
			t.Errorf("matched the seller's own wishlist item")
		}
	})

	t.Run("persistence failure surfaces", func(t *testing.T) {
		matches, items, listings := fixtures()
		matches.failInsert = true
		decider := &mockDecider{positive: map[string]bool{"item-1": true}}
		uc := usecase.New(&mockLogger{}, matches, items, listings, decider, &mockSender{}, 2)

		err := uc.ProcessListing(context.Background(), listing)
		if !errors.Is(err, repository.ErrFailedToInsert) {
			t.Errorf("err = %v, want ErrFailedToInsert", err)
		}
	})

	t.Run("push failure does not surface", func(t *testing.T) {
		matches, items, listings := fixtures()
		matches.tokens["buyer-1"] = "ExponentPushToken[abc]"
		decider := &mockDecider{positive: map[string]bool{"item-1": true}}
		uc := usecase.New(&mockLogger{}, matches, items, listings, decider, &mockSender{fail: true}, 2)

		if err := uc.ProcessListing(context.Background(), listing); err != nil {
			t.Fatalf("push failure leaked: %v", err)
		}
		for _, m := range matches.matches {
			if m.NotificationSent {
				t.Error("match marked notified after failed send")
			}
		}
	})
}

func TestNotify(t *testing.T) {
	t.Run("unknown match", func(t *testing.T) {
		matches, items, listings := fixtures()
		uc := usecase.New(&mockLogger{}, matches, items, listings, &mockDecider{}, &mockSender{}, 1)

		if err := uc.Notify(context.Background(), "nope"); !errors.Is(err, match.ErrMatchNotFound) {
			t.Errorf("err = %v, want ErrMatchNotFound", err)
		}
	})

	t.Run("already sent is a no-op", func(t *testing.T) {
		matches, items, listings := fixtures()
		matches.matches["match-1"] = model.Match{
			ID: "match-1", WishlistItemID: "item-1", ListingID: "listing-1", NotificationSent: true,
		}
		matches.tokens["buyer-1"] = "ExponentPushToken[abc]"
		sender := &mockSender{}
		uc := usecase.New(&mockLogger{}, matches, items, listings, &mockDecider{}, sender, 1)

		if err := uc.Notify(context.Background(), "match-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sender.sent) != 0 {
			t.Error("re-sent an already delivered notification")
		}
	})

	t.Run("no push token skips and stays unsent", func(t *testing.T) {
		matches, items, listings := fixtures()
		matches.matches["match-1"] = model.Match{
			ID: "match-1", WishlistItemID: "item-1", ListingID: "listing-1",
		}
		sender := &mockSender{}
		uc := usecase.New(&mockLogger{}, matches, items, listings, &mockDecider{}, sender, 1)

		if err := uc.Notify(context.Background(), "match-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sender.sent) != 0 {
			t.Error("sent without a push target")
		}
		if matches.matches["match-1"].NotificationSent {
			t.Error("marked notified without sending")
		}
	})

	t.Run("failed send is returned and not marked", func(t *testing.T) {
		matches, items, listings := fixtures()
		matches.matches["match-1"] = model.Match{
			ID: "match-1", WishlistItemID: "item-1", ListingID: "listing-1",
		}
		matches.tokens["buyer-1"] = "ExponentPushToken[abc]"
		uc := usecase.New(&mockLogger{}, matches, items, listings, &mockDecider{}, &mockSender{fail: true}, 1)

		if err := uc.Notify(context.Background(), "match-1"); err == nil {
			t.Fatal("expected error from failed send")
		}
		if matches.matches["match-1"].NotificationSent {
			t.Error("marked notified after failed send")
		}
	})

	t.Run("token cache avoids repeated reads", func(t *testing.T) {
		matches, items, listings := fixtures()
		matches.matches["match-1"] = model.Match{
			ID: "match-1", WishlistItemID: "item-1", ListingID: "listing-1",
		}
		matches.matches["match-2"] = model.Match{
			ID: "match-2", WishlistItemID: "item-1", ListingID: "listing-1",
		}
		matches.tokens["buyer-1"] = "ExponentPushToken[abc]"
		uc := usecase.New(&mockLogger{}, matches, items, listings, &mockDecider{}, &mockSender{}, 1)

		if err := uc.Notify(context.Background(), "match-1"); err != nil {
			t.Fatalf("first notify: %v", err)
		}
		if err := uc.Notify(context.Background(), "match-2"); err != nil {
			t.Fatalf("second notify: %v", err)
		}
		if matches.tokenReads != 1 {
			t.Errorf("token reads = %d, want 1 (second resolved from cache)", matches.tokenReads)
		}
	})
}

func TestSweepUnsent(t *testing.T) {
	matches, items, listings := fixtures()
	matches.matches["match-1"] = model.Match{
		ID: "match-1", WishlistItemID: "item-1", ListingID: "listing-1",
	}
	matches.matches["match-2"] = model.Match{
		ID: "match-2", WishlistItemID: "item-1", ListingID: "listing-1", NotificationSent: true,
	}
	matches.tokens["buyer-1"] = "ExponentPushToken[abc]"
	sender := &mockSender{}
	uc := usecase.New(&mockLogger{}, matches, items, listings, &mockDecider{}, sender, 1)

	out, err := uc.SweepUnsent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Scanned != 1 {
		t.Errorf("scanned = %d, want 1", out.Scanned)
	}
	if out.Sent != 1 {
		t.Errorf("sent = %d, want 1", out.Sent)
	}
	if len(sender.sent) != 1 {
		t.Errorf("delivered = %d, want 1", len(sender.sent))
	}
}

func TestRegisterPushToken(t *testing.T) {
	matches, items, listings := fixtures()
	uc := usecase.New(&mockLogger{}, matches, items, listings, &mockDecider{}, &mockSender{}, 1)
	sc := model.Scope{UserID: "buyer-1"}

	if err := uc.RegisterPushToken(context.Background(), sc, "  "); !errors.Is(err, match.ErrEmptyToken) {
		t.Errorf("err = %v, want ErrEmptyToken", err)
	}

	if err := uc.RegisterPushToken(context.Background(), sc, "ExponentPushToken[xyz]"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches.tokens["buyer-1"] != "ExponentPushToken[xyz]" {
		t.Errorf("token not stored: %q", matches.tokens["buyer-1"])
	}
}
