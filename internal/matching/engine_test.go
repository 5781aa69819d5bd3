package matching_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wishlist-matching/internal/matching"
	"wishlist-matching/internal/model"
	"wishlist-matching/pkg/verifier"
)

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

type mockVerifier struct {
	calls  int
	result verifier.Result
	err    error
}

func (m *mockVerifier) Verify(ctx context.Context, req verifier.Request) (verifier.Result, error) {
	m.calls++
	return m.result, m.err
}

func newEngine(v verifier.Verifier) *matching.Engine {
	return matching.NewEngine(matching.Config{}, v, &mockLogger{})
}

func TestDecideHighConfidenceTwoHits(t *testing.T) {
	v := &mockVerifier{}
	engine := newEngine(v)

	item := model.WishlistItem{ID: "w1", Description: "vintage wine glass set"}
	listing := model.Listing{ID: "l1", Title: "Wine and glass collection", Description: "some old stuff"}

	verdict := engine.Decide(context.Background(), item, listing)

	if !verdict.IsMatch {
		t.Fatalf("expected a match")
	}
	if verdict.Confidence != model.ConfidenceHigh {
		t.Errorf("expected high confidence, got %s", verdict.Confidence)
	}
	if !strings.HasPrefix(verdict.Reason, "Keyword match: ") {
		t.Errorf("unexpected reason %q", verdict.Reason)
	}
	if !strings.Contains(verdict.Reason, "wine") || !strings.Contains(verdict.Reason, "glass") {
		t.Errorf("reason should list the matched tokens, got %q", verdict.Reason)
	}
	if v.calls != 0 {
		t.Errorf("rule 1 must not invoke the verifier, got %d calls", v.calls)
	}
}

func TestDecideHighConfidenceSingleLongKeyword(t *testing.T) {
	v := &mockVerifier{}
	engine := newEngine(v)

	item := model.WishlistItem{ID: "w1", Name: "electronics"}
	listing := model.Listing{ID: "l1", Title: "Old electronics and junk", Description: "no overlap otherwise"}

	verdict := engine.Decide(context.Background(), item, listing)

	if !verdict.IsMatch || verdict.Confidence != model.ConfidenceHigh {
		t.Fatalf("expected high-confidence match via long keyword, got %+v", verdict)
	}
	if verdict.Reason != "Keyword match: electronics" {
		t.Errorf("unexpected reason %q", verdict.Reason)
	}
	if v.calls != 0 {
		t.Errorf("verifier must not be invoked, got %d calls", v.calls)
	}
}

func TestDecideCategoryFallbackWhenVerifierDeclines(t *testing.T) {
	v := &mockVerifier{result: verifier.Result{IsMatch: false, Reason: "different item"}}
	engine := newEngine(v)

	item := model.WishlistItem{ID: "w1", Name: "wine rack", Category: "kitchen"}
	listing := model.Listing{
		ID:          "l1",
		Title:       "Kitchen clearout",
		Description: "wine bottles and pans",
		Categories:  []string{"kitchen"},
	}

	verdict := engine.Decide(context.Background(), item, listing)

	if !verdict.IsMatch {
		t.Fatalf("expected a category-backed match")
	}
	if verdict.Confidence != model.ConfidenceMedium {
		t.Errorf("expected medium confidence, got %s", verdict.Confidence)
	}
	if !strings.HasPrefix(verdict.Reason, "Category match: kitchen") {
		t.Errorf("unexpected reason %q", verdict.Reason)
	}
	if !strings.Contains(verdict.Reason, "partial keyword: wine") {
		t.Errorf("expected partial keyword suffix, got %q", verdict.Reason)
	}
	if v.calls != 1 {
		t.Errorf("expected exactly one verifier call, got %d", v.calls)
	}
}

func TestDecideCategoryFallbackWhenVerifierFails(t *testing.T) {
	v := &mockVerifier{err: verifier.ErrUnavailable}
	engine := newEngine(v)

	item := model.WishlistItem{ID: "w1", Name: "wine rack", Category: "kitchen"}
	listing := model.Listing{
		ID:          "l1",
		Title:       "Kitchen clearout with wine bottles",
		Categories:  []string{"kitchen"},
	}

	verdict := engine.Decide(context.Background(), item, listing)

	if !verdict.IsMatch || verdict.Confidence != model.ConfidenceMedium {
		t.Fatalf("verifier failure must degrade to medium, got %+v", verdict)
	}
	if !strings.HasPrefix(verdict.Reason, "Category match: kitchen") {
		t.Errorf("unexpected reason %q", verdict.Reason)
	}
}

func TestDecideVerifiedViaCategoryRule(t *testing.T) {
	v := &mockVerifier{result: verifier.Result{IsMatch: true, Reason: "The sale lists a wine rack"}}
	engine := newEngine(v)

	item := model.WishlistItem{ID: "w1", Name: "wine rack", Category: "kitchen"}
	listing := model.Listing{
		ID:         "l1",
		Title:      "Wine stuff",
		Categories: []string{"kitchen"},
	}

	verdict := engine.Decide(context.Background(), item, listing)

	if !verdict.IsMatch || verdict.Confidence != model.ConfidenceVerified {
		t.Fatalf("expected verified match, got %+v", verdict)
	}
	if verdict.Reason != "AI verified: The sale lists a wine rack" {
		t.Errorf("unexpected reason %q", verdict.Reason)
	}
}

func TestDecideSingleKeywordEscalation(t *testing.T) {
	t.Run("verifier confirms", func(t *testing.T) {
		v := &mockVerifier{result: verifier.Result{IsMatch: true, Reason: "Likely the same lamp"}}
		engine := newEngine(v)

		item := model.WishlistItem{ID: "w1", Name: "brass lamp"}
		listing := model.Listing{ID: "l1", Title: "Old lamp for sale", Categories: []string{"furniture"}}

		verdict := engine.Decide(context.Background(), item, listing)

		if !verdict.IsMatch || verdict.Confidence != model.ConfidenceVerified {
			t.Fatalf("expected verified match, got %+v", verdict)
		}
		if v.calls != 1 {
			t.Errorf("expected one verifier call, got %d", v.calls)
		}
	})

	t.Run("verifier declines", func(t *testing.T) {
		v := &mockVerifier{result: verifier.Result{IsMatch: false}}
		engine := newEngine(v)

		item := model.WishlistItem{ID: "w1", Name: "brass lamp"}
		listing := model.Listing{ID: "l1", Title: "Old lamp for sale"}

		verdict := engine.Decide(context.Background(), item, listing)

		if verdict.IsMatch {
			t.Fatalf("expected no match, got %+v", verdict)
		}
		if verdict.Reason != matching.ReasonNoMatch {
			t.Errorf("unexpected reason %q", verdict.Reason)
		}
	})

	t.Run("verifier fails", func(t *testing.T) {
		v := &mockVerifier{err: errors.New("boom")}
		engine := newEngine(v)

		item := model.WishlistItem{ID: "w1", Name: "brass lamp"}
		listing := model.Listing{ID: "l1", Title: "Old lamp for sale"}

		verdict := engine.Decide(context.Background(), item, listing)

		if verdict.IsMatch {
			t.Fatalf("verifier failure on rule 3 must yield no match, got %+v", verdict)
		}
	})
}

func TestDecideNoOverlap(t *testing.T) {
	v := &mockVerifier{}
	engine := newEngine(v)

	item := model.WishlistItem{ID: "w1", Name: "antique lamp"}
	listing := model.Listing{ID: "l1", Title: "Pots and pans", Description: "cookware in good shape"}

	verdict := engine.Decide(context.Background(), item, listing)

	if verdict.IsMatch {
		t.Fatalf("expected no match, got %+v", verdict)
	}
	if v.calls != 0 {
		t.Errorf("no-overlap pair must not invoke the verifier, got %d calls", v.calls)
	}
}

func TestDecideNilVerifier(t *testing.T) {
	engine := matching.NewEngine(matching.Config{}, nil, &mockLogger{})

	item := model.WishlistItem{ID: "w1", Name: "wine rack", Category: "kitchen"}
	listing := model.Listing{
		ID:         "l1",
		Title:      "Wine things",
		Categories: []string{"kitchen"},
	}

	verdict := engine.Decide(context.Background(), item, listing)

	if !verdict.IsMatch || verdict.Confidence != model.ConfidenceMedium {
		t.Fatalf("nil verifier must behave like a failed verification, got %+v", verdict)
	}
}
