package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"wishlist-matching/pkg/gemini"
)

const (
	defaultTimeout     = 8 * time.Second
	verifyTemperature  = 0.1 // near-deterministic JSON output
	verifyMaxOutTokens = 256
)

// GeminiConfig configures the Gemini-backed verifier.
type GeminiConfig struct {
	// Timeout bounds a single Verify call. Zero means the default.
	Timeout time.Duration
	// CallsPerMinute bounds the verifier call volume. Zero disables
	// the limiter.
	CallsPerMinute int
}

// GeminiVerifier judges semantic relevance via the Gemini API.
type GeminiVerifier struct {
	client  *gemini.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// NewGemini creates a Gemini-backed Verifier.
func NewGemini(client *gemini.Client, cfg GeminiConfig) *GeminiVerifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.CallsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.CallsPerMinute)/60.0), cfg.CallsPerMinute)
	}

	return &GeminiVerifier{
		client:  client,
		timeout: timeout,
		limiter: limiter,
	}
}

// Verify asks Gemini whether the listing is relevant to the wishlist
// item. Every failure mode (limiter, timeout, API error, malformed
// output) is reported as an error wrapping ErrUnavailable so callers
// can degrade uniformly.
func (v *GeminiVerifier) Verify(ctx context.Context, req Request) (Result, error) {
	if v.limiter != nil && !v.limiter.Allow() {
		return Result{}, fmt.Errorf("%w: %w", ErrUnavailable, ErrRateLimited)
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	itemText := strings.TrimSpace(req.ItemName + " " + req.ItemDescription)
	if req.ItemCategory != "" {
		itemText += fmt.Sprintf(" (category: %s)", req.ItemCategory)
	}
	listingText := strings.TrimSpace(req.ListingTitle + " " + req.ListingDescription)

	prompt := gemini.BuildMatchVerificationPrompt(itemText, listingText, req.ListingCategories)

	resp, err := v.client.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     verifyTemperature,
			MaxOutputTokens: verifyMaxOutTokens,
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return Result{}, fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	raw := resp.Candidates[0].Content.Parts[0].Text
	cleaned := sanitizeJSONResponse(raw)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return Result{}, fmt.Errorf("%w: malformed judgment %q: %v", ErrUnavailable, raw, err)
	}

	return result, nil
}

// sanitizeJSONResponse removes markdown code fences and leading or
// trailing prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first { and last }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
