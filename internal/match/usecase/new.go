package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	listingRepo "wishlist-matching/internal/listing/repository"
	"wishlist-matching/internal/match"
	"wishlist-matching/internal/match/repository"
	wishlistRepo "wishlist-matching/internal/wishlist/repository"
	pkgLog "wishlist-matching/pkg/log"
	"wishlist-matching/pkg/push"
)

const (
	tokenCacheSize = 4096
	tokenCacheTTL  = 5 * time.Minute

	defaultWorkers = 4
	sweepBatchSize = 200
)

// implUseCase is the private implementation of match.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	items    wishlistRepo.Repository
	listings listingRepo.Repository
	engine   match.Decider
	sender   push.Sender

	// tokens caches resolved push tokens. Only non-empty tokens are
	// cached, so a user without a device is always re-checked.
	tokens  *expirable.LRU[string, string]
	workers int
}

// New creates a new match UseCase instance. sender may be nil, in
// which case notifications are skipped and matches stay retryable.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	items wishlistRepo.Repository,
	listings listingRepo.Repository,
	engine match.Decider,
	sender push.Sender,
	maxWorkers int,
) *implUseCase {
	if maxWorkers <= 0 {
		maxWorkers = defaultWorkers
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		items:    items,
		listings: listings,
		engine:   engine,
		sender:   sender,
		tokens:   expirable.NewLRU[string, string](tokenCacheSize, nil, tokenCacheTTL),
		workers:  maxWorkers,
	}
}
