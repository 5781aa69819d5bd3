package usecase

import (
	"time"

	"wishlist-matching/internal/listing"
	"wishlist-matching/internal/listing/repository"
	pkgLog "wishlist-matching/pkg/log"
)

// matchTimeout bounds one background matching run for a new listing.
const matchTimeout = 2 * time.Minute

// implUseCase is the private implementation of listing.UseCase.
type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	matcher    listing.Matcher
	categories map[string]struct{}
}

// New creates a new listing UseCase instance. matcher may be nil, in
// which case created listings are not matched (sweeper-only deployments).
func New(l pkgLog.Logger, repo repository.Repository, matcher listing.Matcher, categories []string) *implUseCase {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		matcher:    matcher,
		categories: set,
	}
}

func (uc *implUseCase) validCategories(categories []string) bool {
	for _, c := range categories {
		if _, ok := uc.categories[c]; !ok {
			return false
		}
	}
	return true
}
