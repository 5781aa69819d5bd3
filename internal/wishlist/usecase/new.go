package usecase

import (
	"wishlist-matching/internal/wishlist/repository"
	pkgLog "wishlist-matching/pkg/log"
)

// implUseCase is the private implementation of wishlist.UseCase.
type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	categories map[string]struct{}
}

// New creates a new wishlist UseCase instance. categories is the
// closed category tag set, loaded once from config.
func New(l pkgLog.Logger, repo repository.Repository, categories []string) *implUseCase {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		categories: set,
	}
}

func (uc *implUseCase) validCategory(category string) bool {
	if category == "" {
		return true // category is optional
	}
	_, ok := uc.categories[category]
	return ok
}
