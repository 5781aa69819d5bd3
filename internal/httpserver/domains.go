package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	listingHTTP "wishlist-matching/internal/listing/delivery/http"
	listingRepo "wishlist-matching/internal/listing/repository/postgre"
	listingUC "wishlist-matching/internal/listing/usecase"
	matchHTTP "wishlist-matching/internal/match/delivery/http"
	matchRepo "wishlist-matching/internal/match/repository/postgre"
	matchUC "wishlist-matching/internal/match/usecase"
	"wishlist-matching/internal/middleware"
	wishlistHTTP "wishlist-matching/internal/wishlist/delivery/http"
	wishlistRepo "wishlist-matching/internal/wishlist/repository/postgre"
	wishlistUC "wishlist-matching/internal/wishlist/usecase"
)

// setupDomains initializes the domains and registers their routes.
//
// Per-domain pattern:
//  1. Repository:   repo := domainRepo.New(srv.postgresDB, srv.l)
//  2. UseCase:      uc := domainUC.New(srv.l, repo, ...)
//  3. HTTP handler: h := domainHTTP.New(srv.l, uc)
//  4. Routes:       domainHTTP.RegisterRoutes(rg.Group("/resource"), h, mw)
func (srv HTTPServer) setupDomains(ctx context.Context, api, internal *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	wishlistRepository := wishlistRepo.New(srv.postgresDB, srv.l)
	listingRepository := listingRepo.New(srv.postgresDB, srv.l)
	matchRepository := matchRepo.New(srv.postgresDB, srv.l)

	// 2. UseCases. The match usecase is wired first so listing
	// creation can hand new listings to the pipeline.
	matchUseCase := matchUC.New(srv.l, matchRepository, wishlistRepository, listingRepository, srv.engine, srv.sender, srv.maxWorkers)
	wishlistUseCase := wishlistUC.New(srv.l, wishlistRepository, srv.categories)
	listingUseCase := listingUC.New(srv.l, listingRepository, matchUseCase, srv.categories)

	// 3+4. Handlers and routes
	wishlistHTTP.RegisterRoutes(api.Group("/wishlist"), wishlistHTTP.New(srv.l, wishlistUseCase), mw)
	listingHTTP.RegisterRoutes(api.Group("/listings"), listingHTTP.New(srv.l, listingUseCase), mw)

	matchHandler := matchHTTP.New(srv.l, matchUseCase, listingUseCase)
	matchHTTP.RegisterRoutes(api, matchHandler, mw)
	matchHTTP.RegisterInternalRoutes(internal, matchHandler, mw)

	srv.l.Infof(ctx, "Domains registered: wishlist, listings, matches")
	return nil
}
