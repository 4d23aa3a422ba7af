package queries

import (
	"context"
	"log/slog"

	application "talentia/contexts/marketplace/gig-marketplace/application"
	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	"talentia/contexts/marketplace/gig-marketplace/domain/services"
	"talentia/contexts/marketplace/gig-marketplace/ports"
)

type ListOpenGigsResult struct {
	Items []entities.GigListing
}

// ListOpenGigsUseCase backs the public gig board.
type ListOpenGigsUseCase struct {
	Gigs      ports.GigRepository
	Directory ports.UserDirectory
	Logger    *slog.Logger
}

func (u ListOpenGigsUseCase) Execute(ctx context.Context) (ListOpenGigsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	items, err := u.Gigs.ListGigs(ctx, ports.GigFilter{Status: entities.GigStatusOpen})
	if err != nil {
		logger.Error("list open gigs failed",
			"event", "list_open_gigs_failed",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"error", err.Error(),
		)
		return ListOpenGigsResult{}, err
	}
	listings, err := application.BuildGigListings(ctx, u.Gigs, u.Directory, items)
	if err != nil {
		return ListOpenGigsResult{}, err
	}
	return ListOpenGigsResult{Items: listings}, nil
}

type ListMyGigsQuery struct {
	Caller entities.Caller
}

type ListMyGigsResult struct {
	Items []entities.GigListing
}

type ListMyGigsUseCase struct {
	Gigs      ports.GigRepository
	Directory ports.UserDirectory
	Logger    *slog.Logger
}

func (u ListMyGigsUseCase) Execute(ctx context.Context, query ListMyGigsQuery) (ListMyGigsResult, error) {
	if err := services.Authorize(services.OperationListMyGigs, query.Caller, services.Resource{}); err != nil {
		return ListMyGigsResult{}, err
	}
	items, err := u.Gigs.ListGigs(ctx, ports.GigFilter{CompanyID: query.Caller.UserID})
	if err != nil {
		return ListMyGigsResult{}, err
	}
	listings, err := application.BuildGigListings(ctx, u.Gigs, u.Directory, items)
	if err != nil {
		return ListMyGigsResult{}, err
	}
	return ListMyGigsResult{Items: listings}, nil
}
