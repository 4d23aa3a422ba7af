package commands

import (
	"context"
	"log/slog"
	"time"

	application "talentia/contexts/marketplace/gig-marketplace/application"
	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	"talentia/contexts/marketplace/gig-marketplace/domain/services"
	"talentia/contexts/marketplace/gig-marketplace/ports"
)

type PostGigCommand struct {
	Caller entities.Caller
	Draft  entities.GigDraft
}

type PostGigResult struct {
	Listing entities.GigListing
}

type PostGigUseCase struct {
	Gigs        ports.GigRepository
	Directory   ports.UserDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u PostGigUseCase) Execute(ctx context.Context, cmd PostGigCommand) (PostGigResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := services.Authorize(services.OperationPostGig, cmd.Caller, services.Resource{}); err != nil {
		logger.Warn("post gig forbidden",
			"event", "post_gig_forbidden",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"user_id", cmd.Caller.UserID,
			"role", cmd.Caller.Role,
		)
		return PostGigResult{}, err
	}

	gigID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return PostGigResult{}, err
	}
	gig, err := entities.NewGig(gigID, cmd.Caller.UserID, cmd.Draft, u.now())
	if err != nil {
		return PostGigResult{}, err
	}
	if err := u.Gigs.CreateGig(ctx, gig); err != nil {
		logger.Error("post gig failed on write",
			"event", "post_gig_write_failed",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"company_id", gig.CompanyID,
			"error", err.Error(),
		)
		return PostGigResult{}, err
	}

	listings, err := application.BuildGigListings(ctx, u.Gigs, u.Directory, []entities.Gig{gig})
	if err != nil {
		return PostGigResult{}, err
	}

	logger.Info("gig posted",
		"event", "gig_marketplace_gig_posted",
		"module", "marketplace/gig-marketplace",
		"layer", "application",
		"gig_id", gig.GigID,
		"company_id", gig.CompanyID,
	)
	return PostGigResult{Listing: listings[0]}, nil
}

func (u PostGigUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
