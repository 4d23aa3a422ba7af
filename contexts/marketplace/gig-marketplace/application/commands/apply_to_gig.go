package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	application "talentia/contexts/marketplace/gig-marketplace/application"
	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"
	"talentia/contexts/marketplace/gig-marketplace/domain/services"
	"talentia/contexts/marketplace/gig-marketplace/ports"
)

type ApplyToGigCommand struct {
	Caller   entities.Caller
	GigID    string
	Proposal string
}

type ApplyToGigResult struct {
	Application entities.ApplicationView
}

type ApplyToGigUseCase struct {
	Gigs         ports.GigRepository
	Applications ports.ApplicationRepository
	Directory    ports.UserDirectory
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	Logger       *slog.Logger
}

// Execute relies on the (gig_id, student_id) uniqueness of the repository
// rather than a read-then-insert check, so concurrent applies from the same
// student collapse to one row and the losers get ErrDuplicateApplication.
func (u ApplyToGigUseCase) Execute(ctx context.Context, cmd ApplyToGigCommand) (ApplyToGigResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := services.Authorize(services.OperationApply, cmd.Caller, services.Resource{}); err != nil {
		return ApplyToGigResult{}, err
	}

	gig, err := u.Gigs.GetGig(ctx, cmd.GigID)
	if err != nil {
		return ApplyToGigResult{}, err
	}

	applicationID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return ApplyToGigResult{}, err
	}
	item, err := entities.NewGigApplication(applicationID, gig.GigID, cmd.Caller.UserID, cmd.Proposal, u.now())
	if err != nil {
		return ApplyToGigResult{}, err
	}

	if err := u.Applications.CreateApplication(ctx, item); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateApplication) {
			logger.Warn("duplicate gig application",
				"event", "apply_to_gig_duplicate",
				"module", "marketplace/gig-marketplace",
				"layer", "application",
				"gig_id", gig.GigID,
				"student_id", cmd.Caller.UserID,
			)
			return ApplyToGigResult{}, err
		}
		logger.Error("apply to gig failed on write",
			"event", "apply_to_gig_write_failed",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"gig_id", gig.GigID,
			"student_id", cmd.Caller.UserID,
			"error", err.Error(),
		)
		return ApplyToGigResult{}, err
	}

	names, err := application.ResolveDisplayNames(ctx, u.Directory, []string{item.StudentID})
	if err != nil {
		return ApplyToGigResult{}, err
	}

	logger.Info("gig application created",
		"event", "gig_marketplace_application_created",
		"module", "marketplace/gig-marketplace",
		"layer", "application",
		"application_id", item.ApplicationID,
		"gig_id", item.GigID,
		"student_id", item.StudentID,
	)
	return ApplyToGigResult{
		Application: entities.ApplicationView{
			Application: item,
			StudentName: names[item.StudentID],
		},
	}, nil
}

func (u ApplyToGigUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
