package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "talentia/contexts/marketplace/gig-marketplace/application"
	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	"talentia/contexts/marketplace/gig-marketplace/domain/services"
	"talentia/contexts/marketplace/gig-marketplace/ports"
)

type ReleaseContractCommand struct {
	Caller     entities.Caller
	ContractID string
	Rating     *float64
	Comment    string
}

type ReleaseContractResult struct {
	Contract entities.ContractView
	Payout   *entities.Payout
	Replayed bool
}

type ReleaseContractUseCase struct {
	Gigs         ports.GigRepository
	Applications ports.ApplicationRepository
	Contracts    ports.ContractRepository
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	Logger       *slog.Logger
}

// Execute runs the release in this order:
// 1) resolve the contract -> application -> gig chain
// 2) ownership check against the gig's company
// 3) one repository transaction for payment, payout, contract, gig and review.
func (u ReleaseContractUseCase) Execute(ctx context.Context, cmd ReleaseContractCommand) (ReleaseContractResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := services.PreAuthorize(services.OperationRelease, cmd.Caller); err != nil {
		return ReleaseContractResult{}, err
	}

	current, err := u.Contracts.GetContract(ctx, cmd.ContractID)
	if err != nil {
		return ReleaseContractResult{}, err
	}
	item, err := u.Applications.GetApplication(ctx, current.Contract.ApplicationID)
	if err != nil {
		return ReleaseContractResult{}, err
	}
	gig, err := u.Gigs.GetGig(ctx, current.Contract.GigID)
	if err != nil {
		return ReleaseContractResult{}, err
	}
	if err := services.Authorize(services.OperationRelease, cmd.Caller, services.Resource{
		CompanyID: gig.CompanyID,
		StudentID: item.StudentID,
	}); err != nil {
		logger.Warn("release contract forbidden",
			"event", "release_contract_forbidden",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"contract_id", cmd.ContractID,
			"user_id", cmd.Caller.UserID,
		)
		return ReleaseContractResult{}, err
	}

	now := u.now()
	var review *entities.RatingReview
	if cmd.Rating != nil {
		if err := entities.ValidateRating(*cmd.Rating); err != nil {
			return ReleaseContractResult{}, err
		}
		reviewID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return ReleaseContractResult{}, err
		}
		review = &entities.RatingReview{
			ReviewID:   reviewID,
			FromUserID: cmd.Caller.UserID,
			ToUserID:   item.StudentID,
			Rating:     *cmd.Rating,
			Comment:    strings.TrimSpace(cmd.Comment),
			Context:    entities.ReviewContextGig,
			CreatedAt:  now,
		}
	}

	payoutID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return ReleaseContractResult{}, err
	}

	result, err := u.Contracts.ReleaseContract(ctx, ports.Release{
		ContractID: current.Contract.ContractID,
		GigID:      gig.GigID,
		StudentID:  item.StudentID,
		PayoutID:   payoutID,
		ReleasedAt: now,
		Review:     review,
	})
	if err != nil {
		logger.Error("release contract failed on write transaction",
			"event", "release_contract_write_failed",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"contract_id", cmd.ContractID,
			"error", err.Error(),
		)
		return ReleaseContractResult{}, err
	}
	if result.AlreadyClosed {
		logger.Info("contract already released",
			"event", "release_contract_replayed",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"contract_id", cmd.ContractID,
		)
		return ReleaseContractResult{Contract: result.Contract, Payout: result.Payout, Replayed: true}, nil
	}
	if result.PaymentMissing {
		logger.Warn("released contract had no escrow payment",
			"event", "release_contract_payment_missing",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"contract_id", cmd.ContractID,
		)
	}

	logger.Info("contract released",
		"event", "gig_marketplace_contract_released",
		"module", "marketplace/gig-marketplace",
		"layer", "application",
		"contract_id", cmd.ContractID,
		"gig_id", gig.GigID,
		"student_id", item.StudentID,
		"payout_id", payoutID,
		"reviewed", review != nil,
	)
	return ReleaseContractResult{Contract: result.Contract, Payout: result.Payout}, nil
}

func (u ReleaseContractUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
