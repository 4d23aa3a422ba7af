package commands

import (
	"context"
	"log/slog"
	"time"

	application "talentia/contexts/marketplace/gig-marketplace/application"
	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	"talentia/contexts/marketplace/gig-marketplace/domain/services"
	"talentia/contexts/marketplace/gig-marketplace/ports"

	"github.com/shopspring/decimal"
)

type CreateContractCommand struct {
	Caller        entities.Caller
	ApplicationID string
	AgreedAmount  decimal.Decimal
}

type CreateContractResult struct {
	Contract entities.ContractView
	Created  bool
}

type CreateContractUseCase struct {
	Gigs         ports.GigRepository
	Applications ports.ApplicationRepository
	Contracts    ports.ContractRepository
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	Logger       *slog.Logger
}

// Execute returns the existing contract for the application unchanged, even
// when the requested amount differs. Otherwise the contract and its HELD
// payment are written together.
func (u CreateContractUseCase) Execute(ctx context.Context, cmd CreateContractCommand) (CreateContractResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := services.PreAuthorize(services.OperationCreateContract, cmd.Caller); err != nil {
		return CreateContractResult{}, err
	}

	item, err := u.Applications.GetApplication(ctx, cmd.ApplicationID)
	if err != nil {
		return CreateContractResult{}, err
	}
	gig, err := u.Gigs.GetGig(ctx, item.GigID)
	if err != nil {
		return CreateContractResult{}, err
	}
	if err := services.Authorize(services.OperationCreateContract, cmd.Caller, services.Resource{
		CompanyID: gig.CompanyID,
		StudentID: item.StudentID,
	}); err != nil {
		return CreateContractResult{}, err
	}

	existing, found, err := u.Contracts.GetContractByApplication(ctx, item.ApplicationID)
	if err != nil {
		return CreateContractResult{}, err
	}
	if found {
		logger.Info("contract already exists",
			"event", "create_contract_replayed",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"application_id", item.ApplicationID,
			"contract_id", existing.Contract.ContractID,
		)
		return CreateContractResult{Contract: existing}, nil
	}

	contractID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return CreateContractResult{}, err
	}
	paymentID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return CreateContractResult{}, err
	}
	contract, payment, err := entities.NewContractWithPayment(
		contractID,
		paymentID,
		gig.GigID,
		item.ApplicationID,
		cmd.AgreedAmount,
		u.now(),
	)
	if err != nil {
		return CreateContractResult{}, err
	}

	// A concurrent request may win the application_id constraint between the
	// read above and this upsert; the repository then returns the winner.
	view, created, err := u.Contracts.CreateContractWithPayment(ctx, contract, payment)
	if err != nil {
		logger.Error("create contract failed on write",
			"event", "create_contract_write_failed",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"application_id", item.ApplicationID,
			"error", err.Error(),
		)
		return CreateContractResult{}, err
	}

	logger.Info("contract created",
		"event", "gig_marketplace_contract_created",
		"module", "marketplace/gig-marketplace",
		"layer", "application",
		"application_id", item.ApplicationID,
		"contract_id", view.Contract.ContractID,
		"agreed_amount", view.Contract.AgreedAmount.String(),
		"created", created,
	)
	return CreateContractResult{Contract: view, Created: created}, nil
}

func (u CreateContractUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
