package queries

import (
	"context"
	"log/slog"

	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	"talentia/contexts/marketplace/gig-marketplace/domain/services"
	"talentia/contexts/marketplace/gig-marketplace/ports"
)

type GetContractQuery struct {
	Caller        entities.Caller
	ApplicationID string
}

// GetContractResult leaves Contract nil while no contract exists yet.
type GetContractResult struct {
	Contract *entities.ContractView
}

type GetContractUseCase struct {
	Gigs         ports.GigRepository
	Applications ports.ApplicationRepository
	Contracts    ports.ContractRepository
	Logger       *slog.Logger
}

func (u GetContractUseCase) Execute(ctx context.Context, query GetContractQuery) (GetContractResult, error) {
	if err := services.PreAuthorize(services.OperationGetContract, query.Caller); err != nil {
		return GetContractResult{}, err
	}
	item, err := u.Applications.GetApplication(ctx, query.ApplicationID)
	if err != nil {
		return GetContractResult{}, err
	}
	gig, err := u.Gigs.GetGig(ctx, item.GigID)
	if err != nil {
		return GetContractResult{}, err
	}
	if err := services.Authorize(services.OperationGetContract, query.Caller, services.Resource{
		CompanyID: gig.CompanyID,
		StudentID: item.StudentID,
	}); err != nil {
		return GetContractResult{}, err
	}

	view, found, err := u.Contracts.GetContractByApplication(ctx, item.ApplicationID)
	if err != nil {
		return GetContractResult{}, err
	}
	if !found {
		return GetContractResult{}, nil
	}
	return GetContractResult{Contract: &view}, nil
}
