package queries

import (
	"context"
	"log/slog"
	"sort"

	application "talentia/contexts/marketplace/gig-marketplace/application"
	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	"talentia/contexts/marketplace/gig-marketplace/domain/services"
	"talentia/contexts/marketplace/gig-marketplace/ports"
)

type ListApplicationsQuery struct {
	Caller entities.Caller
	GigID  string
}

type ListApplicationsResult struct {
	Items []entities.ApplicationView
}

type ListApplicationsUseCase struct {
	Gigs         ports.GigRepository
	Applications ports.ApplicationRepository
	Directory    ports.UserDirectory
	Logger       *slog.Logger
}

func (u ListApplicationsUseCase) Execute(ctx context.Context, query ListApplicationsQuery) (ListApplicationsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := services.PreAuthorize(services.OperationListApplications, query.Caller); err != nil {
		return ListApplicationsResult{}, err
	}

	gig, err := u.Gigs.GetGig(ctx, query.GigID)
	if err != nil {
		return ListApplicationsResult{}, err
	}
	if err := services.Authorize(services.OperationListApplications, query.Caller, services.Resource{
		CompanyID: gig.CompanyID,
	}); err != nil {
		logger.Warn("list applications forbidden",
			"event", "list_applications_forbidden",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"gig_id", gig.GigID,
			"user_id", query.Caller.UserID,
		)
		return ListApplicationsResult{}, err
	}

	items, err := u.Applications.ListApplicationsByGig(ctx, gig.GigID)
	if err != nil {
		return ListApplicationsResult{}, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AppliedAt.Equal(items[j].AppliedAt) {
			return items[i].ApplicationID > items[j].ApplicationID
		}
		return items[i].AppliedAt.After(items[j].AppliedAt)
	})

	studentIDs := make([]string, 0, len(items))
	for _, item := range items {
		studentIDs = append(studentIDs, item.StudentID)
	}
	names, err := application.ResolveDisplayNames(ctx, u.Directory, studentIDs)
	if err != nil {
		return ListApplicationsResult{}, err
	}

	views := make([]entities.ApplicationView, 0, len(items))
	for _, item := range items {
		views = append(views, entities.ApplicationView{
			Application: item,
			StudentName: names[item.StudentID],
		})
	}
	return ListApplicationsResult{Items: views}, nil
}
