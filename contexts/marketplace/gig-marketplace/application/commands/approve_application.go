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

type ApproveApplicationCommand struct {
	Caller        entities.Caller
	ApplicationID string
}

type ApproveApplicationResult struct {
	Conversation entities.Conversation
}

type ApproveApplicationUseCase struct {
	Gigs         ports.GigRepository
	Applications ports.ApplicationRepository
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	Logger       *slog.Logger
}

// Execute approves the application and opens its conversation in one
// repository call. Repeated approvals return the conversation opened first.
func (u ApproveApplicationUseCase) Execute(ctx context.Context, cmd ApproveApplicationCommand) (ApproveApplicationResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := services.PreAuthorize(services.OperationApprove, cmd.Caller); err != nil {
		return ApproveApplicationResult{}, err
	}

	item, err := u.Applications.GetApplication(ctx, cmd.ApplicationID)
	if err != nil {
		return ApproveApplicationResult{}, err
	}
	gig, err := u.Gigs.GetGig(ctx, item.GigID)
	if err != nil {
		return ApproveApplicationResult{}, err
	}
	if err := services.Authorize(services.OperationApprove, cmd.Caller, services.Resource{
		CompanyID: gig.CompanyID,
		StudentID: item.StudentID,
	}); err != nil {
		logger.Warn("approve application forbidden",
			"event", "approve_application_forbidden",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"application_id", item.ApplicationID,
			"user_id", cmd.Caller.UserID,
		)
		return ApproveApplicationResult{}, err
	}

	conversationID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return ApproveApplicationResult{}, err
	}
	now := u.now()
	candidate := entities.Conversation{
		ConversationID: conversationID,
		GigID:          gig.GigID,
		ApplicationID:  item.ApplicationID,
		CompanyID:      gig.CompanyID,
		StudentID:      item.StudentID,
		CreatedAt:      now,
	}

	conversation, err := u.Applications.ApproveApplication(ctx, item.ApplicationID, now, candidate)
	if err != nil {
		logger.Error("approve application failed on write",
			"event", "approve_application_write_failed",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"application_id", item.ApplicationID,
			"error", err.Error(),
		)
		return ApproveApplicationResult{}, err
	}
	entities.SortMessages(conversation.Messages)

	logger.Info("gig application approved",
		"event", "gig_marketplace_application_approved",
		"module", "marketplace/gig-marketplace",
		"layer", "application",
		"application_id", item.ApplicationID,
		"conversation_id", conversation.ConversationID,
		"conversation_opened", conversation.ConversationID == candidate.ConversationID,
	)
	return ApproveApplicationResult{Conversation: conversation}, nil
}

func (u ApproveApplicationUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
