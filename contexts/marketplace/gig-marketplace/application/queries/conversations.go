package queries

import (
	"context"
	"log/slog"

	application "talentia/contexts/marketplace/gig-marketplace/application"
	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	"talentia/contexts/marketplace/gig-marketplace/domain/services"
	"talentia/contexts/marketplace/gig-marketplace/ports"
)

type GetConversationQuery struct {
	Caller        entities.Caller
	ApplicationID string
}

type GetConversationResult struct {
	Conversation entities.Conversation
}

type GetConversationUseCase struct {
	Conversations ports.ConversationRepository
	Logger        *slog.Logger
}

func (u GetConversationUseCase) Execute(ctx context.Context, query GetConversationQuery) (GetConversationResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := services.PreAuthorize(services.OperationGetConversation, query.Caller); err != nil {
		return GetConversationResult{}, err
	}
	conversation, err := u.Conversations.GetConversationByApplication(ctx, query.ApplicationID)
	if err != nil {
		return GetConversationResult{}, err
	}
	if err := services.Authorize(services.OperationGetConversation, query.Caller, services.Resource{
		CompanyID: conversation.CompanyID,
		StudentID: conversation.StudentID,
	}); err != nil {
		logger.Warn("get conversation forbidden",
			"event", "get_conversation_forbidden",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"conversation_id", conversation.ConversationID,
			"user_id", query.Caller.UserID,
		)
		return GetConversationResult{}, err
	}
	entities.SortMessages(conversation.Messages)
	return GetConversationResult{Conversation: conversation}, nil
}

type ListMyConversationsQuery struct {
	Caller entities.Caller
}

type ListMyConversationsResult struct {
	Items []entities.Conversation
}

type ListMyConversationsUseCase struct {
	Conversations ports.ConversationRepository
	Logger        *slog.Logger
}

func (u ListMyConversationsUseCase) Execute(ctx context.Context, query ListMyConversationsQuery) (ListMyConversationsResult, error) {
	if err := services.PreAuthorize(services.OperationGetConversation, query.Caller); err != nil {
		return ListMyConversationsResult{}, err
	}
	items, err := u.Conversations.ListConversationsByParticipant(ctx, query.Caller.UserID)
	if err != nil {
		return ListMyConversationsResult{}, err
	}
	for i := range items {
		entities.SortMessages(items[i].Messages)
	}
	entities.SortConversationsNewestFirst(items)
	return ListMyConversationsResult{Items: items}, nil
}
