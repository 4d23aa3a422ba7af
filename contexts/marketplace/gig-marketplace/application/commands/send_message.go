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

type SendMessageCommand struct {
	Caller        entities.Caller
	ApplicationID string
	Content       string
}

type SendMessageResult struct {
	Message entities.Message
}

type SendMessageUseCase struct {
	Conversations ports.ConversationRepository
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Logger        *slog.Logger
}

func (u SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (SendMessageResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := services.PreAuthorize(services.OperationSendMessage, cmd.Caller); err != nil {
		return SendMessageResult{}, err
	}

	conversation, err := u.Conversations.GetConversationByApplication(ctx, cmd.ApplicationID)
	if err != nil {
		return SendMessageResult{}, err
	}
	if err := services.Authorize(services.OperationSendMessage, cmd.Caller, services.Resource{
		CompanyID: conversation.CompanyID,
		StudentID: conversation.StudentID,
	}); err != nil {
		logger.Warn("send message forbidden",
			"event", "send_message_forbidden",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"conversation_id", conversation.ConversationID,
			"user_id", cmd.Caller.UserID,
		)
		return SendMessageResult{}, err
	}

	messageID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return SendMessageResult{}, err
	}
	message, err := entities.NewMessage(messageID, conversation.ConversationID, cmd.Caller.UserID, cmd.Content, u.now())
	if err != nil {
		return SendMessageResult{}, err
	}
	if err := u.Conversations.AppendMessage(ctx, message); err != nil {
		logger.Error("send message failed on write",
			"event", "send_message_write_failed",
			"module", "marketplace/gig-marketplace",
			"layer", "application",
			"conversation_id", conversation.ConversationID,
			"error", err.Error(),
		)
		return SendMessageResult{}, err
	}

	logger.Info("message sent",
		"event", "gig_marketplace_message_sent",
		"module", "marketplace/gig-marketplace",
		"layer", "application",
		"conversation_id", conversation.ConversationID,
		"message_id", message.MessageID,
		"sender_id", message.SenderID,
	)
	return SendMessageResult{Message: message}, nil
}

func (u SendMessageUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
