package entities

import (
	"sort"
	"strings"
	"time"

	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"
)

type Conversation struct {
	ConversationID string
	GigID          string
	ApplicationID  string
	CompanyID      string
	StudentID      string
	CreatedAt      time.Time
	Messages       []Message
}

type Message struct {
	MessageID      string
	ConversationID string
	SenderID       string
	Content        string
	CreatedAt      time.Time
}

func NewMessage(messageID string, conversationID string, senderID string, content string, createdAt time.Time) (Message, error) {
	if strings.TrimSpace(messageID) == "" ||
		strings.TrimSpace(conversationID) == "" ||
		strings.TrimSpace(senderID) == "" {
		return Message{}, domainerrors.ErrInvalidRequest
	}
	if strings.TrimSpace(content) == "" {
		return Message{}, domainerrors.ErrEmptyMessage
	}
	return Message{
		MessageID:      messageID,
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      createdAt.UTC(),
	}, nil
}

// SortMessages orders messages by creation time, falling back to id so the
// result does not depend on storage order.
func SortMessages(messages []Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].MessageID < messages[j].MessageID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}

// SortConversationsNewestFirst orders conversations by creation time descending.
func SortConversationsNewestFirst(items []Conversation) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ConversationID > items[j].ConversationID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
