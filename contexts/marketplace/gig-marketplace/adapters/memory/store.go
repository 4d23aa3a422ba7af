package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	application "talentia/contexts/marketplace/gig-marketplace/application"
	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"
	"talentia/contexts/marketplace/gig-marketplace/ports"
)

// Store is an in-memory adapter implementing the gig marketplace ports for
// tests and local runs. One mutex stands in for the database transaction, and
// the keyed maps stand in for its unique constraints.
type Store struct {
	mu                 sync.RWMutex
	users              map[string]string
	gigs               map[string]entities.Gig
	applications       map[string]entities.GigApplication
	applicationsByPair map[string]string
	conversations      map[string]entities.Conversation
	conversationsByApp map[string]string
	messages           map[string][]entities.Message
	contracts          map[string]entities.Contract
	contractsByApp     map[string]string
	paymentsByContract map[string]entities.Payment
	payoutsByContract  map[string]entities.Payout
	reviews            []entities.RatingReview
	sequence           uint64
	logger             *slog.Logger
}

// Seed is the optional initial state of a Store.
type Seed struct {
	// Users maps user id to display name.
	Users map[string]string
	Gigs  []entities.Gig
}

func NewStore(seed Seed, logger *slog.Logger) *Store {
	users := make(map[string]string, len(seed.Users))
	for id, name := range seed.Users {
		users[id] = name
	}
	gigs := make(map[string]entities.Gig, len(seed.Gigs))
	for _, gig := range seed.Gigs {
		gigs[gig.GigID] = gig
	}
	return &Store{
		users:              users,
		gigs:               gigs,
		applications:       make(map[string]entities.GigApplication),
		applicationsByPair: make(map[string]string),
		conversations:      make(map[string]entities.Conversation),
		conversationsByApp: make(map[string]string),
		messages:           make(map[string][]entities.Message),
		contracts:          make(map[string]entities.Contract),
		contractsByApp:     make(map[string]string),
		paymentsByContract: make(map[string]entities.Payment),
		payoutsByContract:  make(map[string]entities.Payout),
		logger:             application.ResolveLogger(logger),
	}
}

func (s *Store) CreateGig(_ context.Context, gig entities.Gig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.gigs[gig.GigID]; exists {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	s.gigs[gig.GigID] = gig
	return nil
}

func (s *Store) GetGig(_ context.Context, gigID string) (entities.Gig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gig, ok := s.gigs[gigID]
	if !ok {
		return entities.Gig{}, domainerrors.ErrGigNotFound
	}
	return gig, nil
}

func (s *Store) ListGigs(_ context.Context, filter ports.GigFilter) ([]entities.Gig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Gig, 0, len(s.gigs))
	for _, gig := range s.gigs {
		if filter.Status != "" && gig.Status != filter.Status {
			continue
		}
		if filter.CompanyID != "" && gig.CompanyID != filter.CompanyID {
			continue
		}
		items = append(items, gig)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].GigID > items[j].GigID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) CountApplicationsByGig(_ context.Context, gigIDs []string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(gigIDs))
	for _, id := range gigIDs {
		wanted[id] = struct{}{}
	}
	counts := make(map[string]int, len(gigIDs))
	for _, item := range s.applications {
		if _, ok := wanted[item.GigID]; ok {
			counts[item.GigID]++
		}
	}
	return counts, nil
}

func (s *Store) CreateApplication(_ context.Context, item entities.GigApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.gigs[item.GigID]; !ok {
		return domainerrors.ErrGigNotFound
	}
	pair := applicationPairKey(item.GigID, item.StudentID)
	if _, exists := s.applicationsByPair[pair]; exists {
		return domainerrors.ErrDuplicateApplication
	}
	s.applications[item.ApplicationID] = item
	s.applicationsByPair[pair] = item.ApplicationID
	return nil
}

func (s *Store) GetApplication(_ context.Context, applicationID string) (entities.GigApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.applications[applicationID]
	if !ok {
		return entities.GigApplication{}, domainerrors.ErrApplicationNotFound
	}
	return item, nil
}

func (s *Store) ListApplicationsByGig(_ context.Context, gigID string) ([]entities.GigApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.GigApplication, 0)
	for _, item := range s.applications {
		if item.GigID == gigID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].AppliedAt.Equal(items[j].AppliedAt) {
			return items[i].ApplicationID > items[j].ApplicationID
		}
		return items[i].AppliedAt.After(items[j].AppliedAt)
	})
	return items, nil
}

func (s *Store) ApproveApplication(
	_ context.Context,
	applicationID string,
	approvedAt time.Time,
	candidate entities.Conversation,
) (entities.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.applications[applicationID]
	if !ok {
		return entities.Conversation{}, domainerrors.ErrApplicationNotFound
	}
	if item.Status != entities.ApplicationStatusApproved {
		item.Status = entities.ApplicationStatusApproved
		at := approvedAt.UTC()
		item.ApprovedAt = &at
		s.applications[applicationID] = item
	}

	if conversationID, exists := s.conversationsByApp[applicationID]; exists {
		return s.conversationWithMessages(conversationID), nil
	}
	s.conversations[candidate.ConversationID] = candidate
	s.conversationsByApp[applicationID] = candidate.ConversationID
	return s.conversationWithMessages(candidate.ConversationID), nil
}

func (s *Store) GetConversationByApplication(_ context.Context, applicationID string) (entities.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conversationID, ok := s.conversationsByApp[applicationID]
	if !ok {
		return entities.Conversation{}, domainerrors.ErrConversationNotFound
	}
	return s.conversationWithMessages(conversationID), nil
}

func (s *Store) ListConversationsByParticipant(_ context.Context, userID string) ([]entities.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Conversation, 0)
	for id, conversation := range s.conversations {
		if conversation.CompanyID != userID && conversation.StudentID != userID {
			continue
		}
		items = append(items, s.conversationWithMessages(id))
	}
	return items, nil
}

func (s *Store) AppendMessage(_ context.Context, message entities.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[message.ConversationID]; !ok {
		return domainerrors.ErrConversationNotFound
	}
	s.messages[message.ConversationID] = append(s.messages[message.ConversationID], message)
	return nil
}

func (s *Store) CreateContractWithPayment(
	_ context.Context,
	contract entities.Contract,
	payment entities.Payment,
) (entities.ContractView, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existingID, exists := s.contractsByApp[contract.ApplicationID]; exists {
		return s.contractView(existingID), false, nil
	}
	s.contracts[contract.ContractID] = contract
	s.contractsByApp[contract.ApplicationID] = contract.ContractID
	s.paymentsByContract[contract.ContractID] = payment
	return s.contractView(contract.ContractID), true, nil
}

func (s *Store) GetContract(_ context.Context, contractID string) (entities.ContractView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.contracts[contractID]; !ok {
		return entities.ContractView{}, domainerrors.ErrContractNotFound
	}
	return s.contractView(contractID), nil
}

func (s *Store) GetContractByApplication(_ context.Context, applicationID string) (entities.ContractView, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contractID, ok := s.contractsByApp[applicationID]
	if !ok {
		return entities.ContractView{}, false, nil
	}
	return s.contractView(contractID), true, nil
}

// ReleaseContract validates every row it touches before mutating any of
// them, so a failure leaves the store unchanged.
func (s *Store) ReleaseContract(_ context.Context, release ports.Release) (ports.ReleaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contract, ok := s.contracts[release.ContractID]
	if !ok {
		return ports.ReleaseResult{}, domainerrors.ErrContractNotFound
	}
	if contract.Status == entities.ContractStatusCompleted {
		result := ports.ReleaseResult{
			Contract:      s.contractView(contract.ContractID),
			AlreadyClosed: true,
		}
		if payout, exists := s.payoutsByContract[contract.ContractID]; exists {
			result.Payout = &payout
		}
		return result, nil
	}
	gig, ok := s.gigs[release.GigID]
	if !ok {
		return ports.ReleaseResult{}, domainerrors.ErrGigNotFound
	}
	if _, exists := s.payoutsByContract[contract.ContractID]; exists {
		return ports.ReleaseResult{}, domainerrors.ErrRepositoryInvariantBroke
	}

	releasedAt := release.ReleasedAt.UTC()
	payment, hasPayment := s.paymentsByContract[contract.ContractID]
	if hasPayment && payment.Status != entities.PaymentStatusPaid {
		payment.Status = entities.PaymentStatusPaid
		payment.PaidAt = &releasedAt
		s.paymentsByContract[contract.ContractID] = payment
	}

	payout := entities.Payout{
		PayoutID:    release.PayoutID,
		ContractID:  contract.ContractID,
		RecipientID: release.StudentID,
		Amount:      contract.AgreedAmount,
		Status:      entities.PayoutStatusPending,
		CreatedAt:   releasedAt,
	}
	s.payoutsByContract[contract.ContractID] = payout

	contract.Status = entities.ContractStatusCompleted
	contract.CompletedAt = &releasedAt
	s.contracts[contract.ContractID] = contract

	if gig.Status != entities.GigStatusFilled {
		gig.Status = entities.GigStatusFilled
		s.gigs[gig.GigID] = gig
	}
	if release.Review != nil {
		s.reviews = append(s.reviews, *release.Review)
	}

	return ports.ReleaseResult{
		Contract:       s.contractView(contract.ContractID),
		Payout:         &payout,
		PaymentMissing: !hasPayment,
	}, nil
}

func (s *Store) DisplayNames(_ context.Context, userIDs []string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make(map[string]string, len(userIDs))
	for _, id := range userIDs {
		if name, ok := s.users[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}

// PutUser registers a directory profile.
func (s *Store) PutUser(userID string, displayName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = displayName
}

// DeletePayment drops the escrow row of a contract. Tests use it to exercise
// releases of contracts whose payment is gone.
func (s *Store) DeletePayment(contractID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.paymentsByContract, contractID)
}

func (s *Store) Payouts() []entities.Payout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Payout, 0, len(s.payoutsByContract))
	for _, payout := range s.payoutsByContract {
		items = append(items, payout)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].PayoutID < items[j].PayoutID })
	return items
}

func (s *Store) Reviews() []entities.RatingReview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.RatingReview(nil), s.reviews...)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// NewID returns zero-padded ids so lexical order follows creation order.
func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("gm-%08d", value), nil
}

func (s *Store) conversationWithMessages(conversationID string) entities.Conversation {
	conversation := s.conversations[conversationID]
	conversation.Messages = append([]entities.Message(nil), s.messages[conversationID]...)
	return conversation
}

func (s *Store) contractView(contractID string) entities.ContractView {
	view := entities.ContractView{Contract: s.contracts[contractID]}
	if payment, ok := s.paymentsByContract[contractID]; ok {
		view.Payment = &payment
	}
	return view
}

func applicationPairKey(gigID string, studentID string) string {
	return gigID + "|" + studentID
}
