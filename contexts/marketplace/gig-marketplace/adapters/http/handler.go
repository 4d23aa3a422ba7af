package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	application "talentia/contexts/marketplace/gig-marketplace/application"
	"talentia/contexts/marketplace/gig-marketplace/application/commands"
	"talentia/contexts/marketplace/gig-marketplace/application/queries"
	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	"talentia/contexts/marketplace/gig-marketplace/domain/services"
	httptransport "talentia/contexts/marketplace/gig-marketplace/transport/http"
)

const moduleName = "marketplace/gig-marketplace"

// Handler maps HTTP DTOs to gig-marketplace commands and queries. Callers
// arrive already verified by the identity gate as (user id, role).
type Handler struct {
	PostGig             commands.PostGigUseCase
	ApplyToGig          commands.ApplyToGigUseCase
	ApproveApplication  commands.ApproveApplicationUseCase
	CreateContract      commands.CreateContractUseCase
	ReleaseContract     commands.ReleaseContractUseCase
	SendMessage         commands.SendMessageUseCase
	ListOpenGigs        queries.ListOpenGigsUseCase
	ListMyGigs          queries.ListMyGigsUseCase
	ListApplications    queries.ListApplicationsUseCase
	GetConversation     queries.GetConversationUseCase
	ListMyConversations queries.ListMyConversationsUseCase
	GetContract         queries.GetContractUseCase
	Currency            string
	Logger              *slog.Logger
}

// PostGigHandler godoc
// @Summary Post a gig
// @Description Creates an OPEN gig owned by the calling company.
// @Tags gig-marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.PostGigRequest true "Gig"
// @Success 201 {object} httptransport.GigDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /gigs [post]
func (h Handler) PostGigHandler(
	ctx context.Context,
	userID string,
	role string,
	req httptransport.PostGigRequest,
) (httptransport.GigDTO, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("http post gig received",
		"event", "gig_http_post_received",
		"module", moduleName,
		"layer", "transport",
		"user_id", userID,
	)

	result, err := h.PostGig.Execute(ctx, commands.PostGigCommand{
		Caller: newCaller(userID, role),
		Draft: entities.GigDraft{
			Title:       req.Title,
			Description: req.Description,
			Role:        req.Role,
			BudgetMin:   req.BudgetMin,
			BudgetMax:   req.BudgetMax,
			Location:    req.Location,
			Type:        entities.GigType(strings.ToUpper(strings.TrimSpace(req.Type))),
			Category:    req.Category,
			Deadline:    req.Deadline,
		},
	})
	if err != nil {
		logger.Error("http post gig failed",
			"event", "gig_http_post_failed",
			"module", moduleName,
			"layer", "transport",
			"user_id", userID,
			"error", err.Error(),
		)
		return httptransport.GigDTO{}, err
	}
	return h.mapListing(result.Listing), nil
}

// ListOpenGigsHandler godoc
// @Summary List open gigs
// @Description Returns OPEN gigs newest first with company name and applicant count.
// @Tags gig-marketplace
// @Produce json
// @Success 200 {object} httptransport.ListGigsResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /gigs [get]
func (h Handler) ListOpenGigsHandler(ctx context.Context) (httptransport.ListGigsResponse, error) {
	result, err := h.ListOpenGigs.Execute(ctx)
	if err != nil {
		return httptransport.ListGigsResponse{}, err
	}
	return httptransport.ListGigsResponse{Items: h.mapListings(result.Items)}, nil
}

// ListMyGigsHandler godoc
// @Summary List own gigs
// @Description Returns every gig of the calling company, newest first.
// @Tags gig-marketplace
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ListGigsResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /gigs/my [get]
func (h Handler) ListMyGigsHandler(ctx context.Context, userID string, role string) (httptransport.ListGigsResponse, error) {
	result, err := h.ListMyGigs.Execute(ctx, queries.ListMyGigsQuery{Caller: newCaller(userID, role)})
	if err != nil {
		return httptransport.ListGigsResponse{}, err
	}
	return httptransport.ListGigsResponse{Items: h.mapListings(result.Items)}, nil
}

// ApplyHandler godoc
// @Summary Apply to a gig
// @Description Creates an APPLIED application for the calling student.
// @Tags gig-marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gig_id path string true "Gig id"
// @Param request body httptransport.ApplyRequest false "Proposal"
// @Success 201 {object} httptransport.ApplicationDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /gigs/{gig_id}/apply [post]
func (h Handler) ApplyHandler(
	ctx context.Context,
	userID string,
	role string,
	gigID string,
	req httptransport.ApplyRequest,
) (httptransport.ApplicationDTO, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("http apply received",
		"event", "gig_http_apply_received",
		"module", moduleName,
		"layer", "transport",
		"user_id", userID,
		"gig_id", gigID,
	)

	result, err := h.ApplyToGig.Execute(ctx, commands.ApplyToGigCommand{
		Caller:   newCaller(userID, role),
		GigID:    gigID,
		Proposal: req.Proposal,
	})
	if err != nil {
		logger.Error("http apply failed",
			"event", "gig_http_apply_failed",
			"module", moduleName,
			"layer", "transport",
			"user_id", userID,
			"gig_id", gigID,
			"error", err.Error(),
		)
		return httptransport.ApplicationDTO{}, err
	}
	return mapApplication(result.Application), nil
}

// ListApplicationsHandler godoc
// @Summary List gig applications
// @Description Returns applications of one gig newest first. Owner or super-admin only.
// @Tags gig-marketplace
// @Produce json
// @Security BearerAuth
// @Param gig_id path string true "Gig id"
// @Success 200 {object} httptransport.ListApplicationsResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /gigs/{gig_id}/applications [get]
func (h Handler) ListApplicationsHandler(
	ctx context.Context,
	userID string,
	role string,
	gigID string,
) (httptransport.ListApplicationsResponse, error) {
	result, err := h.ListApplications.Execute(ctx, queries.ListApplicationsQuery{
		Caller: newCaller(userID, role),
		GigID:  gigID,
	})
	if err != nil {
		return httptransport.ListApplicationsResponse{}, err
	}
	items := make([]httptransport.ApplicationDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, mapApplication(item))
	}
	return httptransport.ListApplicationsResponse{Items: items}, nil
}

// ApproveApplicationHandler godoc
// @Summary Approve an application
// @Description Approves the application and opens its conversation. Repeated calls return the same conversation.
// @Tags gig-marketplace
// @Produce json
// @Security BearerAuth
// @Param application_id path string true "Application id"
// @Success 200 {object} httptransport.ConversationDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /applications/{application_id}/approve [post]
func (h Handler) ApproveApplicationHandler(
	ctx context.Context,
	userID string,
	role string,
	applicationID string,
) (httptransport.ConversationDTO, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("http approve received",
		"event", "gig_http_approve_received",
		"module", moduleName,
		"layer", "transport",
		"user_id", userID,
		"application_id", applicationID,
	)

	result, err := h.ApproveApplication.Execute(ctx, commands.ApproveApplicationCommand{
		Caller:        newCaller(userID, role),
		ApplicationID: applicationID,
	})
	if err != nil {
		logger.Error("http approve failed",
			"event", "gig_http_approve_failed",
			"module", moduleName,
			"layer", "transport",
			"user_id", userID,
			"application_id", applicationID,
			"error", err.Error(),
		)
		return httptransport.ConversationDTO{}, err
	}
	return mapConversation(result.Conversation), nil
}

// GetConversationHandler godoc
// @Summary Get an application conversation
// @Description Returns the conversation with messages in chronological order.
// @Tags gig-marketplace
// @Produce json
// @Security BearerAuth
// @Param application_id path string true "Application id"
// @Success 200 {object} httptransport.ConversationDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /applications/{application_id}/conversation [get]
func (h Handler) GetConversationHandler(
	ctx context.Context,
	userID string,
	role string,
	applicationID string,
) (httptransport.ConversationDTO, error) {
	result, err := h.GetConversation.Execute(ctx, queries.GetConversationQuery{
		Caller:        newCaller(userID, role),
		ApplicationID: applicationID,
	})
	if err != nil {
		return httptransport.ConversationDTO{}, err
	}
	return mapConversation(result.Conversation), nil
}

// SendMessageHandler godoc
// @Summary Send a message
// @Description Appends a message to the application conversation.
// @Tags gig-marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application_id path string true "Application id"
// @Param request body httptransport.SendMessageRequest true "Message"
// @Success 201 {object} httptransport.MessageDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /applications/{application_id}/messages [post]
func (h Handler) SendMessageHandler(
	ctx context.Context,
	userID string,
	role string,
	applicationID string,
	req httptransport.SendMessageRequest,
) (httptransport.MessageDTO, error) {
	result, err := h.SendMessage.Execute(ctx, commands.SendMessageCommand{
		Caller:        newCaller(userID, role),
		ApplicationID: applicationID,
		Content:       req.Content,
	})
	if err != nil {
		application.ResolveLogger(h.Logger).Warn("http send message failed",
			"event", "gig_http_send_message_failed",
			"module", moduleName,
			"layer", "transport",
			"user_id", userID,
			"application_id", applicationID,
			"error", err.Error(),
		)
		return httptransport.MessageDTO{}, err
	}
	return mapMessage(result.Message), nil
}

// ListMyConversationsHandler godoc
// @Summary List own conversations
// @Description Returns conversations where the caller is the company or the student, newest first.
// @Tags gig-marketplace
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ListConversationsResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /conversations/me [get]
func (h Handler) ListMyConversationsHandler(
	ctx context.Context,
	userID string,
	role string,
) (httptransport.ListConversationsResponse, error) {
	result, err := h.ListMyConversations.Execute(ctx, queries.ListMyConversationsQuery{
		Caller: newCaller(userID, role),
	})
	if err != nil {
		return httptransport.ListConversationsResponse{}, err
	}
	items := make([]httptransport.ConversationDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, mapConversation(item))
	}
	return httptransport.ListConversationsResponse{Items: items}, nil
}

// CreateContractHandler godoc
// @Summary Create a contract
// @Description Creates the contract and HELD payment for an application. An existing contract is returned unchanged.
// @Tags gig-marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application_id path string true "Application id"
// @Param request body httptransport.CreateContractRequest true "Agreed amount"
// @Success 200 {object} httptransport.CreateContractResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /applications/{application_id}/contracts [post]
func (h Handler) CreateContractHandler(
	ctx context.Context,
	userID string,
	role string,
	applicationID string,
	req httptransport.CreateContractRequest,
) (httptransport.CreateContractResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("http create contract received",
		"event", "gig_http_create_contract_received",
		"module", moduleName,
		"layer", "transport",
		"user_id", userID,
		"application_id", applicationID,
		"agreed_amount", req.AgreedAmount.String(),
	)

	result, err := h.CreateContract.Execute(ctx, commands.CreateContractCommand{
		Caller:        newCaller(userID, role),
		ApplicationID: applicationID,
		AgreedAmount:  req.AgreedAmount,
	})
	if err != nil {
		logger.Error("http create contract failed",
			"event", "gig_http_create_contract_failed",
			"module", moduleName,
			"layer", "transport",
			"user_id", userID,
			"application_id", applicationID,
			"error", err.Error(),
		)
		return httptransport.CreateContractResponse{}, err
	}
	return httptransport.CreateContractResponse{
		Contract: h.mapContract(result.Contract),
		Created:  result.Created,
	}, nil
}

// GetContractHandler godoc
// @Summary Get an application contract
// @Description Returns the contract of an application, or null when none exists yet.
// @Tags gig-marketplace
// @Produce json
// @Security BearerAuth
// @Param application_id path string true "Application id"
// @Success 200 {object} httptransport.GetContractResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /applications/{application_id}/contract [get]
func (h Handler) GetContractHandler(
	ctx context.Context,
	userID string,
	role string,
	applicationID string,
) (httptransport.GetContractResponse, error) {
	result, err := h.GetContract.Execute(ctx, queries.GetContractQuery{
		Caller:        newCaller(userID, role),
		ApplicationID: applicationID,
	})
	if err != nil {
		return httptransport.GetContractResponse{}, err
	}
	if result.Contract == nil {
		return httptransport.GetContractResponse{}, nil
	}
	contract := h.mapContract(*result.Contract)
	return httptransport.GetContractResponse{Contract: &contract}, nil
}

// ReleaseContractHandler godoc
// @Summary Release escrow
// @Description Pays out the held payment, completes the contract, fills the gig and stores the optional rating.
// @Tags gig-marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contract_id path string true "Contract id"
// @Param request body httptransport.ReleaseContractRequest false "Optional rating"
// @Success 200 {object} httptransport.ReleaseContractResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /contracts/{contract_id}/release [post]
func (h Handler) ReleaseContractHandler(
	ctx context.Context,
	userID string,
	role string,
	contractID string,
	req httptransport.ReleaseContractRequest,
) (httptransport.ReleaseContractResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("http release received",
		"event", "gig_http_release_received",
		"module", moduleName,
		"layer", "transport",
		"user_id", userID,
		"contract_id", contractID,
	)

	result, err := h.ReleaseContract.Execute(ctx, commands.ReleaseContractCommand{
		Caller:     newCaller(userID, role),
		ContractID: contractID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		logger.Error("http release failed",
			"event", "gig_http_release_failed",
			"module", moduleName,
			"layer", "transport",
			"user_id", userID,
			"contract_id", contractID,
			"error", err.Error(),
		)
		return httptransport.ReleaseContractResponse{}, err
	}

	resp := httptransport.ReleaseContractResponse{
		Contract: h.mapContract(result.Contract),
		Replayed: result.Replayed,
	}
	if result.Payout != nil {
		resp.Payout = &httptransport.PayoutDTO{
			PayoutID:    result.Payout.PayoutID,
			RecipientID: result.Payout.RecipientID,
			Amount:      result.Payout.Amount,
			Status:      string(result.Payout.Status),
			CreatedAt:   result.Payout.CreatedAt,
		}
	}
	return resp, nil
}

func newCaller(userID string, role string) entities.Caller {
	return entities.Caller{
		UserID: strings.TrimSpace(userID),
		Role:   entities.Role(strings.ToUpper(strings.TrimSpace(role))),
	}
}

func (h Handler) currency() string {
	if strings.TrimSpace(h.Currency) == "" {
		return services.DefaultCurrency
	}
	return strings.TrimSpace(h.Currency)
}

func (h Handler) mapListings(items []entities.GigListing) []httptransport.GigDTO {
	out := make([]httptransport.GigDTO, 0, len(items))
	for _, item := range items {
		out = append(out, h.mapListing(item))
	}
	return out
}

func (h Handler) mapListing(item entities.GigListing) httptransport.GigDTO {
	dto := httptransport.GigDTO{
		GigID:       item.Gig.GigID,
		CompanyID:   item.Gig.CompanyID,
		Company:     item.CompanyName,
		Title:       item.Gig.Title,
		Description: item.Gig.Description,
		Role:        item.Gig.Role,
		BudgetMin:   item.Gig.BudgetMin,
		BudgetMax:   item.Gig.BudgetMax,
		Currency:    h.currency(),
		Location:    item.Gig.Location,
		Type:        string(item.Gig.Type),
		Category:    item.Gig.Category,
		Deadline:    item.Gig.Deadline,
		Status:      string(item.Gig.Status),
		Applicants:  item.Applicants,
		Posted:      item.Gig.CreatedAt,
	}
	if label, ok := services.BudgetLabel(h.currency(), item.Gig.BudgetMin, item.Gig.BudgetMax); ok {
		dto.Budget = &label
	}
	return dto
}

func mapApplication(item entities.ApplicationView) httptransport.ApplicationDTO {
	return httptransport.ApplicationDTO{
		ApplicationID: item.Application.ApplicationID,
		GigID:         item.Application.GigID,
		StudentID:     item.Application.StudentID,
		StudentName:   item.StudentName,
		Proposal:      item.Application.Proposal,
		Status:        string(item.Application.Status),
		AppliedAt:     item.Application.AppliedAt,
		ApprovedAt:    item.Application.ApprovedAt,
	}
}

func mapConversation(item entities.Conversation) httptransport.ConversationDTO {
	messages := make([]httptransport.MessageDTO, 0, len(item.Messages))
	for _, message := range item.Messages {
		messages = append(messages, mapMessage(message))
	}
	return httptransport.ConversationDTO{
		ConversationID: item.ConversationID,
		GigID:          item.GigID,
		ApplicationID:  item.ApplicationID,
		CompanyID:      item.CompanyID,
		StudentID:      item.StudentID,
		CreatedAt:      item.CreatedAt,
		Messages:       messages,
	}
}

func mapMessage(item entities.Message) httptransport.MessageDTO {
	return httptransport.MessageDTO{
		MessageID:      item.MessageID,
		ConversationID: item.ConversationID,
		SenderID:       item.SenderID,
		Content:        item.Content,
		CreatedAt:      item.CreatedAt,
	}
}

func (h Handler) mapContract(item entities.ContractView) httptransport.ContractDTO {
	dto := httptransport.ContractDTO{
		ContractID:    item.Contract.ContractID,
		GigID:         item.Contract.GigID,
		ApplicationID: item.Contract.ApplicationID,
		AgreedAmount:  item.Contract.AgreedAmount,
		Currency:      h.currency(),
		Status:        string(item.Contract.Status),
		CreatedAt:     item.Contract.CreatedAt,
		CompletedAt:   item.Contract.CompletedAt,
	}
	if item.Payment != nil {
		dto.PaymentStatus = string(item.Payment.Status)
	}
	return dto
}
