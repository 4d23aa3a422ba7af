package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"
	"talentia/contexts/marketplace/gig-marketplace/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	constraintApplicationPair = "gig_applications_gig_student_key"
	constraintPayoutContract  = "payouts_contract_key"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateGig(ctx context.Context, gig entities.Gig) error {
	row := gigModelFromEntity(gig)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func (r *Repository) GetGig(ctx context.Context, gigID string) (entities.Gig, error) {
	var row gigModel
	err := r.db.WithContext(ctx).
		Where("gig_id = ?", gigID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Gig{}, domainerrors.ErrGigNotFound
		}
		return entities.Gig{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListGigs(ctx context.Context, filter ports.GigFilter) ([]entities.Gig, error) {
	tx := r.db.WithContext(ctx).Model(&gigModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.CompanyID != "" {
		tx = tx.Where("company_id = ?", filter.CompanyID)
	}

	var rows []gigModel
	if err := tx.Order("created_at DESC").Order("gig_id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Gig, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CountApplicationsByGig(ctx context.Context, gigIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(gigIDs))
	if len(gigIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		GigID string `gorm:"column:gig_id"`
		Total int    `gorm:"column:total"`
	}
	if err := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Select("gig_id, COUNT(*) AS total").
		Where("gig_id IN ?", gigIDs).
		Group("gig_id").
		Scan(&rows).
		Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.GigID] = row.Total
	}
	return counts, nil
}

func (r *Repository) CreateApplication(ctx context.Context, item entities.GigApplication) error {
	row := applicationModelFromEntity(item)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		switch {
		case isUniqueViolation(err) && constraintName(err) == constraintApplicationPair:
			return domainerrors.ErrDuplicateApplication
		case isUniqueViolation(err):
			return domainerrors.ErrRepositoryInvariantBroke
		case isForeignKeyViolation(err):
			return domainerrors.ErrGigNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) GetApplication(ctx context.Context, applicationID string) (entities.GigApplication, error) {
	var row applicationModel
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.GigApplication{}, domainerrors.ErrApplicationNotFound
		}
		return entities.GigApplication{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListApplicationsByGig(ctx context.Context, gigID string) ([]entities.GigApplication, error) {
	var rows []applicationModel
	if err := r.db.WithContext(ctx).
		Where("gig_id = ?", gigID).
		Order("applied_at DESC").
		Order("application_id DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.GigApplication, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// ApproveApplication advances the application and upserts its conversation
// in one transaction. conversations.application_id is unique, so a concurrent
// approval loses the insert and both callers read back the same row.
func (r *Repository) ApproveApplication(
	ctx context.Context,
	applicationID string,
	approvedAt time.Time,
	candidate entities.Conversation,
) (entities.Conversation, error) {
	var conversation entities.Conversation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&applicationModel{}).
			Where("application_id = ? AND status <> ?", applicationID, string(entities.ApplicationStatusApproved)).
			Updates(map[string]any{
				"status":      string(entities.ApplicationStatusApproved),
				"approved_at": approvedAt.UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&applicationModel{}).
				Where("application_id = ?", applicationID).
				Count(&count).
				Error; err != nil {
				return err
			}
			if count == 0 {
				return domainerrors.ErrApplicationNotFound
			}
		}

		row := conversationModelFromEntity(candidate)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "application_id"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return err
		}

		loaded, err := loadConversationByApplication(tx, applicationID)
		if err != nil {
			return err
		}
		conversation = loaded
		return nil
	})
	if err != nil {
		return entities.Conversation{}, err
	}
	return conversation, nil
}

func (r *Repository) GetConversationByApplication(ctx context.Context, applicationID string) (entities.Conversation, error) {
	return loadConversationByApplication(r.db.WithContext(ctx), applicationID)
}

func (r *Repository) ListConversationsByParticipant(ctx context.Context, userID string) ([]entities.Conversation, error) {
	db := r.db.WithContext(ctx)

	var rows []conversationModel
	if err := db.
		Where("company_id = ? OR student_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []entities.Conversation{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ConversationID)
	}
	var messageRows []messageModel
	if err := db.
		Where("conversation_id IN ?", ids).
		Order("created_at ASC").
		Order("message_id ASC").
		Find(&messageRows).
		Error; err != nil {
		return nil, err
	}
	byConversation := make(map[string][]entities.Message, len(rows))
	for _, row := range messageRows {
		byConversation[row.ConversationID] = append(byConversation[row.ConversationID], row.toEntity())
	}

	items := make([]entities.Conversation, 0, len(rows))
	for _, row := range rows {
		item := row.toEntity()
		item.Messages = byConversation[row.ConversationID]
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) AppendMessage(ctx context.Context, message entities.Message) error {
	row := messageModel{
		MessageID:      message.MessageID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domainerrors.ErrConversationNotFound
		}
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

// CreateContractWithPayment inserts the contract with ON CONFLICT DO NOTHING
// on application_id. Only the winning insert writes the HELD payment.
func (r *Repository) CreateContractWithPayment(
	ctx context.Context,
	contract entities.Contract,
	payment entities.Payment,
) (entities.ContractView, bool, error) {
	var (
		view    entities.ContractView
		created bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contractRow := contractModelFromEntity(contract)
		insert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "application_id"}},
			DoNothing: true,
		}).Create(&contractRow)
		if insert.Error != nil {
			if isForeignKeyViolation(insert.Error) {
				return domainerrors.ErrApplicationNotFound
			}
			return insert.Error
		}

		if insert.RowsAffected > 0 {
			paymentRow := paymentModelFromEntity(payment)
			if err := tx.Create(&paymentRow).Error; err != nil {
				if isUniqueViolation(err) {
					return domainerrors.ErrRepositoryInvariantBroke
				}
				return err
			}
			created = true
		}

		var existing contractModel
		if err := tx.Where("application_id = ?", contract.ApplicationID).First(&existing).Error; err != nil {
			return err
		}
		loaded, err := loadContractView(tx, existing)
		if err != nil {
			return err
		}
		view = loaded
		return nil
	})
	if err != nil {
		return entities.ContractView{}, false, err
	}
	return view, created, nil
}

func (r *Repository) GetContract(ctx context.Context, contractID string) (entities.ContractView, error) {
	db := r.db.WithContext(ctx)
	var row contractModel
	if err := db.Where("contract_id = ?", contractID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ContractView{}, domainerrors.ErrContractNotFound
		}
		return entities.ContractView{}, err
	}
	return loadContractView(db, row)
}

func (r *Repository) GetContractByApplication(ctx context.Context, applicationID string) (entities.ContractView, bool, error) {
	db := r.db.WithContext(ctx)
	var row contractModel
	if err := db.Where("application_id = ?", applicationID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ContractView{}, false, nil
		}
		return entities.ContractView{}, false, err
	}
	view, err := loadContractView(db, row)
	if err != nil {
		return entities.ContractView{}, false, err
	}
	return view, true, nil
}

// ReleaseContract locks the contract row, then marks the payment paid, writes
// the payout, completes the contract, fills the gig and stores the optional
// review. Any failure rolls back every step.
func (r *Repository) ReleaseContract(ctx context.Context, release ports.Release) (ports.ReleaseResult, error) {
	var result ports.ReleaseResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contractRow contractModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("contract_id = ?", release.ContractID).
			First(&contractRow).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrContractNotFound
			}
			return err
		}

		if contractRow.Status == string(entities.ContractStatusCompleted) {
			view, err := loadContractView(tx, contractRow)
			if err != nil {
				return err
			}
			result = ports.ReleaseResult{Contract: view, AlreadyClosed: true}
			var payoutRow payoutModel
			err = tx.Where("contract_id = ?", contractRow.ContractID).First(&payoutRow).Error
			switch {
			case err == nil:
				payout := payoutRow.toEntity()
				result.Payout = &payout
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
			return nil
		}

		releasedAt := release.ReleasedAt.UTC()

		paymentUpdate := tx.Model(&paymentModel{}).
			Where("contract_id = ? AND status <> ?", contractRow.ContractID, string(entities.PaymentStatusPaid)).
			Updates(map[string]any{
				"status":  string(entities.PaymentStatusPaid),
				"paid_at": releasedAt,
			})
		if paymentUpdate.Error != nil {
			return paymentUpdate.Error
		}
		if paymentUpdate.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&paymentModel{}).
				Where("contract_id = ?", contractRow.ContractID).
				Count(&count).
				Error; err != nil {
				return err
			}
			result.PaymentMissing = count == 0
		}

		payoutRow := payoutModel{
			PayoutID:    release.PayoutID,
			ContractID:  contractRow.ContractID,
			RecipientID: release.StudentID,
			Amount:      contractRow.AgreedAmount,
			Status:      string(entities.PayoutStatusPending),
			CreatedAt:   releasedAt,
		}
		if err := tx.Create(&payoutRow).Error; err != nil {
			if isUniqueViolation(err) && constraintName(err) == constraintPayoutContract {
				return domainerrors.ErrRepositoryInvariantBroke
			}
			return err
		}

		if err := tx.Model(&contractModel{}).
			Where("contract_id = ?", contractRow.ContractID).
			Updates(map[string]any{
				"status":       string(entities.ContractStatusCompleted),
				"completed_at": releasedAt,
			}).Error; err != nil {
			return err
		}

		gigUpdate := tx.Model(&gigModel{}).
			Where("gig_id = ? AND status <> ?", release.GigID, string(entities.GigStatusFilled)).
			Update("status", string(entities.GigStatusFilled))
		if gigUpdate.Error != nil {
			return gigUpdate.Error
		}
		if gigUpdate.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&gigModel{}).Where("gig_id = ?", release.GigID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domainerrors.ErrGigNotFound
			}
		}

		if release.Review != nil {
			reviewRow := reviewModelFromEntity(*release.Review)
			if err := tx.Create(&reviewRow).Error; err != nil {
				return err
			}
		}

		var refreshed contractModel
		if err := tx.Where("contract_id = ?", contractRow.ContractID).First(&refreshed).Error; err != nil {
			return err
		}
		view, err := loadContractView(tx, refreshed)
		if err != nil {
			return err
		}
		payout := payoutRow.toEntity()
		result.Contract = view
		result.Payout = &payout
		return nil
	})
	if err != nil {
		return ports.ReleaseResult{}, err
	}
	return result, nil
}

func loadConversationByApplication(db *gorm.DB, applicationID string) (entities.Conversation, error) {
	var row conversationModel
	if err := db.Where("application_id = ?", applicationID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Conversation{}, domainerrors.ErrConversationNotFound
		}
		return entities.Conversation{}, err
	}

	var messageRows []messageModel
	if err := db.
		Where("conversation_id = ?", row.ConversationID).
		Order("created_at ASC").
		Order("message_id ASC").
		Find(&messageRows).
		Error; err != nil {
		return entities.Conversation{}, err
	}

	conversation := row.toEntity()
	conversation.Messages = make([]entities.Message, 0, len(messageRows))
	for _, message := range messageRows {
		conversation.Messages = append(conversation.Messages, message.toEntity())
	}
	return conversation, nil
}

func loadContractView(db *gorm.DB, row contractModel) (entities.ContractView, error) {
	view := entities.ContractView{Contract: row.toEntity()}
	var paymentRow paymentModel
	err := db.Where("contract_id = ?", row.ContractID).First(&paymentRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return view, nil
		}
		return entities.ContractView{}, err
	}
	payment := paymentRow.toEntity()
	view.Payment = &payment
	return view, nil
}

type gigModel struct {
	GigID       string              `gorm:"column:gig_id;primaryKey"`
	CompanyID   string              `gorm:"column:company_id"`
	Title       string              `gorm:"column:title"`
	Description string              `gorm:"column:description"`
	Role        string              `gorm:"column:role"`
	BudgetMin   decimal.NullDecimal `gorm:"column:budget_min"`
	BudgetMax   decimal.NullDecimal `gorm:"column:budget_max"`
	Location    string              `gorm:"column:location"`
	Type        string              `gorm:"column:type"`
	Category    string              `gorm:"column:category"`
	Deadline    *time.Time          `gorm:"column:deadline"`
	Status      string              `gorm:"column:status"`
	CreatedAt   time.Time           `gorm:"column:created_at"`
}

func (gigModel) TableName() string {
	return "gigs"
}

func gigModelFromEntity(gig entities.Gig) gigModel {
	return gigModel{
		GigID:       gig.GigID,
		CompanyID:   gig.CompanyID,
		Title:       gig.Title,
		Description: gig.Description,
		Role:        gig.Role,
		BudgetMin:   nullDecimal(gig.BudgetMin),
		BudgetMax:   nullDecimal(gig.BudgetMax),
		Location:    gig.Location,
		Type:        string(gig.Type),
		Category:    gig.Category,
		Deadline:    gig.Deadline,
		Status:      string(gig.Status),
		CreatedAt:   gig.CreatedAt.UTC(),
	}
}

func (m gigModel) toEntity() entities.Gig {
	var deadline *time.Time
	if m.Deadline != nil {
		value := m.Deadline.UTC()
		deadline = &value
	}
	return entities.Gig{
		GigID:       m.GigID,
		CompanyID:   m.CompanyID,
		Title:       m.Title,
		Description: m.Description,
		Role:        m.Role,
		BudgetMin:   decimalPtr(m.BudgetMin),
		BudgetMax:   decimalPtr(m.BudgetMax),
		Location:    m.Location,
		Type:        entities.GigType(m.Type),
		Category:    m.Category,
		Deadline:    deadline,
		Status:      entities.GigStatus(m.Status),
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

type applicationModel struct {
	ApplicationID string     `gorm:"column:application_id;primaryKey"`
	GigID         string     `gorm:"column:gig_id"`
	StudentID     string     `gorm:"column:student_id"`
	Proposal      string     `gorm:"column:proposal"`
	Status        string     `gorm:"column:status"`
	AppliedAt     time.Time  `gorm:"column:applied_at"`
	ApprovedAt    *time.Time `gorm:"column:approved_at"`
}

func (applicationModel) TableName() string {
	return "gig_applications"
}

func applicationModelFromEntity(item entities.GigApplication) applicationModel {
	return applicationModel{
		ApplicationID: item.ApplicationID,
		GigID:         item.GigID,
		StudentID:     item.StudentID,
		Proposal:      item.Proposal,
		Status:        string(item.Status),
		AppliedAt:     item.AppliedAt.UTC(),
		ApprovedAt:    item.ApprovedAt,
	}
}

func (m applicationModel) toEntity() entities.GigApplication {
	return entities.GigApplication{
		ApplicationID: m.ApplicationID,
		GigID:         m.GigID,
		StudentID:     m.StudentID,
		Proposal:      m.Proposal,
		Status:        entities.ApplicationStatus(m.Status),
		AppliedAt:     m.AppliedAt.UTC(),
		ApprovedAt:    utcPtr(m.ApprovedAt),
	}
}

type conversationModel struct {
	ConversationID string    `gorm:"column:conversation_id;primaryKey"`
	GigID          string    `gorm:"column:gig_id"`
	ApplicationID  string    `gorm:"column:application_id"`
	CompanyID      string    `gorm:"column:company_id"`
	StudentID      string    `gorm:"column:student_id"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (conversationModel) TableName() string {
	return "conversations"
}

func conversationModelFromEntity(item entities.Conversation) conversationModel {
	return conversationModel{
		ConversationID: item.ConversationID,
		GigID:          item.GigID,
		ApplicationID:  item.ApplicationID,
		CompanyID:      item.CompanyID,
		StudentID:      item.StudentID,
		CreatedAt:      item.CreatedAt.UTC(),
	}
}

func (m conversationModel) toEntity() entities.Conversation {
	return entities.Conversation{
		ConversationID: m.ConversationID,
		GigID:          m.GigID,
		ApplicationID:  m.ApplicationID,
		CompanyID:      m.CompanyID,
		StudentID:      m.StudentID,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

type messageModel struct {
	MessageID      string    `gorm:"column:message_id;primaryKey"`
	ConversationID string    `gorm:"column:conversation_id"`
	SenderID       string    `gorm:"column:sender_id"`
	Content        string    `gorm:"column:content"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (messageModel) TableName() string {
	return "messages"
}

func (m messageModel) toEntity() entities.Message {
	return entities.Message{
		MessageID:      m.MessageID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

type contractModel struct {
	ContractID    string          `gorm:"column:contract_id;primaryKey"`
	GigID         string          `gorm:"column:gig_id"`
	ApplicationID string          `gorm:"column:application_id"`
	AgreedAmount  decimal.Decimal `gorm:"column:agreed_amount"`
	Status        string          `gorm:"column:status"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	CompletedAt   *time.Time      `gorm:"column:completed_at"`
}

func (contractModel) TableName() string {
	return "contracts"
}

func contractModelFromEntity(item entities.Contract) contractModel {
	return contractModel{
		ContractID:    item.ContractID,
		GigID:         item.GigID,
		ApplicationID: item.ApplicationID,
		AgreedAmount:  item.AgreedAmount,
		Status:        string(item.Status),
		CreatedAt:     item.CreatedAt.UTC(),
		CompletedAt:   item.CompletedAt,
	}
}

func (m contractModel) toEntity() entities.Contract {
	return entities.Contract{
		ContractID:    m.ContractID,
		GigID:         m.GigID,
		ApplicationID: m.ApplicationID,
		AgreedAmount:  m.AgreedAmount,
		Status:        entities.ContractStatus(m.Status),
		CreatedAt:     m.CreatedAt.UTC(),
		CompletedAt:   utcPtr(m.CompletedAt),
	}
}

type paymentModel struct {
	PaymentID  string          `gorm:"column:payment_id;primaryKey"`
	ContractID string          `gorm:"column:contract_id"`
	Amount     decimal.Decimal `gorm:"column:amount"`
	Status     string          `gorm:"column:status"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	PaidAt     *time.Time      `gorm:"column:paid_at"`
}

func (paymentModel) TableName() string {
	return "payments"
}

func paymentModelFromEntity(item entities.Payment) paymentModel {
	return paymentModel{
		PaymentID:  item.PaymentID,
		ContractID: item.ContractID,
		Amount:     item.Amount,
		Status:     string(item.Status),
		CreatedAt:  item.CreatedAt.UTC(),
		PaidAt:     item.PaidAt,
	}
}

func (m paymentModel) toEntity() entities.Payment {
	return entities.Payment{
		PaymentID:  m.PaymentID,
		ContractID: m.ContractID,
		Amount:     m.Amount,
		Status:     entities.PaymentStatus(m.Status),
		CreatedAt:  m.CreatedAt.UTC(),
		PaidAt:     utcPtr(m.PaidAt),
	}
}

type payoutModel struct {
	PayoutID    string          `gorm:"column:payout_id;primaryKey"`
	ContractID  string          `gorm:"column:contract_id"`
	RecipientID string          `gorm:"column:recipient_id"`
	Amount      decimal.Decimal `gorm:"column:amount"`
	Status      string          `gorm:"column:status"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
}

func (payoutModel) TableName() string {
	return "payouts"
}

func (m payoutModel) toEntity() entities.Payout {
	return entities.Payout{
		PayoutID:    m.PayoutID,
		ContractID:  m.ContractID,
		RecipientID: m.RecipientID,
		Amount:      m.Amount,
		Status:      entities.PayoutStatus(m.Status),
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

type reviewModel struct {
	ReviewID   string    `gorm:"column:review_id;primaryKey"`
	FromUserID string    `gorm:"column:from_user_id"`
	ToUserID   string    `gorm:"column:to_user_id"`
	Rating     float64   `gorm:"column:rating"`
	Comment    string    `gorm:"column:comment"`
	Context    string    `gorm:"column:context"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string {
	return "rating_reviews"
}

func reviewModelFromEntity(item entities.RatingReview) reviewModel {
	return reviewModel{
		ReviewID:   item.ReviewID,
		FromUserID: item.FromUserID,
		ToUserID:   item.ToUserID,
		Rating:     item.Rating,
		Comment:    item.Comment,
		Context:    item.Context,
		CreatedAt:  item.CreatedAt.UTC(),
	}
}

func nullDecimal(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *value, Valid: true}
}

func decimalPtr(value decimal.NullDecimal) *decimal.Decimal {
	if !value.Valid {
		return nil
	}
	out := value.Decimal
	return &out
}

func utcPtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	out := value.UTC()
	return &out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
