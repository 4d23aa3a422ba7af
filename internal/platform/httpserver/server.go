package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	gigmarketplace "talentia/contexts/marketplace/gig-marketplace"
	gigerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"
	gighttp "talentia/contexts/marketplace/gig-marketplace/transport/http"
	talentranking "talentia/contexts/marketplace/talent-ranking"
	rankingerrors "talentia/contexts/marketplace/talent-ranking/domain/errors"
	rankinghttp "talentia/contexts/marketplace/talent-ranking/transport/http"
	"talentia/internal/platform/identity"
	"talentia/internal/platform/metrics"
	"talentia/internal/platform/ratelimit"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "talentia/internal/platform/httpserver/docs"
)

// CallerResolver turns an Authorization header into a verified caller.
type CallerResolver interface {
	Resolve(authorization string) (identity.Caller, error)
}

// Options carries the platform collaborators shared by every route.
type Options struct {
	Identity      CallerResolver
	Limiter       ratelimit.Limiter
	Metrics       *metrics.Metrics
	EnableSwagger bool
}

type Server struct {
	mux      *http.ServeMux
	srv      *http.Server
	logger   *slog.Logger
	addr     string
	gigs     gigmarketplace.Module
	talents  talentranking.Module
	identity CallerResolver
	limiter  ratelimit.Limiter
	metrics  *metrics.Metrics
	swagger  bool
}

func New(
	gigs gigmarketplace.Module,
	talents talentranking.Module,
	opts Options,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		gigs:     gigs,
		talents:  talents,
		identity: opts.Identity,
		limiter:  opts.Limiter,
		metrics:  opts.Metrics,
		swagger:  opts.EnableSwagger,
	}
	s.registerRoutes()
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server stopping",
		"event", "http_server_stopping",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	return s.srv.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	if s.swagger {
		s.mux.Handle("/swagger/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}
	s.route("GET /healthz", s.handleHealth)

	s.route("POST /gigs", s.handlePostGig)
	s.route("GET /gigs", s.handleListOpenGigs)
	s.route("GET /gigs/my", s.handleListMyGigs)
	s.route("POST /gigs/{gig_id}/apply", s.handleApply)
	s.route("GET /gigs/{gig_id}/applications", s.handleListApplications)

	s.route("POST /applications/{application_id}/approve", s.handleApprove)
	s.route("GET /applications/{application_id}/conversation", s.handleGetConversation)
	s.route("POST /applications/{application_id}/messages", s.handleSendMessage)
	s.route("POST /applications/{application_id}/contracts", s.handleCreateContract)
	s.route("GET /applications/{application_id}/contract", s.handleGetContract)
	s.route("GET /conversations/me", s.handleListMyConversations)

	s.route("POST /contracts/{contract_id}/release", s.handleReleaseContract)

	s.route("GET /talents", s.handleListTalents)
}

func (s *Server) route(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, s.metrics.Instrument(pattern, handler))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePostGig(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, true)
	if !ok {
		return
	}

	var req gighttp.PostGigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.gigs.Handler.PostGigHandler(r.Context(), caller.UserID, caller.Role, req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	s.metrics.RecordLedgerEvent("gig_posted")
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListOpenGigs(w http.ResponseWriter, r *http.Request) {
	resp, err := s.gigs.Handler.ListOpenGigsHandler(r.Context())
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMyGigs(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, false)
	if !ok {
		return
	}
	resp, err := s.gigs.Handler.ListMyGigsHandler(r.Context(), caller.UserID, caller.Role)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, true)
	if !ok {
		return
	}

	var req gighttp.ApplyRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	resp, err := s.gigs.Handler.ApplyHandler(r.Context(), caller.UserID, caller.Role, r.PathValue("gig_id"), req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	s.metrics.RecordLedgerEvent("application_created")
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, false)
	if !ok {
		return
	}
	resp, err := s.gigs.Handler.ListApplicationsHandler(r.Context(), caller.UserID, caller.Role, r.PathValue("gig_id"))
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, true)
	if !ok {
		return
	}
	resp, err := s.gigs.Handler.ApproveApplicationHandler(r.Context(), caller.UserID, caller.Role, r.PathValue("application_id"))
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	s.metrics.RecordLedgerEvent("application_approved")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, false)
	if !ok {
		return
	}
	resp, err := s.gigs.Handler.GetConversationHandler(r.Context(), caller.UserID, caller.Role, r.PathValue("application_id"))
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, true)
	if !ok {
		return
	}

	var req gighttp.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.gigs.Handler.SendMessageHandler(r.Context(), caller.UserID, caller.Role, r.PathValue("application_id"), req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	s.metrics.RecordLedgerEvent("message_sent")
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListMyConversations(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, false)
	if !ok {
		return
	}
	resp, err := s.gigs.Handler.ListMyConversationsHandler(r.Context(), caller.UserID, caller.Role)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateContract(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, true)
	if !ok {
		return
	}

	var req gighttp.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.gigs.Handler.CreateContractHandler(r.Context(), caller.UserID, caller.Role, r.PathValue("application_id"), req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	if resp.Created {
		s.metrics.RecordLedgerEvent("contract_created")
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetContract(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, false)
	if !ok {
		return
	}
	resp, err := s.gigs.Handler.GetContractHandler(r.Context(), caller.UserID, caller.Role, r.PathValue("application_id"))
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReleaseContract(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r, true)
	if !ok {
		return
	}

	var req gighttp.ReleaseContractRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	resp, err := s.gigs.Handler.ReleaseContractHandler(r.Context(), caller.UserID, caller.Role, r.PathValue("contract_id"), req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	if !resp.Replayed {
		s.metrics.RecordLedgerEvent("contract_released")
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTalents(w http.ResponseWriter, r *http.Request) {
	var req rankinghttp.ListTalentsRequest
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil || limit < 1 {
			writeRankingError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer between 1 and 100")
			return
		}
		req.Limit = limit
	}

	resp, err := s.talents.Handler.ListTalentsHandler(r.Context(), req)
	if err != nil {
		writeRankingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// requireCaller resolves the bearer identity. Mutating routes are also
// charged against the caller's rate-limit bucket.
func (s *Server) requireCaller(w http.ResponseWriter, r *http.Request, mutating bool) (identity.Caller, bool) {
	if s.identity == nil {
		writeMarketplaceError(w, http.StatusUnauthorized, "unauthorized", "authentication is not configured")
		return identity.Caller{}, false
	}
	caller, err := s.identity.Resolve(r.Header.Get("Authorization"))
	if err != nil {
		code := "invalid_token"
		if errors.Is(err, identity.ErrMissingCredential) {
			code = "missing_token"
		}
		writeMarketplaceError(w, http.StatusUnauthorized, code, "a valid bearer token is required")
		return identity.Caller{}, false
	}

	if mutating && s.limiter != nil && !s.limiter.Allow(r.Context(), caller.UserID) {
		s.logger.Warn("rate limit exceeded",
			"event", "http_rate_limited",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"user_id", caller.UserID,
			"path", r.URL.Path,
			"method", r.Method,
		)
		s.metrics.RecordRateLimited(r.Pattern)
		writeMarketplaceError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
		return identity.Caller{}, false
	}
	return caller, true
}

// decodeOptionalJSON accepts an empty body as the zero request.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeMarketplaceDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gigerrors.ErrForbidden):
		writeMarketplaceError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, gigerrors.ErrGigNotFound):
		writeMarketplaceError(w, http.StatusNotFound, "gig_not_found", err.Error())
	case errors.Is(err, gigerrors.ErrApplicationNotFound):
		writeMarketplaceError(w, http.StatusNotFound, "application_not_found", err.Error())
	case errors.Is(err, gigerrors.ErrConversationNotFound):
		writeMarketplaceError(w, http.StatusNotFound, "conversation_not_found", err.Error())
	case errors.Is(err, gigerrors.ErrContractNotFound):
		writeMarketplaceError(w, http.StatusNotFound, "contract_not_found", err.Error())
	case errors.Is(err, gigerrors.ErrDuplicateApplication):
		writeMarketplaceError(w, http.StatusConflict, "already_applied", err.Error())
	case errors.Is(err, gigerrors.ErrInvalidBudgetRange):
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_budget_range", err.Error())
	case errors.Is(err, gigerrors.ErrInvalidAmount):
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, gigerrors.ErrInvalidRating):
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_rating", err.Error())
	case errors.Is(err, gigerrors.ErrEmptyMessage):
		writeMarketplaceError(w, http.StatusBadRequest, "empty_message", err.Error())
	case errors.Is(err, gigerrors.ErrInvalidRequest):
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeMarketplaceError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRankingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rankingerrors.ErrInvalidLimit):
		writeRankingError(w, http.StatusBadRequest, "invalid_limit", err.Error())
	default:
		writeRankingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeMarketplaceError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, gighttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeRankingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rankinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
