package gigmarketplace

import (
	"log/slog"

	httpadapter "talentia/contexts/marketplace/gig-marketplace/adapters/http"
	"talentia/contexts/marketplace/gig-marketplace/adapters/memory"
	"talentia/contexts/marketplace/gig-marketplace/application/commands"
	"talentia/contexts/marketplace/gig-marketplace/application/queries"
	"talentia/contexts/marketplace/gig-marketplace/ports"
)

// Module is the gig-marketplace composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Gigs          ports.GigRepository
	Applications  ports.ApplicationRepository
	Conversations ports.ConversationRepository
	Contracts     ports.ContractRepository
	Directory     ports.UserDirectory
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Currency      string
	Logger        *slog.Logger
}

// NewModule wires ledger and conversation use-cases behind one handler.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		PostGig: commands.PostGigUseCase{
			Gigs:        deps.Gigs,
			Directory:   deps.Directory,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		ApplyToGig: commands.ApplyToGigUseCase{
			Gigs:         deps.Gigs,
			Applications: deps.Applications,
			Directory:    deps.Directory,
			Clock:        deps.Clock,
			IDGenerator:  deps.IDGenerator,
			Logger:       deps.Logger,
		},
		ApproveApplication: commands.ApproveApplicationUseCase{
			Gigs:         deps.Gigs,
			Applications: deps.Applications,
			Clock:        deps.Clock,
			IDGenerator:  deps.IDGenerator,
			Logger:       deps.Logger,
		},
		CreateContract: commands.CreateContractUseCase{
			Gigs:         deps.Gigs,
			Applications: deps.Applications,
			Contracts:    deps.Contracts,
			Clock:        deps.Clock,
			IDGenerator:  deps.IDGenerator,
			Logger:       deps.Logger,
		},
		ReleaseContract: commands.ReleaseContractUseCase{
			Gigs:         deps.Gigs,
			Applications: deps.Applications,
			Contracts:    deps.Contracts,
			Clock:        deps.Clock,
			IDGenerator:  deps.IDGenerator,
			Logger:       deps.Logger,
		},
		SendMessage: commands.SendMessageUseCase{
			Conversations: deps.Conversations,
			Clock:         deps.Clock,
			IDGenerator:   deps.IDGenerator,
			Logger:        deps.Logger,
		},
		ListOpenGigs: queries.ListOpenGigsUseCase{
			Gigs:      deps.Gigs,
			Directory: deps.Directory,
			Logger:    deps.Logger,
		},
		ListMyGigs: queries.ListMyGigsUseCase{
			Gigs:      deps.Gigs,
			Directory: deps.Directory,
			Logger:    deps.Logger,
		},
		ListApplications: queries.ListApplicationsUseCase{
			Gigs:         deps.Gigs,
			Applications: deps.Applications,
			Directory:    deps.Directory,
			Logger:       deps.Logger,
		},
		GetConversation: queries.GetConversationUseCase{
			Conversations: deps.Conversations,
			Logger:        deps.Logger,
		},
		ListMyConversations: queries.ListMyConversationsUseCase{
			Conversations: deps.Conversations,
			Logger:        deps.Logger,
		},
		GetContract: queries.GetContractUseCase{
			Gigs:         deps.Gigs,
			Applications: deps.Applications,
			Contracts:    deps.Contracts,
			Logger:       deps.Logger,
		},
		Currency: deps.Currency,
		Logger:   deps.Logger,
	}

	return Module{
		Handler: handler,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(seed memory.Seed, logger *slog.Logger) Module {
	store := memory.NewStore(seed, logger)
	module := NewModule(Dependencies{
		Gigs:          store,
		Applications:  store,
		Conversations: store,
		Contracts:     store,
		Directory:     store,
		Clock:         store,
		IDGenerator:   store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
