package talentranking

import (
	"log/slog"

	httpadapter "talentia/contexts/marketplace/talent-ranking/adapters/http"
	"talentia/contexts/marketplace/talent-ranking/adapters/memory"
	"talentia/contexts/marketplace/talent-ranking/application/queries"
	"talentia/contexts/marketplace/talent-ranking/ports"
)

// Module is the talent-ranking composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Source ports.TalentSource
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			ListTalents: queries.ListTalentsUseCase{
				Source: deps.Source,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Source: store,
		Logger: logger,
	})
	module.Store = store
	return module
}
