package poolservice

import (
	"log/slog"

	httpadapter "chorepool/contexts/household-coordination/pool-service/adapters/http"
	"chorepool/contexts/household-coordination/pool-service/adapters/memory"
	"chorepool/contexts/household-coordination/pool-service/application"
	"chorepool/contexts/household-coordination/pool-service/ports"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.PoolRepository
	Codes      ports.InviteCodeGenerator
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Codes:  deps.Codes,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Codes:      store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
