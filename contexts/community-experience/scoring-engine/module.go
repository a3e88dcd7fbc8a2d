package scoringengine

import (
	"log/slog"
	"time"

	httpadapter "chorepool/contexts/community-experience/scoring-engine/adapters/http"
	"chorepool/contexts/community-experience/scoring-engine/adapters/memory"
	"chorepool/contexts/community-experience/scoring-engine/application"
	"chorepool/contexts/community-experience/scoring-engine/ports"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository     ports.StatsRepository
	Cache          ports.LeaderboardCache
	Clock          ports.Clock
	LeaderboardTTL time.Duration
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:           deps.Repository,
		Cache:          deps.Cache,
		Clock:          deps.Clock,
		LeaderboardTTL: deps.LeaderboardTTL,
		Logger:         deps.Logger,
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
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
