package requestservice

import (
	"log/slog"

	httpadapter "chorepool/contexts/household-coordination/request-service/adapters/http"
	"chorepool/contexts/household-coordination/request-service/adapters/memory"
	"chorepool/contexts/household-coordination/request-service/application"
	"chorepool/contexts/household-coordination/request-service/application/workers"
	"chorepool/contexts/household-coordination/request-service/ports"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Requests      ports.RequestRepository
	Notifications ports.NotificationRepository
	Scoreboard    ports.Scoreboard
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Requests:      deps.Requests,
		Notifications: deps.Notifications,
		Scoreboard:    deps.Scoreboard,
		Clock:         deps.Clock,
		IDGen:         deps.IDGen,
		Logger:        deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against the memory store for local
// runtime and tests. The store also backs the outbox relay.
func NewInMemoryModule(scoreboard ports.Scoreboard, logger *slog.Logger) Module {
	store := memory.NewStore(logger)
	module := NewModule(Dependencies{
		Requests:      store,
		Notifications: store,
		Scoreboard:    scoreboard,
		Clock:         store,
		IDGen:         store,
		Logger:        logger,
	})
	module.Store = store
	return module
}

// NewOutboxRelay builds the worker that drains this module's outbox.
func NewOutboxRelay(outbox ports.OutboxRepository, publisher ports.EventPublisher, clock ports.Clock, logger *slog.Logger) workers.OutboxRelay {
	return workers.OutboxRelay{
		Outbox:    outbox,
		Publisher: publisher,
		Clock:     clock,
		Logger:    logger,
	}
}
