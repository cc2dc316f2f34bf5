package reviewservice

import (
	"log/slog"

	httpadapter "meridian/contexts/admission/review-service/adapters/http"
	"meridian/contexts/admission/review-service/adapters/memory"
	"meridian/contexts/admission/review-service/application/commands"
	"meridian/contexts/admission/review-service/application/queries"
	"meridian/contexts/admission/review-service/domain/entities"
	"meridian/contexts/admission/review-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	recordReview := commands.RecordReviewUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			RecordReview: recordReview,
			Queries:      queryUseCase,
			Logger:       deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Review, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
