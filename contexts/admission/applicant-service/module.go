package applicantservice

import (
	"log/slog"

	httpadapter "meridian/contexts/admission/applicant-service/adapters/http"
	"meridian/contexts/admission/applicant-service/adapters/memory"
	"meridian/contexts/admission/applicant-service/application/commands"
	"meridian/contexts/admission/applicant-service/application/queries"
	"meridian/contexts/admission/applicant-service/domain/entities"
	"meridian/contexts/admission/applicant-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository      ports.Repository
	Storage         ports.ObjectStorage
	Clock           ports.Clock
	IDGen           ports.IDGenerator
	ReviewBatchSize int
	Logger          *slog.Logger
}

func NewModule(deps Dependencies) Module {
	saveApplicant := commands.SaveApplicantUseCase{
		Repository: deps.Repository,
		Storage:    deps.Storage,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	withdrawApplicant := commands.WithdrawApplicantUseCase{
		Repository: deps.Repository,
		Storage:    deps.Storage,
		Logger:     deps.Logger,
	}
	checkinApplicant := commands.CheckinApplicantUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	assignment := queries.AssignmentUseCase{
		Repository: deps.Repository,
		BatchSize:  deps.ReviewBatchSize,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			SaveApplicant:     saveApplicant,
			WithdrawApplicant: withdrawApplicant,
			CheckinApplicant:  checkinApplicant,
			Assignment:        assignment,
			Queries:           queryUseCase,
			Logger:            deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against in-process adapters, used for
// local boot without postgres and by the httpserver tests.
func NewInMemoryModule(
	seed []entities.Applicant,
	reviews memory.ReviewLookup,
	reviewBatchSize int,
	logger *slog.Logger,
) (Module, *memory.ObjectStore) {
	store := memory.NewStore(seed, reviews)
	blobs := memory.NewObjectStore()
	module := NewModule(Dependencies{
		Repository:      store,
		Storage:         blobs,
		Clock:           store,
		IDGen:           store,
		ReviewBatchSize: reviewBatchSize,
		Logger:          logger,
	})
	module.Store = store
	return module, blobs
}
