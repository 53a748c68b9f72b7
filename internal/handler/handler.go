package handler

import (
	"errors"
	"log/slog"

	"finboard/internal/controller"
	"finboard/internal/repo"
	"finboard/pkg/types/pubsub"

	"github.com/gin-gonic/gin"
)

var (
	ErrNilEngine     = errors.New("engine is required")
	ErrNilRepository = errors.New("repository is required")
)

type Handler struct {
	engine     *gin.Engine
	repository *repo.Repository
	logger     *slog.Logger
	feed       controller.NewsFeeder
	txEvents   pubsub.Publisher
}

func (h *Handler) IsValid() error {
	if h.engine == nil {
		return ErrNilEngine
	}
	if h.repository == nil {
		return ErrNilRepository
	}
	return nil
}

type Option func(*Handler)

func WithEngine(engine *gin.Engine) Option {
	return func(h *Handler) {
		h.engine = engine
	}
}

func WithRepository(repository *repo.Repository) Option {
	return func(h *Handler) {
		h.repository = repository
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

func WithNewsFeeder(f controller.NewsFeeder) Option {
	return func(h *Handler) {
		h.feed = f
	}
}

func WithTransactionPublisher(p pubsub.Publisher) Option {
	return func(h *Handler) {
		h.txEvents = p
	}
}

func New(opts ...Option) (*Handler, error) {
	h := &Handler{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if err := h.IsValid(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) Setup() error {
	ctrl, err := controller.New(
		controller.WithRepository(h.repository),
		controller.WithLogger(h.logger),
		controller.WithNewsFeeder(h.feed),
		controller.WithTransactionPublisher(h.txEvents),
	)
	if err != nil {
		return err
	}

	api := h.engine.Group("/api")
	api.Use(controller.RequestID())
	api.Use(controller.CallerIdentity())
	api.Use(controller.RequestLogger(h.logger))

	api.GET("/health", ctrl.Health)

	budget := api.Group("/budget")
	budget.GET("", ctrl.GetBudget)
	budget.PUT("", ctrl.UpdateBudget)

	api.GET("/dashboard", ctrl.Dashboard)

	investments := api.Group("/investments")
	investments.GET("", ctrl.GetInvestments)
	investments.POST("", ctrl.CreateInvestment)

	goals := api.Group("/goals")
	goals.GET("", ctrl.GetGoals)
	goals.POST("", ctrl.CreateGoal)
	goals.PUT("/:id/progress", ctrl.UpdateGoalProgress)
	goals.DELETE("/:id", ctrl.DeleteGoal)

	api.GET("/tax", ctrl.GetTaxes)

	transactions := api.Group("/transactions")
	transactions.GET("", ctrl.ListTransactions)
	transactions.POST("", ctrl.CreateTransaction)
	transactions.PUT("/:id", ctrl.UpdateTransaction)
	transactions.DELETE("/:id", ctrl.DeleteTransaction)

	api.GET("/news", ctrl.GetNews)

	api.GET("/categories", ctrl.ListCategories)

	return nil
}
