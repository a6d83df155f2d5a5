package http

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"expense-tracko-api/internal/config"
	"expense-tracko-api/internal/ledger"
	"expense-tracko-api/internal/logger"
	"expense-tracko-api/internal/models"
)

// Store is the persistence surface the handlers need. *storage.Repository
// implements it; tests substitute an in-memory fake.
type Store interface {
	ledger.Store

	ExpensesFiltered(ctx context.Context, userID uint, f ledger.ExpenseFilter, loc *time.Location) ([]models.Expense, error)
	ExpenseByID(ctx context.Context, userID, id uint) (*models.Expense, error)
	CreateIncome(ctx context.Context, income *models.Income) error
	SaveIncome(ctx context.Context, income *models.Income) error
	SaveExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, userID, id uint) error

	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uint) (*models.User, error)

	CreateSession(ctx context.Context, session *models.Session) error
	SessionByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error

	CreateVisit(ctx context.Context, visit *models.Visit) error
	CountUsers(ctx context.Context) (int64, error)
	CountVisits(ctx context.Context) (int64, error)
	CountExpenses(ctx context.Context) (int64, error)
}

// InsightClient is the AI surface: monthly summaries for the dashboard and
// grounded replies for the chat endpoint.
type InsightClient interface {
	ledger.InsightGenerator
	ChatReply(ctx context.Context, message string, profile ledger.FinanceProfile) (string, error)
}

type Server struct {
	cfg        *config.Config
	store      Store
	aggregator *ledger.Aggregator
	guard      *ledger.Guard
	ai         InsightClient
	schemas    *schemas
	loc        *time.Location
}

// NewServer wires the gin engine with all routes and middleware.
func NewServer(cfg *config.Config, store Store, aiClient InsightClient) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(logging())

	loc, err := time.LoadLocation(cfg.TZDefault)
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800)
	}

	s := &Server{
		cfg:        cfg,
		store:      store,
		aggregator: ledger.NewAggregator(store, aiClient),
		guard:      ledger.NewGuard(store),
		ai:         aiClient,
		schemas:    loadSchemas(),
		loc:        loc,
	}

	r.Use(s.visitLogger())

	r.GET("/", func(c *gin.Context) { c.String(200, "Smart Personal Expenses Tracker API") })
	r.GET("/api", func(c *gin.Context) { c.JSON(200, gin.H{"message": "Backend connected"}) })
	r.GET("/stats", s.getStats)

	r.POST("/auth/register", s.register)
	r.POST("/auth/login", s.login)

	authed := r.Group("/")
	authed.Use(s.requireSession())
	{
		authed.POST("/auth/logout", s.logout)
		authed.GET("/dashboard", s.showDashboard)
		authed.POST("/aichat", s.aiChat)

		authed.GET("/expense", s.listExpenses)
		authed.POST("/expense/add", s.addExpense)
		authed.GET("/expense/:id", s.getExpense)
		authed.PUT("/expense/:id", s.updateExpense)
		authed.DELETE("/expense/:id", s.deleteExpense)

		authed.GET("/income", s.listIncome)
		authed.POST("/income/add", s.addIncome)
		authed.GET("/income/:id", s.getIncome)
		authed.PUT("/income/:id", s.updateIncome)
		authed.DELETE("/income/:id", s.deleteIncome)
	}

	return r
}

// writeLedgerError maps the ledger error taxonomy onto HTTP statuses.
func writeLedgerError(c *gin.Context, err error) {
	var (
		validation   *ledger.ValidationError
		notFound     *ledger.NotFoundError
		insufficient *ledger.InsufficientBalanceError
		conflict     *ledger.ConflictError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(422, gin.H{"success": false, "message": validation.Error()})
	case errors.As(err, &notFound):
		c.JSON(404, gin.H{"success": false, "message": notFound.Error()})
	case errors.As(err, &insufficient):
		c.JSON(400, gin.H{"success": false, "message": insufficient.Error()})
	case errors.As(err, &conflict):
		c.JSON(409, gin.H{"success": false, "message": conflict.Error()})
	default:
		logger.Get().Error("request failed", zap.Error(err))
		c.JSON(500, gin.H{"success": false, "message": "Something went wrong"})
	}
}
