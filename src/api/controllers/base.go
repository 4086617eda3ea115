package controllers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"portfolio-server/src/models"
	"portfolio-server/src/repositories"
	"portfolio-server/src/schemas"
	"portfolio-server/src/services"
	"portfolio-server/src/utils"
)

type IController interface {
	Signup(ctx context.Context, req *schemas.SignupRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)

	CreateInvestment(ctx context.Context, userID uint, req *schemas.CreateInvestmentRequest) (*models.Investment, error)
	GetInvestment(ctx context.Context, userID, id uint) (*models.Investment, error)
	ListInvestments(ctx context.Context, userID uint) ([]models.Investment, error)
	UpdateInvestment(ctx context.Context, userID, id uint, req *schemas.UpdateInvestmentRequest) (*models.Investment, error)
	DeleteInvestment(ctx context.Context, userID, id uint) (*models.Investment, error)

	AppendTransaction(ctx context.Context, userID uint, req *schemas.CreateTransactionRequest) (*models.Transaction, *models.Investment, error)
	ListTransactions(ctx context.Context, userID uint, filter repositories.TransactionFilter) ([]models.Transaction, int64, error)
	ListInvestmentTransactions(ctx context.Context, userID, investmentID uint) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id uint, req *schemas.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id uint) error

	GetPortfolio(ctx context.Context, userID uint, opts repositories.ListOptions) (*schemas.PortfolioResponse, error)
	GetOverview(ctx context.Context, userID uint) (*schemas.PortfolioOverview, error)
	GetAllocation(ctx context.Context, userID uint) ([]schemas.AllocationGroup, error)
	GetPerformance(ctx context.Context, userID uint, period utils.Period) (*schemas.PerformanceResponse, error)
}

// Controller holds the business logic behind every API endpoint. Writes that
// touch both the transaction log and a holding run inside one database
// transaction so a failed append leaves neither mutated.
type Controller struct {
	DB           *gorm.DB
	Users        repositories.UserRepository
	Investments  repositories.InvestmentRepository
	Transactions repositories.TransactionRepository
	Ledger       *services.LedgerService
	Portfolio    *services.PortfolioService

	// now is swappable for deterministic period cutoffs in tests.
	now func() time.Time
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{
		DB:           db,
		Users:        repositories.NewUserRepository(db),
		Investments:  repositories.NewInvestmentRepository(db),
		Transactions: repositories.NewTransactionRepository(db),
		Ledger:       services.NewLedgerService(),
		Portfolio:    services.NewPortfolioService(),
		now:          time.Now,
	}
}
