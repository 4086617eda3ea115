package controllers

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-server/src/models"
	"portfolio-server/src/repositories"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestController(t *testing.T) *Controller {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Investment{}, &models.Transaction{}))

	controller := NewController(db)
	controller.now = func() time.Time { return testNow }
	return controller
}

func signupUser(t *testing.T, c *Controller, username string) *models.User {
	t.Helper()
	user, err := c.Signup(context.Background(), &schemas.SignupRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "s3cret!pass",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return user
}

func createHolding(t *testing.T, c *Controller, userID uint, symbol string, quantity, purchasePrice, currentPrice float64) *models.Investment {
	t.Helper()
	purchaseDate := schemas.Date{Time: testNow.AddDate(0, -6, 0)}
	investment, err := c.CreateInvestment(context.Background(), userID, &schemas.CreateInvestmentRequest{
		Symbol:         symbol,
		Name:           symbol + " Holding",
		Quantity:       quantity,
		PurchasePrice:  purchasePrice,
		CurrentPrice:   &currentPrice,
		InvestmentType: string(models.InvestmentTypeStocks),
		PurchaseDate:   &purchaseDate,
	})
	require.NoError(t, err)
	return investment
}

func TestSignup(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()

	t.Run("registers and hashes the credential", func(t *testing.T) {
		user := signupUser(t, controller, "alice")

		assert.NotZero(t, user.ID)
		assert.NotEqual(t, "s3cret!pass", user.PasswordHash)
		assert.True(t, user.CheckPassword("s3cret!pass"))
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		_, err := controller.Signup(ctx, &schemas.SignupRequest{
			Username:  "alice2",
			Email:     "alice@example.com",
			Password:  "s3cret!pass",
			FirstName: "A",
			LastName:  "B",
		})

		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 409, httpErr.Code)
		assert.Equal(t, "Email already registered", httpErr.Message)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		_, err := controller.Signup(ctx, &schemas.SignupRequest{
			Username:  "alice",
			Email:     "other@example.com",
			Password:  "s3cret!pass",
			FirstName: "A",
			LastName:  "B",
		})

		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 409, httpErr.Code)
		assert.Equal(t, "Username already taken", httpErr.Message)
	})

	t.Run("collects every field failure", func(t *testing.T) {
		_, err := controller.Signup(ctx, &schemas.SignupRequest{
			Username: "ab",
			Email:    "not-an-email",
			Password: "short",
		})

		var validation *utils.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Len(t, validation.Fields, 5)
	})
}

func TestAuthenticate(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	signupUser(t, controller, "bob")

	t.Run("valid credentials", func(t *testing.T) {
		user, err := controller.Authenticate(ctx, "bob@example.com", "s3cret!pass")
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
	})

	t.Run("wrong password and unknown email fail the same way", func(t *testing.T) {
		for _, creds := range [][2]string{
			{"bob@example.com", "wrong"},
			{"nobody@example.com", "s3cret!pass"},
		} {
			_, err := controller.Authenticate(ctx, creds[0], creds[1])
			var httpErr *utils.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, 401, httpErr.Code)
			assert.Equal(t, "Invalid credentials", httpErr.Message)
		}
	})
}

func TestCreateInvestment(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	user := signupUser(t, controller, "carol")

	t.Run("uppercases the symbol and values the position", func(t *testing.T) {
		purchaseDate := schemas.Date{Time: testNow.AddDate(0, -1, 0)}
		currentPrice := 160.0
		investment, err := controller.CreateInvestment(ctx, user.ID, &schemas.CreateInvestmentRequest{
			Symbol:         " aapl ",
			Name:           "Apple Inc.",
			Quantity:       10,
			PurchasePrice:  150.00,
			CurrentPrice:   &currentPrice,
			InvestmentType: "stocks",
			PurchaseDate:   &purchaseDate,
		})
		require.NoError(t, err)

		assert.Equal(t, "AAPL", investment.Symbol)
		assert.Equal(t, 1600.00, investment.CurrentValue)
	})

	t.Run("valuation defaults to the cost basis", func(t *testing.T) {
		purchaseDate := schemas.Date{Time: testNow.AddDate(0, -1, 0)}
		investment, err := controller.CreateInvestment(ctx, user.ID, &schemas.CreateInvestmentRequest{
			Symbol:         "BND",
			Name:           "Bond Fund",
			Quantity:       20,
			PurchasePrice:  50.00,
			InvestmentType: "bonds",
			PurchaseDate:   &purchaseDate,
		})
		require.NoError(t, err)
		assert.Equal(t, 1000.00, investment.CurrentValue)
	})

	t.Run("duplicate symbol per user is rejected", func(t *testing.T) {
		purchaseDate := schemas.Date{Time: testNow}
		_, err := controller.CreateInvestment(ctx, user.ID, &schemas.CreateInvestmentRequest{
			Symbol:         "aapl",
			Name:           "Apple again",
			Quantity:       1,
			PurchasePrice:  1.00,
			InvestmentType: "stocks",
			PurchaseDate:   &purchaseDate,
		})

		var duplicateErr *utils.DuplicateSymbolError
		require.ErrorAs(t, err, &duplicateErr)
		assert.Equal(t, "AAPL", duplicateErr.Symbol)
	})

	t.Run("another user may hold the same symbol", func(t *testing.T) {
		other := signupUser(t, controller, "carol2")
		createHolding(t, controller, other.ID, "AAPL", 5, 100.00, 100.00)
	})

	t.Run("quantity is stored at six decimal places", func(t *testing.T) {
		purchaseDate := schemas.Date{Time: testNow}
		investment, err := controller.CreateInvestment(ctx, user.ID, &schemas.CreateInvestmentRequest{
			Symbol:         "VXUS",
			Name:           "International Fund",
			Quantity:       1.2345678,
			PurchasePrice:  10.00,
			InvestmentType: "etf",
			PurchaseDate:   &purchaseDate,
		})
		require.NoError(t, err)

		assert.Equal(t, 1.234568, investment.Quantity)
		assert.InDelta(t, 12.34568, investment.CurrentValue, 1e-9)
	})

	t.Run("invalid payload reports every field", func(t *testing.T) {
		_, err := controller.CreateInvestment(ctx, user.ID, &schemas.CreateInvestmentRequest{
			Symbol:         "WAYTOOLONGSYM",
			Quantity:       -1,
			PurchasePrice:  0,
			InvestmentType: "real_estate",
		})

		var validation *utils.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Len(t, validation.Fields, 6)
	})
}

func TestInvestmentOwnership(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	owner := signupUser(t, controller, "dave")
	stranger := signupUser(t, controller, "eve")
	investment := createHolding(t, controller, owner.ID, "AAPL", 10, 150.00, 150.00)

	var notFound *utils.NotFoundError

	_, err := controller.GetInvestment(ctx, stranger.ID, investment.ID)
	require.ErrorAs(t, err, &notFound)

	_, err = controller.DeleteInvestment(ctx, stranger.ID, investment.ID)
	require.ErrorAs(t, err, &notFound)

	_, err = controller.GetInvestment(ctx, owner.ID, investment.ID)
	require.NoError(t, err)
}

func TestUpdateInvestment(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	user := signupUser(t, controller, "frank")

	t.Run("quantity change reprices at the effective per-unit price", func(t *testing.T) {
		investment := createHolding(t, controller, user.ID, "AAPL", 10, 150.00, 160.00)

		quantity := 20.0
		updated, err := controller.UpdateInvestment(ctx, user.ID, investment.ID, &schemas.UpdateInvestmentRequest{
			Quantity: &quantity,
		})
		require.NoError(t, err)

		assert.Equal(t, 20.0, updated.Quantity)
		assert.Equal(t, 3200.00, updated.CurrentValue)
	})

	t.Run("current price change revalues the position", func(t *testing.T) {
		investment := createHolding(t, controller, user.ID, "MSFT", 10, 300.00, 300.00)

		price := 350.0
		updated, err := controller.UpdateInvestment(ctx, user.ID, investment.ID, &schemas.UpdateInvestmentRequest{
			CurrentPrice: &price,
		})
		require.NoError(t, err)
		assert.Equal(t, 3500.00, updated.CurrentValue)
	})

	t.Run("name-only update leaves the valuation alone", func(t *testing.T) {
		investment := createHolding(t, controller, user.ID, "BND", 20, 50.00, 45.00)

		name := "Renamed Fund"
		updated, err := controller.UpdateInvestment(ctx, user.ID, investment.ID, &schemas.UpdateInvestmentRequest{
			Name: &name,
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Fund", updated.Name)
		assert.Equal(t, 900.00, updated.CurrentValue)
	})
}

func TestAppendTransaction(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	user := signupUser(t, controller, "grace")

	t.Run("buy then sell walks the position forward", func(t *testing.T) {
		investment := createHolding(t, controller, user.ID, "AAPL", 20, 150.00, 160.00)
		assert.Equal(t, 3200.00, investment.CurrentValue)

		_, updated, err := controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
			InvestmentID: investment.ID,
			Type:         "buy",
			Amount:       10,
			Price:        280.00,
		})
		require.NoError(t, err)
		assert.Equal(t, 30.0, updated.Quantity)
		assert.Equal(t, 8400.00, updated.CurrentValue)

		_, updated, err = controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
			InvestmentID: investment.ID,
			Type:         "sell",
			Amount:       5,
			Price:        320.00,
		})
		require.NoError(t, err)
		assert.Equal(t, 25.0, updated.Quantity)
		assert.Equal(t, 8000.00, updated.CurrentValue)

		stored, err := controller.GetInvestment(ctx, user.ID, investment.ID)
		require.NoError(t, err)
		assert.Equal(t, 25.0, stored.Quantity)
		assert.Equal(t, 8000.00, stored.CurrentValue)
	})

	t.Run("oversell is rejected before anything is written", func(t *testing.T) {
		investment := createHolding(t, controller, user.ID, "MSFT", 30, 200.00, 200.00)

		_, _, err := controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
			InvestmentID: investment.ID,
			Type:         "sell",
			Amount:       31,
			Price:        210.00,
		})

		var insufficientErr *utils.InsufficientQuantityError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 31.0, insufficientErr.Requested)
		assert.Equal(t, 30.0, insufficientErr.Available)

		stored, err := controller.GetInvestment(ctx, user.ID, investment.ID)
		require.NoError(t, err)
		assert.Equal(t, 30.0, stored.Quantity)
		assert.Equal(t, 6000.00, stored.CurrentValue)

		history, err := controller.ListInvestmentTransactions(ctx, user.ID, investment.ID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("amounts are stored at six decimal places", func(t *testing.T) {
		investment := createHolding(t, controller, user.ID, "GOOG", 10, 100.00, 100.00)

		transaction, updated, err := controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
			InvestmentID: investment.ID,
			Type:         "buy",
			Amount:       0.1234567,
			Price:        100.00,
		})
		require.NoError(t, err)
		assert.Equal(t, 0.123457, transaction.Amount)
		assert.InDelta(t, 10.123457, updated.Quantity, 1e-9)
	})

	t.Run("missing date defaults to now", func(t *testing.T) {
		investment := createHolding(t, controller, user.ID, "BND", 10, 50.00, 50.00)

		transaction, _, err := controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
			InvestmentID: investment.ID,
			Type:         "buy",
			Amount:       2,
			Price:        55.00,
		})
		require.NoError(t, err)
		assert.True(t, transaction.Date.Equal(testNow))
	})

	t.Run("another user's holding is invisible", func(t *testing.T) {
		stranger := signupUser(t, controller, "heidi")
		investment := createHolding(t, controller, user.ID, "VTI", 5, 100.00, 100.00)

		_, _, err := controller.AppendTransaction(ctx, stranger.ID, &schemas.CreateTransactionRequest{
			InvestmentID: investment.ID,
			Type:         "buy",
			Amount:       1,
			Price:        100.00,
		})

		var notFound *utils.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestUpdateTransaction(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	user := signupUser(t, controller, "ivan")
	investment := createHolding(t, controller, user.ID, "AAPL", 20, 150.00, 150.00)

	transaction, _, err := controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
		InvestmentID: investment.ID,
		Type:         "buy",
		Amount:       10,
		Price:        280.00,
	})
	require.NoError(t, err)

	t.Run("amended amount rebuilds the position from history", func(t *testing.T) {
		amount := 4.0
		updated, err := controller.UpdateTransaction(ctx, user.ID, transaction.ID, &schemas.UpdateTransactionRequest{
			Amount: &amount,
		})
		require.NoError(t, err)
		assert.Equal(t, 4.0, updated.Amount)

		stored, err := controller.GetInvestment(ctx, user.ID, investment.ID)
		require.NoError(t, err)
		assert.Equal(t, 24.0, stored.Quantity)
		assert.Equal(t, 24.0*280.00, stored.CurrentValue)
	})

	t.Run("invalid amendment leaves everything alone", func(t *testing.T) {
		amount := -2.0
		_, err := controller.UpdateTransaction(ctx, user.ID, transaction.ID, &schemas.UpdateTransactionRequest{
			Amount: &amount,
		})

		var validation *utils.ValidationError
		require.ErrorAs(t, err, &validation)

		stored, err := controller.GetInvestment(ctx, user.ID, investment.ID)
		require.NoError(t, err)
		assert.Equal(t, 24.0, stored.Quantity)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		amount := 1.0
		_, err := controller.UpdateTransaction(ctx, user.ID, 9999, &schemas.UpdateTransactionRequest{
			Amount: &amount,
		})

		var notFound *utils.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestDeleteTransaction(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	user := signupUser(t, controller, "judy")
	investment := createHolding(t, controller, user.ID, "AAPL", 20, 150.00, 150.00)

	first, _, err := controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
		InvestmentID: investment.ID,
		Type:         "buy",
		Amount:       10,
		Price:        280.00,
	})
	require.NoError(t, err)

	_, _, err = controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
		InvestmentID: investment.ID,
		Type:         "sell",
		Amount:       5,
		Price:        320.00,
	})
	require.NoError(t, err)

	require.NoError(t, controller.DeleteTransaction(ctx, user.ID, first.ID))

	// Only the sell survives, so the replay is 0 - 5 at 320. The short
	// position is persisted as-is; nothing in the storage layer blocks it.
	stored, err := controller.GetInvestment(ctx, user.ID, investment.ID)
	require.NoError(t, err)
	assert.Equal(t, -5.0, stored.Quantity)
	assert.Equal(t, -1600.00, stored.CurrentValue)

	var row models.Investment
	require.NoError(t, controller.DB.First(&row, investment.ID).Error)
	assert.Equal(t, -5.0, row.Quantity)
	assert.Equal(t, -1600.00, row.CurrentValue)

	history, err := controller.ListInvestmentTransactions(ctx, user.ID, investment.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	err = controller.DeleteTransaction(ctx, user.ID, first.ID)
	var notFound *utils.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteInvestmentCascades(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	user := signupUser(t, controller, "kim")
	investment := createHolding(t, controller, user.ID, "AAPL", 20, 150.00, 150.00)

	_, _, err := controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
		InvestmentID: investment.ID,
		Type:         "buy",
		Amount:       5,
		Price:        160.00,
	})
	require.NoError(t, err)

	_, err = controller.DeleteInvestment(ctx, user.ID, investment.ID)
	require.NoError(t, err)

	var notFound *utils.NotFoundError
	_, err = controller.GetInvestment(ctx, user.ID, investment.ID)
	require.ErrorAs(t, err, &notFound)

	var count int64
	require.NoError(t, controller.DB.Model(&models.Transaction{}).
		Where("investment_id = ?", investment.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListTransactions(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	user := signupUser(t, controller, "liam")
	apple := createHolding(t, controller, user.ID, "AAPL", 100, 150.00, 150.00)
	bonds := createHolding(t, controller, user.ID, "BND", 100, 50.00, 50.00)

	dates := []time.Time{
		testNow.AddDate(0, 0, -10),
		testNow.AddDate(0, 0, -5),
		testNow.AddDate(0, 0, -1),
	}
	for i, investment := range []*models.Investment{apple, bonds, apple} {
		date := schemas.Date{Time: dates[i]}
		transactionType := "buy"
		if i == 2 {
			transactionType = "sell"
		}
		_, _, err := controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
			InvestmentID: investment.ID,
			Type:         transactionType,
			Amount:       1,
			Price:        100.00,
			Date:         &date,
		})
		require.NoError(t, err)
	}

	t.Run("newest first by default", func(t *testing.T) {
		transactions, totalCount, err := controller.ListTransactions(ctx, user.ID, repositories.TransactionFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), totalCount)
		require.Len(t, transactions, 3)
		assert.True(t, transactions[0].Date.After(transactions[1].Date))
		assert.True(t, transactions[1].Date.After(transactions[2].Date))
	})

	t.Run("filter by type", func(t *testing.T) {
		transactions, totalCount, err := controller.ListTransactions(ctx, user.ID, repositories.TransactionFilter{
			Type: "sell",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), totalCount)
		require.Len(t, transactions, 1)
		assert.Equal(t, models.TransactionTypeSell, transactions[0].Type)
	})

	t.Run("filter by investment", func(t *testing.T) {
		transactions, totalCount, err := controller.ListTransactions(ctx, user.ID, repositories.TransactionFilter{
			InvestmentID: apple.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), totalCount)
		assert.Len(t, transactions, 2)
	})

	t.Run("filter by date window", func(t *testing.T) {
		start := testNow.AddDate(0, 0, -6)
		end := testNow.AddDate(0, 0, -2)
		transactions, totalCount, err := controller.ListTransactions(ctx, user.ID, repositories.TransactionFilter{
			StartDate: &start,
			EndDate:   &end,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), totalCount)
		require.Len(t, transactions, 1)
		assert.Equal(t, bonds.ID, transactions[0].InvestmentID)
	})

	t.Run("pagination caps the page but not the count", func(t *testing.T) {
		limit := 2
		transactions, totalCount, err := controller.ListTransactions(ctx, user.ID, repositories.TransactionFilter{
			ListOptions: repositories.ListOptions{Limit: &limit},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), totalCount)
		assert.Len(t, transactions, 2)
	})
}

func TestGetPortfolio(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	user := signupUser(t, controller, "mona")
	createHolding(t, controller, user.ID, "AAPL", 10, 150.00, 180.00)
	createHolding(t, controller, user.ID, "BND", 20, 50.00, 45.00)

	t.Run("summary totals the holdings", func(t *testing.T) {
		portfolio, err := controller.GetPortfolio(ctx, user.ID, repositories.ListOptions{})
		require.NoError(t, err)

		assert.Len(t, portfolio.Investments, 2)
		assert.Equal(t, 2500.00, portfolio.Summary.TotalInvested)
		assert.Equal(t, 2700.00, portfolio.Summary.TotalCurrentValue)
		assert.Equal(t, 200.00, portfolio.Summary.TotalProfitLoss)
		assert.Equal(t, int64(2), portfolio.Pagination.TotalCount)
		assert.False(t, portfolio.Pagination.HasMore)
	})

	t.Run("paged listing keeps the full summary", func(t *testing.T) {
		limit := 1
		portfolio, err := controller.GetPortfolio(ctx, user.ID, repositories.ListOptions{Limit: &limit})
		require.NoError(t, err)

		assert.Len(t, portfolio.Investments, 1)
		assert.Equal(t, int64(2), portfolio.Pagination.TotalCount)
		assert.True(t, portfolio.Pagination.HasMore)
	})
}

func TestGetAllocationAndPerformance(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()
	user := signupUser(t, controller, "nina")

	purchaseDate := schemas.Date{Time: testNow.AddDate(0, -6, 0)}
	_, err := controller.CreateInvestment(ctx, user.ID, &schemas.CreateInvestmentRequest{
		Symbol:         "BTC",
		Name:           "Bitcoin",
		Quantity:       0.05,
		PurchasePrice:  40000.00,
		InvestmentType: "crypto",
		PurchaseDate:   &purchaseDate,
	})
	require.NoError(t, err)
	apple := createHolding(t, controller, user.ID, "AAPL", 10, 150.00, 200.00)

	fees := 2.50
	recent := schemas.Date{Time: testNow.AddDate(0, 0, -2)}
	old := schemas.Date{Time: testNow.AddDate(0, -4, 0)}
	for _, date := range []*schemas.Date{&recent, &old} {
		_, _, err := controller.AppendTransaction(ctx, user.ID, &schemas.CreateTransactionRequest{
			InvestmentID: apple.ID,
			Type:         "buy",
			Amount:       1,
			Price:        200.00,
			Fees:         &fees,
			Date:         date,
		})
		require.NoError(t, err)
	}

	t.Run("allocation groups by asset class", func(t *testing.T) {
		allocation, err := controller.GetAllocation(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, allocation, 2)
		assert.Equal(t, "stocks", allocation[0].Type)
		assert.Equal(t, "crypto", allocation[1].Type)
	})

	t.Run("performance window filters transactions", func(t *testing.T) {
		performance, err := controller.GetPerformance(ctx, user.ID, utils.PeriodMonth)
		require.NoError(t, err)

		assert.Equal(t, "1M", performance.Period)
		assert.Equal(t, 1, performance.PortfolioMetrics.TransactionCount)
		assert.Equal(t, 2.50, performance.PortfolioMetrics.TotalFees)

		allTime, err := controller.GetPerformance(ctx, user.ID, utils.PeriodAll)
		require.NoError(t, err)
		assert.Equal(t, 2, allTime.PortfolioMetrics.TransactionCount)
		assert.Equal(t, 5.00, allTime.PortfolioMetrics.TotalFees)
	})
}
