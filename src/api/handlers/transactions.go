package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portfolio-server/src/api/controllers"
	"portfolio-server/src/models"
	"portfolio-server/src/repositories"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

func transactionResponse(transaction *models.Transaction) schemas.TransactionResponse {
	response := schemas.TransactionResponse{
		ID:           transaction.ID,
		InvestmentID: transaction.InvestmentID,
		Type:         string(transaction.Type),
		Amount:       transaction.Amount,
		Price:        transaction.Price,
		TotalValue:   utils.Round2(transaction.TotalValue()),
		Fees:         transaction.Fees,
		NetValue:     utils.Round2(transaction.NetValue()),
		Date:         transaction.Date,
		Notes:        transaction.Notes,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
	if transaction.Investment != nil {
		response.Investment = &schemas.InvestmentRef{
			ID:     transaction.Investment.ID,
			Name:   transaction.Investment.Name,
			Symbol: transaction.Investment.Symbol,
			Type:   string(transaction.Investment.Type),
		}
	}
	return response
}

// parseListOptions reads the shared sortBy/order/limit/offset query params.
func parseListOptions(r *http.Request) repositories.ListOptions {
	opts := repositories.ListOptions{
		SortBy: r.URL.Query().Get("sortBy"),
		Order:  r.URL.Query().Get("order"),
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			opts.Offset = offset
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			opts.Limit = &limit
		}
	}
	return opts
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	filter := repositories.TransactionFilter{ListOptions: parseListOptions(r)}
	if raw := r.URL.Query().Get("type"); raw != "" {
		filter.Type = models.TransactionType(raw)
	}
	if raw := r.URL.Query().Get("investment_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.InvestmentID = uint(id)
		}
	}
	startDate, err := controllers.TransactionDateFilter(r.URL.Query().Get("startDate"))
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	filter.StartDate = startDate
	endDate, err := controllers.TransactionDateFilter(r.URL.Query().Get("endDate"))
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	filter.EndDate = endDate

	transactions, totalCount, err := h.Controller.ListTransactions(r.Context(), userID, filter)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	responses := make([]schemas.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, transactionResponse(&transactions[i]))
	}

	hasMore := false
	if filter.Limit != nil {
		hasMore = int64(filter.Offset+*filter.Limit) < totalCount
	}

	h.respond(w, r, &schemas.ListTransactionsResponse{
		Success:      true,
		Transactions: responses,
		Pagination: schemas.Pagination{
			Offset:     filter.Offset,
			Limit:      filter.Limit,
			TotalCount: totalCount,
			HasMore:    hasMore,
		},
	}, http.StatusOK)
}

func (h *Handler) ListInvestmentTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	raw := chi.URLParam(r, "investmentId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		h.HandleErrors(w, r, utils.BadRequest("Invalid investment ID"))
		return
	}

	transactions, err := h.Controller.ListInvestmentTransactions(r.Context(), userID, uint(id))
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	responses := make([]schemas.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, transactionResponse(&transactions[i]))
	}
	h.respond(w, r, responses, http.StatusOK)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	var req schemas.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body"))
		return
	}

	transaction, investment, err := h.Controller.AppendTransaction(r.Context(), userID, &req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	transaction.Investment = investment
	response := transactionResponse(transaction)
	h.respond(w, r, &schemas.CreateTransactionResponse{
		Success:     true,
		Message:     "Transaction created successfully",
		Transaction: &response,
	}, http.StatusCreated)
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		h.HandleErrors(w, r, utils.BadRequest("Invalid transaction ID"))
		return
	}

	var req schemas.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body"))
		return
	}

	transaction, err := h.Controller.UpdateTransaction(r.Context(), userID, uint(id), &req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	response := transactionResponse(transaction)
	h.respond(w, r, &schemas.CreateTransactionResponse{
		Success:     true,
		Message:     "Transaction updated successfully",
		Transaction: &response,
	}, http.StatusOK)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		h.HandleErrors(w, r, utils.BadRequest("Invalid transaction ID"))
		return
	}

	if err := h.Controller.DeleteTransaction(r.Context(), userID, uint(id)); err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, map[string]interface{}{
		"success": true,
		"message": "Transaction deleted successfully",
	}, http.StatusOK)
}
