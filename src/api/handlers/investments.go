package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

func investmentID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, utils.BadRequest("Invalid investment ID")
	}
	return uint(id), nil
}

func (h *Handler) ListInvestments(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	investments, err := h.Controller.ListInvestments(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, investments, http.StatusOK)
}

func (h *Handler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	id, err := investmentID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	investment, err := h.Controller.GetInvestment(r.Context(), userID, id)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, investment, http.StatusOK)
}

func (h *Handler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	var req schemas.CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body"))
		return
	}

	investment, err := h.Controller.CreateInvestment(r.Context(), userID, &req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	response := h.investmentResponse(investment)
	h.respond(w, r, &schemas.CreateInvestmentResponse{
		Success:    true,
		Message:    "Investment created successfully",
		Investment: &response,
	}, http.StatusCreated)
}

func (h *Handler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	id, err := investmentID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	var req schemas.UpdateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body"))
		return
	}

	investment, err := h.Controller.UpdateInvestment(r.Context(), userID, id, &req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	response := h.investmentResponse(investment)
	h.respond(w, r, &schemas.CreateInvestmentResponse{
		Success:    true,
		Message:    "Investment updated successfully",
		Investment: &response,
	}, http.StatusOK)
}

func (h *Handler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	id, err := investmentID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	investment, err := h.Controller.DeleteInvestment(r.Context(), userID, id)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, &schemas.DeleteInvestmentResponse{
		Success: true,
		Message: "Investment deleted successfully",
		DeletedInvestment: &schemas.InvestmentRef{
			ID:     investment.ID,
			Name:   investment.Name,
			Symbol: investment.Symbol,
			Type:   string(investment.Type),
		},
	}, http.StatusOK)
}
