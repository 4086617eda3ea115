package handlers

import (
	"net/http"

	"portfolio-server/src/utils"
)

func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	portfolio, err := h.Controller.GetPortfolio(r.Context(), userID, parseListOptions(r))
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, portfolio, http.StatusOK)
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	overview, err := h.Controller.GetOverview(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, overview, http.StatusOK)
}

func (h *Handler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	allocation, err := h.Controller.GetAllocation(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, allocation, http.StatusOK)
}

func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	period, err := utils.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		h.HandleErrors(w, r, utils.BadRequest(err.Error()))
		return
	}

	performance, err := h.Controller.GetPerformance(r.Context(), userID, period)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, performance, http.StatusOK)
}
