package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth"
	"gorm.io/gorm"

	"portfolio-server/src/api/controllers"
	"portfolio-server/src/config"
	"portfolio-server/src/models"
	"portfolio-server/src/schemas"
	"portfolio-server/src/services"
	"portfolio-server/src/utils"
	redis_utils "portfolio-server/src/utils/redis"
)

type Handler struct {
	Controller controllers.IController
	TokenAuth  *jwtauth.JWTAuth
	Sessions   *redis_utils.SessionStore
	ExpiresIn  time.Duration
}

// NewHandler wires the controller and token authority. sessions may be nil
// when Redis is disabled; logout then has no server-side revocation.
func NewHandler(db *gorm.DB, cfg *config.Config, sessions *redis_utils.SessionStore) *Handler {
	return &Handler{
		Controller: controllers.NewController(db),
		TokenAuth:  jwtauth.New("HS256", []byte(cfg.Auth.Secret), nil),
		Sessions:   sessions,
		ExpiresIn:  time.Duration(cfg.Auth.ExpirationHours) * time.Hour,
	}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// errorBody is the common error envelope; extra fields ride along per error kind.
type errorBody map[string]interface{}

// HandleErrors maps the ledger error taxonomy onto HTTP statuses.
func (h *Handler) HandleErrors(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr   *utils.ValidationError
		notFoundErr     *utils.NotFoundError
		duplicateErr    *utils.DuplicateSymbolError
		insufficientErr *utils.InsufficientQuantityError
		invariantErr    *utils.InvariantViolationError
		httpErr         *utils.HTTPError
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		h.respond(w, r, errorBody{"success": false, "message": "Request timed out"}, http.StatusGatewayTimeout)
	case errors.As(err, &validationErr):
		h.respond(w, r, errorBody{
			"success": false,
			"message": "Validation failed",
			"errors":  validationErr.Fields,
		}, http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		h.respond(w, r, errorBody{"success": false, "message": notFoundErr.Error()}, http.StatusNotFound)
	case errors.As(err, &duplicateErr):
		h.respond(w, r, errorBody{"success": false, "message": duplicateErr.Error()}, http.StatusConflict)
	case errors.As(err, &insufficientErr):
		h.respond(w, r, errorBody{
			"success":           false,
			"message":           insufficientErr.Error(),
			"availableQuantity": insufficientErr.Available,
		}, http.StatusBadRequest)
	case errors.As(err, &invariantErr):
		h.respond(w, r, errorBody{"success": false, "message": invariantErr.Error()}, http.StatusBadRequest)
	case errors.As(err, &httpErr):
		h.respond(w, r, errorBody{"success": false, "message": httpErr.Message}, httpErr.Code)
	default:
		utils.LoggerFromContext(r.Context()).WithError(err).Error("unhandled error")
		h.respond(w, r, errorBody{"success": false, "message": "Internal Server Error"}, http.StatusInternalServerError)
	}
}

// portfolioViews renders holdings with derived metrics for responses built
// directly in the handler layer.
var portfolioViews = services.NewPortfolioService()

func (h *Handler) investmentResponse(investment *models.Investment) schemas.InvestmentResponse {
	return portfolioViews.InvestmentResponse(investment)
}

// Healthcheck reports service liveness.
func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
