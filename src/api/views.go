package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"portfolio-server/src/api/handlers"
	"portfolio-server/src/config"
	"portfolio-server/src/database"
	"portfolio-server/src/utils"
	redis_utils "portfolio-server/src/utils/redis"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Logger  *logrus.Logger
	Port    string
}

func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	var sessions *redis_utils.SessionStore
	if cfg.Databases.Redis.Enabled {
		sessions, err = redis_utils.NewSessionStore(cfg)
		if err != nil {
			return nil, err
		}
	}

	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handlers.NewHandler(db, cfg, sessions),
		Logger:  utils.NewLogger(cfg.Service.LogLevel),
		Port:    cfg.Service.Port,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// withLogger attaches the application logger to every request context.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(utils.WithLogger(r.Context(), s.Logger)))
	})
}

// rejectRevoked blocks tokens that were revoked by logout. Runs after the
// jwtauth verifier so the token in context is already signature-checked.
func (s *Server) rejectRevoked(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Handler.Sessions != nil {
			token, _, err := jwtauth.FromContext(r.Context())
			if err == nil && token != nil && token.JwtID() != "" {
				revoked, err := s.Handler.Sessions.IsRevoked(r.Context(), token.JwtID())
				if err != nil {
					s.Logger.WithError(err).Error("revocation check failed")
				} else if revoked {
					http.Error(w, `{"success":false,"message":"Token has been revoked"}`, http.StatusUnauthorized)
					return
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) InitRoutes() {
	s.Router.Use(s.withLogger)
	s.Router.Use(cors.AllowAll().Handler)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", s.Handler.Signup)
		r.Post("/login", s.Handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(s.Handler.TokenAuth))
			r.Use(jwtauth.Authenticator)
			r.Use(s.rejectRevoked)
			r.Get("/me", s.Handler.Me)
			r.Post("/refresh", s.Handler.RefreshToken)
			r.Post("/logout", s.Handler.Logout)
			r.Get("/verify", s.Handler.VerifyToken)
		})
	})

	s.Router.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(s.Handler.TokenAuth))
		r.Use(jwtauth.Authenticator)
		r.Use(s.rejectRevoked)

		r.Route("/api/investments", func(r chi.Router) {
			r.Get("/", s.Handler.ListInvestments)
			r.Post("/", s.Handler.CreateInvestment)
			r.Get("/{id}", s.Handler.GetInvestment)
			r.Put("/{id}", s.Handler.UpdateInvestment)
			r.Delete("/{id}", s.Handler.DeleteInvestment)
		})

		r.Route("/api/transactions", func(r chi.Router) {
			r.Get("/", s.Handler.ListTransactions)
			r.Post("/", s.Handler.CreateTransaction)
			r.Get("/investment/{investmentId}", s.Handler.ListInvestmentTransactions)
			r.Put("/{id}", s.Handler.UpdateTransaction)
			r.Delete("/{id}", s.Handler.DeleteTransaction)
		})

		r.Route("/api/portfolio", func(r chi.Router) {
			r.Get("/", s.Handler.GetPortfolio)
			r.Get("/overview", s.Handler.GetOverview)
			r.Get("/allocation", s.Handler.GetAllocation)
			r.Get("/performance", s.Handler.GetPerformance)
		})
	})
}

func NewHTTPServer(server *Server) *http.Server {
	return &http.Server{
		Addr:         ":" + server.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
