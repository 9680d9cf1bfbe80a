package server

import (
	"net/http"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/config"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/server/api"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/server/mcp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Use(s.handleAuth)

	apiHandler, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	mcpHandler, err := mcp.New(cfg)

	if err != nil {
		return nil, err
	}

	apiHandler.Attach(r)
	mcpHandler.Attach(r)

	s.handler = otelhttp.NewHandler(r, "http")

	return s, nil
}

func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.Address, s.handler)
}

func (s *Server) handleAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(s.Authorizers) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		for _, p := range s.Authorizers {
			ctx, err := p.Authenticate(r.Context(), r)

			if err != nil {
				continue
			}

			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	})
}
