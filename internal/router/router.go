package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/syrineTissaoui/recalammation/internal/auth"
	"github.com/syrineTissaoui/recalammation/internal/config"
	"github.com/syrineTissaoui/recalammation/internal/handlers"
	"github.com/syrineTissaoui/recalammation/internal/middleware"
	"github.com/syrineTissaoui/recalammation/internal/repository/postgres"
	"github.com/syrineTissaoui/recalammation/internal/service"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Health
	r.Get("/healthz", handlers.Health())

	tokens := auth.NewTokenCodec(cfg.SessionSecret, cfg.TokenLifetime())
	requireAuth := middleware.RequireAuth(log, tokens)

	userRepo := postgres.NewUserRepo(db)
	ticketRepo := postgres.NewTicketRepo(db)

	ah := handlers.NewAuthHTTP(service.NewAuthService(userRepo, tokens, cfg.BcryptCost), userRepo, log)
	th := handlers.NewTicketHTTP(service.NewTicketService(ticketRepo), log)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", ah.Register())
		r.Post("/login", ah.Login())
		r.With(requireAuth).Get("/me", ah.Me())
	})

	r.Route("/api/tickets", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", th.List())
		r.Post("/", th.Create())
		r.Get("/mine", th.ListMine())
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", th.Get())
			r.Patch("/status", th.UpdateStatus())
			r.Post("/notes", th.AddNote())
		})
	})

	return r
}
