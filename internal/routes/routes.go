package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/luispedrilho/genutra-backend/internal/auth"
	"github.com/luispedrilho/genutra-backend/internal/handlers"
	"github.com/luispedrilho/genutra-backend/internal/middleware"
)

func Setup(r *chi.Mux, h *handlers.Handler, codec *auth.TokenCodec) {
	// Public routes
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Get("/ping", h.Ping)

	// Protected routes (bearer token)
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(codec))
		pr.Post("/gerar-plano", h.GeneratePlan)
		pr.Get("/planos", h.ListPlans)
		pr.Get("/planos/recentes", h.RecentPlans)
		pr.Get("/plano/{id}", h.GetPlan)
		pr.Get("/dashboard", h.Dashboard)
	})
}
