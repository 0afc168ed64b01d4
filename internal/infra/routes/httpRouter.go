package routes

import (
	"encoding/json"
	"lead-dispatcher/internal/domain/dto"
	"lead-dispatcher/internal/infra/handlers"
	"net/http"

	"github.com/gorilla/mux"
)

type Routes struct {
	Mux          *mux.Router
	LeadHandlers *handlers.LeadHandlers
}

func NewRoutes(mux *mux.Router, leadHandlers *handlers.LeadHandlers) *Routes {
	return &Routes{mux, leadHandlers}
}

func (r *Routes) Init() {
	// The landing page posts to /api/send-message; Meta is
	// subscribed to /webhook. Both reach the same handler.
	r.Mux.HandleFunc("/api/send-message", r.LeadHandlers.SendMessage)
	r.Mux.HandleFunc("/webhook", r.LeadHandlers.SendMessage)

	r.Mux.HandleFunc("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dto.HealthResponse{Status: "healthy"})
	}).Methods(http.MethodGet)
}
