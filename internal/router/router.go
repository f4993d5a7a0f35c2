package router

import (
	"net/http"

	"talent_crm/internal/handlers"
	"talent_crm/internal/middleware"
	"talent_crm/internal/notifications"
)

// New builds the HTTP routing table: four operations per entity plus a
// health check.
func New(store handlers.Store, notifier *notifications.Client) *http.ServeMux {
	mux := http.NewServeMux()

	creatorHandler := handlers.NewCreatorHandler(store)
	accountHandler := handlers.NewAccountHandler(store)
	dealHandler := handlers.NewDealHandler(store, notifier)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /creators", middleware.WithLogging(creatorHandler.List))
	mux.HandleFunc("POST /creators", middleware.WithLogging(creatorHandler.Create))
	mux.HandleFunc("PUT /creators", middleware.WithLogging(creatorHandler.Update))
	mux.HandleFunc("DELETE /creators", middleware.WithLogging(creatorHandler.Delete))

	mux.HandleFunc("GET /accounts", middleware.WithLogging(accountHandler.List))
	mux.HandleFunc("POST /accounts", middleware.WithLogging(accountHandler.Create))
	mux.HandleFunc("PUT /accounts", middleware.WithLogging(accountHandler.Update))
	mux.HandleFunc("DELETE /accounts", middleware.WithLogging(accountHandler.Delete))

	mux.HandleFunc("GET /deals", middleware.WithLogging(dealHandler.List))
	mux.HandleFunc("POST /deals", middleware.WithLogging(dealHandler.Create))
	mux.HandleFunc("PUT /deals", middleware.WithLogging(dealHandler.Update))
	mux.HandleFunc("DELETE /deals", middleware.WithLogging(dealHandler.Delete))

	return mux
}
