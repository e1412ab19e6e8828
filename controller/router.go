package controller

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Routes struct {
	WebhookPath string
	HealthPath  string
}

func NewRouter(routes Routes, webhook http.Handler, health http.Handler) *mux.Router {
	router := mux.NewRouter()
	router.Handle(routes.WebhookPath, webhook).Methods(http.MethodPost)
	router.Handle(routes.HealthPath, health).Methods(http.MethodGet)
	return router
}
